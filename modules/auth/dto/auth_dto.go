package dto

type RegisterUserRequest struct {
	Username string `form:"username" validate:"notblank"`
	Email    string `form:"email" validate:"notblank"`
	Password string `form:"password" validate:"notblank,maxbytes=72"`
	FullName string `form:"full_name"`
	Phone    string `form:"phone" validate:"omitempty,phone"`
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type AdminLoginRequest struct {
	Password string `form:"password"`
}

// Profile is the part of a user account used to prefill registration forms.
type Profile struct {
	UserID   int64
	Username string
	Email    string
	FullName string
	Phone    string
}
