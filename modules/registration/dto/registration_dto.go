package dto

// SubmitRequest is the public registration form.
type SubmitRequest struct {
	EventID string `form:"event_id" validate:"notblank"`
	Name    string `form:"name" validate:"notblank"`
	Email   string `form:"email" validate:"notblank"`
	Phone   string `form:"phone" validate:"phone"`
}

// RegistrantRequest is the admin edit form.
type RegistrantRequest struct {
	Name  string `form:"name" validate:"notblank"`
	Email string `form:"email" validate:"notblank"`
	Phone string `form:"phone" validate:"phone"`
}

// FormValues prefill the registration form.
type FormValues struct {
	Name  string
	Email string
	Phone string
}
