package errors

import "fmt"

type ErrorCode int

const (
	ErrInvalidInput       ErrorCode = 4000
	ErrInvalidRequestData ErrorCode = 4001
	ErrUnauthorized       ErrorCode = 4010
	ErrInvalidPassword    ErrorCode = 4011
	ErrForbidden          ErrorCode = 4030
	ErrNotFound           ErrorCode = 4040
	ErrUserNotFound       ErrorCode = 4041
	ErrAlreadyExists      ErrorCode = 4090
	ErrAlreadyRegistered  ErrorCode = 4091
	ErrInternalServer     ErrorCode = 5000
	ErrRegistrationFailed ErrorCode = 5001
)

// AppError is the error type returned by services. Controllers map Code to an
// HTTP status.
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether err is an AppError carrying code.
func Is(err error, code ErrorCode) bool {
	ae, ok := err.(*AppError)
	return ok && ae != nil && ae.Code == code
}
