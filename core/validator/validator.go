package validator

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"event-portal/core/constants"
	"event-portal/core/utils"

	"github.com/go-playground/validator/v10"
)

var (
	global *validator.Validate
	once   sync.Once
)

const (
	ErrFieldRequired = "Field is required"
	ErrInvalidEmail  = "Invalid email address"
	ErrInvalidPhone  = "Phone must be exactly 10 digits"
	ErrInvalidFormat = "Invalid format"
	ErrTooLong       = "Value is too long"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Errors []FieldError `json:"errors"`
}

func (v *ValidationResult) HasError() bool {
	return len(v.Errors) > 0
}

func (v *ValidationResult) Add(field, message string) {
	v.Errors = append(v.Errors, FieldError{Field: field, Message: message})
}

// Messages returns the collected messages keyed by field.
func (v *ValidationResult) Messages() map[string]string {
	out := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		out[e.Field] = e.Message
	}
	return out
}

func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("phone", validatePhone)
		_ = v.RegisterValidation("notblank", validateNotBlank)
		_ = v.RegisterValidation("maxbytes", validateMaxBytes)
		global = v
	})
	return global
}

// Phone numbers are exactly ten ASCII digits.
func IsValidPhone(s string) bool {
	return len(s) == constants.PhoneLength && utils.IsDigits(s)
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// maxbytes=N limits the encoded length, unlike max which counts runes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate runs struct validation and converts failures into a result keyed
// by the form field names.
func Validate(structure any) *ValidationResult {
	result := &ValidationResult{}
	err := Validator().Struct(structure)
	if err == nil {
		return result
	}
	vErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Add("", ErrInvalidFormat)
		return result
	}
	for _, fe := range vErrors {
		var msg string
		switch fe.Tag() {
		case "required", "notblank":
			msg = ErrFieldRequired
		case "email":
			msg = ErrInvalidEmail
		case "phone":
			msg = ErrInvalidPhone
		case "maxbytes":
			msg = ErrTooLong
		default:
			msg = ErrInvalidFormat
		}
		result.Add(fe.Field(), msg)
	}
	return result
}
