package validator

import (
	corevalidator "event-portal/core/validator"
	"event-portal/modules/auth/dto"
)

func ValidateRegisterUserRequest(req *dto.RegisterUserRequest) *corevalidator.ValidationResult {
	return corevalidator.Validate(req)
}
