package validator

import (
	corevalidator "event-portal/core/validator"
	"event-portal/modules/registration/dto"
)

func ValidateSubmitRequest(req *dto.SubmitRequest) *corevalidator.ValidationResult {
	return corevalidator.Validate(req)
}

func ValidateRegistrantRequest(req *dto.RegistrantRequest) *corevalidator.ValidationResult {
	return corevalidator.Validate(req)
}
