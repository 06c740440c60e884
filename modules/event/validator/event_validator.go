package validator

import (
	corevalidator "event-portal/core/validator"
	"event-portal/modules/event/dto"
)

func ValidateEventRequest(req *dto.EventRequest) *corevalidator.ValidationResult {
	return corevalidator.Validate(req)
}
