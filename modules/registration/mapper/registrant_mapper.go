package mapper

import (
	"strings"

	"event-portal/modules/registration/dto"
	"event-portal/modules/registration/entity"
)

// ToRegistrantEntity builds a registrant for eventID. userID 0 means anonymous.
func ToRegistrantEntity(req *dto.SubmitRequest, eventID, userID int64) *entity.Registrant {
	r := &entity.Registrant{
		EventID: eventID,
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Phone:   req.Phone,
	}
	if userID > 0 {
		r.UserID = &userID
	}
	return r
}

func ApplyRegistrantRequest(r *entity.Registrant, req *dto.RegistrantRequest) {
	r.Name = strings.TrimSpace(req.Name)
	r.Email = strings.TrimSpace(req.Email)
	r.Phone = req.Phone
}
