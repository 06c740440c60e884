package mapper

import (
	"strings"

	"event-portal/modules/event/dto"
	"event-portal/modules/event/entity"
)

func ToEventEntity(req *dto.EventRequest) *entity.Event {
	return &entity.Event{
		Name:        strings.TrimSpace(req.Name),
		Date:        strings.TrimSpace(req.Date),
		Venue:       strings.TrimSpace(req.Venue),
		Description: strings.TrimSpace(req.Description),
	}
}
