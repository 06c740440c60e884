package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"event-portal/core/constants"
	"event-portal/core/errors"
	"event-portal/core/logger"
	"event-portal/core/storage"
	"event-portal/core/utils"
	"event-portal/modules/dashboard/dto"
	eventDto "event-portal/modules/event/dto"
	eventEntity "event-portal/modules/event/entity"
	eventService "event-portal/modules/event/service"
	registrationEntity "event-portal/modules/registration/entity"
	registrationService "event-portal/modules/registration/service"

	"github.com/gosimple/slug"
)

const csvContentType = "text/csv"

type DashboardService interface {
	Overview(ctx context.Context) ([]dto.EventGroup, *errors.AppError)
	CreateEvent(ctx context.Context, req *eventDto.EventRequest) (*eventEntity.Event, *errors.AppError)
	EventDetail(ctx context.Context, eventID int64) (*dto.EventDetail, *errors.AppError)
	ExportRegistrants(ctx context.Context, eventID int64) (*dto.Export, *errors.AppError)
}

type dashboardService struct {
	events        eventService.EventServiceInterface
	registrations registrationService.RegistrationServiceInterface
	uploader      storage.Uploader
}

// NewDashboardService creates the service. uploader may be nil, in which case
// exports are only returned to the caller.
func NewDashboardService(
	events eventService.EventServiceInterface,
	registrations registrationService.RegistrationServiceInterface,
	uploader storage.Uploader,
) DashboardService {
	return &dashboardService{
		events:        events,
		registrations: registrations,
		uploader:      uploader,
	}
}

// Overview returns every event, in insertion order, with its registrants.
func (s *dashboardService) Overview(ctx context.Context) ([]dto.EventGroup, *errors.AppError) {
	events, appErr := s.events.GetEvents(ctx)
	if appErr != nil {
		return nil, appErr
	}
	grouped, appErr := s.registrations.GetRegistrantsGroupedByEvent(ctx)
	if appErr != nil {
		return nil, appErr
	}

	groups := make([]dto.EventGroup, 0, len(events))
	for _, event := range events {
		registrants := grouped[event.ID]
		if registrants == nil {
			registrants = []registrationEntity.Registrant{}
		}
		groups = append(groups, dto.EventGroup{Event: event, Registrants: registrants})
	}
	return groups, nil
}

func (s *dashboardService) CreateEvent(ctx context.Context, req *eventDto.EventRequest) (*eventEntity.Event, *errors.AppError) {
	event, appErr := s.events.CreateEvent(ctx, req)
	if appErr != nil {
		return nil, appErr
	}
	logger.Info("DashboardService:CreateEvent:Created", "eventID", event.ID, "name", event.Name)
	return event, nil
}

func (s *dashboardService) EventDetail(ctx context.Context, eventID int64) (*dto.EventDetail, *errors.AppError) {
	event, appErr := s.events.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	registrants, appErr := s.registrations.GetRegistrantsByEventID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}
	return &dto.EventDetail{Event: event, Registrants: registrants}, nil
}

// ExportRegistrants renders the event's registrants as CSV and, when object
// storage is configured, uploads it under exports/<event-slug>-<id>.csv.
func (s *dashboardService) ExportRegistrants(ctx context.Context, eventID int64) (*dto.Export, *errors.AppError) {
	detail, appErr := s.EventDetail(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	content, err := RegistrantsCSV(detail.Registrants)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to render export", err)
	}

	export := &dto.Export{
		Filename: ExportFilename(detail.Event),
		Content:  content,
	}
	if s.uploader == nil {
		return export, nil
	}

	location, err := s.uploader.Upload(ctx, constants.ExportPrefix+export.Filename, csvContentType, content)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to upload export", err)
	}
	export.Location = location
	return export, nil
}

// ExportFilename builds a unique file name from the event name.
func ExportFilename(event *eventEntity.Event) string {
	name := slug.Make(event.Name)
	if name == "" {
		name = fmt.Sprintf("event-%d", event.ID)
	}
	return fmt.Sprintf("%s-%s.csv", name, utils.GenerateID())
}

// RegistrantsCSV writes a header row followed by one row per registrant.
func RegistrantsCSV(registrants []registrationEntity.Registrant) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "email", "phone", "registered_at"}); err != nil {
		return nil, err
	}
	for _, r := range registrants {
		record := []string{
			utils.ToString(r.ID),
			r.Name,
			r.Email,
			r.Phone,
			r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
