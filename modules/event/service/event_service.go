package service

import (
	"context"

	"event-portal/core/errors"
	"event-portal/modules/event/dto"
	"event-portal/modules/event/entity"
	"event-portal/modules/event/mapper"
	"event-portal/modules/event/repository"
)

// EventService handles event business logic
type EventService struct {
	repo repository.EventRepositoryInterface
}

type EventServiceInterface interface {
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*entity.Event, *errors.AppError)
	GetEventByID(ctx context.Context, id int64) (*entity.Event, *errors.AppError)
	GetEvents(ctx context.Context) ([]entity.Event, *errors.AppError)
	GetMyEvents(ctx context.Context, userID int64) ([]entity.Event, *errors.AppError)
	UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*entity.Event, *errors.AppError)
	DeleteEvent(ctx context.Context, id int64) *errors.AppError
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

func (s *EventService) CreateEvent(ctx context.Context, req *dto.EventRequest) (*entity.Event, *errors.AppError) {
	created, err := s.repo.CreateEvent(ctx, mapper.ToEventEntity(req))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}
	return created, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id int64) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

func (s *EventService) GetEvents(ctx context.Context) ([]entity.Event, *errors.AppError) {
	events, err := s.repo.GetEvents(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}
	return events, nil
}

// GetMyEvents lists the events the user is registered for.
func (s *EventService) GetMyEvents(ctx context.Context, userID int64) ([]entity.Event, *errors.AppError) {
	events, err := s.repo.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}
	return events, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*entity.Event, *errors.AppError) {
	event := mapper.ToEventEntity(req)
	event.ID = id

	updated, err := s.repo.UpdateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}
	if !updated {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return event, nil
}

// DeleteEvent removes the event together with all of its registrants.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) *errors.AppError {
	deleted, err := s.repo.DeleteEventCascade(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return nil
}
