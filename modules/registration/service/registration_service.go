package service

import (
	"context"

	"event-portal/core/errors"
	"event-portal/core/logger"
	authdto "event-portal/modules/auth/dto"
	eventEntity "event-portal/modules/event/entity"
	notificationDto "event-portal/modules/notification/dto"
	notificationService "event-portal/modules/notification/service"
	"event-portal/modules/registration/dto"
	"event-portal/modules/registration/entity"
	"event-portal/modules/registration/mapper"
	"event-portal/modules/registration/repository"
)

// EventReader resolves the event a registration refers to.
type EventReader interface {
	GetEventByID(ctx context.Context, id int64) (*eventEntity.Event, *errors.AppError)
}

// ProfileStore reads and updates the profile of the registering user.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID int64) (*authdto.Profile, *errors.AppError)
	UpdateProfile(ctx context.Context, userID int64, fullName, phone string) *errors.AppError
}

// RegistrationService handles registrant business logic
type RegistrationService struct {
	repo     repository.RegistrantRepositoryInterface
	events   EventReader
	profiles ProfileStore
	notifier notificationService.NotificationService
}

type RegistrationServiceInterface interface {
	PrepareForm(ctx context.Context, eventID, userID int64) (*eventEntity.Event, *dto.FormValues, *errors.AppError)
	Submit(ctx context.Context, eventID, userID int64, req *dto.SubmitRequest) (*entity.Registrant, *errors.AppError)
	Unregister(ctx context.Context, eventID, userID int64) (bool, *errors.AppError)
	GetRegistrantsByEventID(ctx context.Context, eventID int64) ([]entity.Registrant, *errors.AppError)
	GetRegistrantsGroupedByEvent(ctx context.Context) (map[int64][]entity.Registrant, *errors.AppError)
	GetEventRegistrant(ctx context.Context, eventID, registrantID int64) (*entity.Registrant, *errors.AppError)
	UpdateRegistrant(ctx context.Context, eventID, registrantID int64, req *dto.RegistrantRequest) *errors.AppError
	DeleteRegistrant(ctx context.Context, eventID, registrantID int64) *errors.AppError
}

func NewRegistrationService(
	repo repository.RegistrantRepositoryInterface,
	events EventReader,
	profiles ProfileStore,
	notifier notificationService.NotificationService,
) RegistrationServiceInterface {
	return &RegistrationService{
		repo:     repo,
		events:   events,
		profiles: profiles,
		notifier: notifier,
	}
}

// PrepareForm loads the event and the values the form is prefilled with.
// userID 0 yields an empty form.
func (s *RegistrationService) PrepareForm(ctx context.Context, eventID, userID int64) (*eventEntity.Event, *dto.FormValues, *errors.AppError) {
	event, appErr := s.events.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, nil, appErr
	}

	form := &dto.FormValues{}
	if userID > 0 {
		profile, appErr := s.profiles.GetProfile(ctx, userID)
		if appErr != nil && appErr.Code != errors.ErrUserNotFound {
			return nil, nil, appErr
		}
		if profile != nil {
			form.Name = profile.FullName
			form.Email = profile.Email
			form.Phone = profile.Phone
		}
	}
	return event, form, nil
}

// Submit stores a registration. A user may hold one registration per event;
// anonymous submissions (userID 0) are not deduplicated. The check and the
// insert are not atomic.
func (s *RegistrationService) Submit(ctx context.Context, eventID, userID int64, req *dto.SubmitRequest) (*entity.Registrant, *errors.AppError) {
	event, appErr := s.events.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	if userID > 0 {
		exists, err := s.repo.ExistsForUser(ctx, eventID, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check registration", err)
		}
		if exists {
			return nil, errors.NewAppError(errors.ErrAlreadyRegistered, "Already registered for this event", nil)
		}
	}

	registrant, err := s.repo.CreateRegistrant(ctx, mapper.ToRegistrantEntity(req, eventID, userID))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create registration", err)
	}

	if userID > 0 {
		if appErr := s.profiles.UpdateProfile(ctx, userID, registrant.Name, registrant.Phone); appErr != nil {
			logger.Error("RegistrationService:Submit:UpdateProfile:Error", "error", appErr, "userID", userID)
		}
	}

	if s.notifier != nil {
		err := s.notifier.NotifyRegistration(ctx, &notificationDto.RegistrationConfirmation{
			RegistrantID: registrant.ID,
			EventID:      event.ID,
			EventName:    event.Name,
			EventDate:    event.Date,
			EventVenue:   event.Venue,
			Name:         registrant.Name,
			Email:        registrant.Email,
		})
		if err != nil {
			logger.Warn("RegistrationService:Submit:Notify:Error", "error", err, "registrantID", registrant.ID)
		}
	}

	logger.Info("RegistrationService:Submit:Created", "registrantID", registrant.ID, "eventID", eventID, "userID", userID)
	return registrant, nil
}

// Unregister deletes the user's registration for the event, if any, and
// reports whether a row was removed.
func (s *RegistrationService) Unregister(ctx context.Context, eventID, userID int64) (bool, *errors.AppError) {
	deleted, err := s.repo.DeleteByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return false, errors.NewAppError(errors.ErrInternalServer, "Failed to unregister", err)
	}
	logger.Info("RegistrationService:Unregister", "eventID", eventID, "userID", userID, "deleted", deleted)
	return deleted > 0, nil
}

func (s *RegistrationService) GetRegistrantsByEventID(ctx context.Context, eventID int64) ([]entity.Registrant, *errors.AppError) {
	registrants, err := s.repo.GetRegistrantsByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get registrants", err)
	}
	return registrants, nil
}

// GetRegistrantsGroupedByEvent returns every registrant keyed by event id,
// each list in insertion order.
func (s *RegistrationService) GetRegistrantsGroupedByEvent(ctx context.Context) (map[int64][]entity.Registrant, *errors.AppError) {
	registrants, err := s.repo.GetRegistrants(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get registrants", err)
	}
	grouped := make(map[int64][]entity.Registrant)
	for _, r := range registrants {
		grouped[r.EventID] = append(grouped[r.EventID], r)
	}
	return grouped, nil
}

// GetEventRegistrant returns the registrant only when it belongs to eventID.
func (s *RegistrationService) GetEventRegistrant(ctx context.Context, eventID, registrantID int64) (*entity.Registrant, *errors.AppError) {
	registrant, err := s.repo.GetRegistrantByID(ctx, registrantID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get registrant", err)
	}
	if registrant == nil || registrant.EventID != eventID {
		return nil, errors.NewAppError(errors.ErrNotFound, "Registrant not found", nil)
	}
	return registrant, nil
}

func (s *RegistrationService) UpdateRegistrant(ctx context.Context, eventID, registrantID int64, req *dto.RegistrantRequest) *errors.AppError {
	registrant, appErr := s.GetEventRegistrant(ctx, eventID, registrantID)
	if appErr != nil {
		return appErr
	}

	mapper.ApplyRegistrantRequest(registrant, req)
	updated, err := s.repo.UpdateRegistrant(ctx, registrant)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to update registrant", err)
	}
	if !updated {
		return errors.NewAppError(errors.ErrNotFound, "Registrant not found", nil)
	}
	return nil
}

func (s *RegistrationService) DeleteRegistrant(ctx context.Context, eventID, registrantID int64) *errors.AppError {
	if _, appErr := s.GetEventRegistrant(ctx, eventID, registrantID); appErr != nil {
		return appErr
	}

	deleted, err := s.repo.DeleteRegistrant(ctx, registrantID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete registrant", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Registrant not found", nil)
	}
	return nil
}
