package service

import (
	"context"
	"encoding/json"
	"fmt"

	"event-portal/core/constants"
	"event-portal/core/logger"
	"event-portal/modules/notification/dto"

	"github.com/hibiken/asynq"
)

// NotificationService queues messages for registrants.
type NotificationService interface {
	NotifyRegistration(ctx context.Context, payload *dto.RegistrationConfirmation) error
	Close() error
}

type queueNotificationService struct {
	client *asynq.Client
}

// NewQueueNotificationService enqueues confirmation tasks on the asynq queue
// backed by redis.
func NewQueueNotificationService(client *asynq.Client) NotificationService {
	return &queueNotificationService{client: client}
}

// NewRegistrationConfirmationTask builds the task handled by the worker.
func NewRegistrationConfirmationTask(payload *dto.RegistrationConfirmation) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal confirmation payload: %w", err)
	}
	return asynq.NewTask(constants.TaskRegistrationConfirmation, data,
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(constants.TaskMaxRetry),
	), nil
}

func (s *queueNotificationService) NotifyRegistration(ctx context.Context, payload *dto.RegistrationConfirmation) error {
	task, err := NewRegistrationConfirmationTask(payload)
	if err != nil {
		return err
	}
	info, err := s.client.EnqueueContext(ctx, task)
	if err != nil {
		logger.Error("NotificationService:NotifyRegistration:Enqueue:Error", "error", err, "registrantID", payload.RegistrantID)
		return err
	}
	logger.Debug("NotificationService:NotifyRegistration:Enqueued", "taskID", info.ID, "queue", info.Queue)
	return nil
}

func (s *queueNotificationService) Close() error {
	return s.client.Close()
}

type logNotificationService struct{}

// NewLogNotificationService is used when no queue is configured: the
// notification is only logged.
func NewLogNotificationService() NotificationService {
	return logNotificationService{}
}

func (logNotificationService) NotifyRegistration(_ context.Context, payload *dto.RegistrationConfirmation) error {
	logger.Info("NotificationService:NotifyRegistration:Skipped",
		"registrantID", payload.RegistrantID,
		"eventID", payload.EventID,
		"email", payload.Email,
	)
	return nil
}

func (logNotificationService) Close() error {
	return nil
}
