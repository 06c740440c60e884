package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"event-portal/core/constants"
	"event-portal/core/logger"
	"event-portal/modules/notification/dto"
	"event-portal/modules/notification/mailer"

	"github.com/hibiken/asynq"
)

// Worker consumes notification tasks from the asynq queue.
type Worker struct {
	server *asynq.Server
	mailer mailer.Mailer
}

func NewWorker(redisOpt asynq.RedisConnOpt, m mailer.Mailer) *Worker {
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: constants.WorkerConcurrency,
		Queues:      map[string]int{constants.QueueDefault: 1},
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			logger.Error("Worker:Task:Error", "type", task.Type(), "error", err)
		}),
		Logger: asynqLogger{},
	})
	return &Worker{server: server, mailer: m}
}

// Handler returns the task multiplexer. It is exported for tests.
func (w *Worker) Handler() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(constants.TaskRegistrationConfirmation, w.HandleRegistrationConfirmation)
	return mux
}

// Start runs the worker in background goroutines.
func (w *Worker) Start() error {
	logger.Info("Worker:Start", "queue", constants.QueueDefault)
	return w.server.Start(w.Handler())
}

func (w *Worker) Shutdown() {
	w.server.Shutdown()
	logger.Info("Worker:Stopped")
}

func (w *Worker) HandleRegistrationConfirmation(ctx context.Context, task *asynq.Task) error {
	var payload dto.RegistrationConfirmation
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A malformed payload will never succeed.
		return fmt.Errorf("unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	subject, body := ConfirmationMail(&payload)
	if err := w.mailer.Send(ctx, payload.Email, subject, body); err != nil {
		return err
	}
	logger.Info("Worker:HandleRegistrationConfirmation:Sent",
		"registrantID", payload.RegistrantID,
		"eventID", payload.EventID,
	)
	return nil
}

// ConfirmationMail renders the subject and body of a confirmation mail.
func ConfirmationMail(p *dto.RegistrationConfirmation) (string, string) {
	subject := fmt.Sprintf("Registration confirmed: %s", p.EventName)
	body := fmt.Sprintf("Hello %s,\n\nYour registration for %q is confirmed.\nDate: %s\nVenue: %s\n\nSee you there!",
		p.Name, p.EventName, p.EventDate, p.EventVenue)
	return subject, body
}

// asynqLogger routes asynq's own logging through the application logger.
type asynqLogger struct{}

func (asynqLogger) Debug(args ...any) { logger.Debug(fmt.Sprint(args...)) }
func (asynqLogger) Info(args ...any)  { logger.Info(fmt.Sprint(args...)) }
func (asynqLogger) Warn(args ...any)  { logger.Warn(fmt.Sprint(args...)) }
func (asynqLogger) Error(args ...any) { logger.Error(fmt.Sprint(args...)) }
func (asynqLogger) Fatal(args ...any) { logger.Fatal(fmt.Sprint(args...)) }
