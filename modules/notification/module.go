package notification

import (
	"event-portal/core/config"
	"event-portal/core/logger"
	"event-portal/modules/notification/mailer"
	"event-portal/modules/notification/service"
	"event-portal/modules/notification/worker"

	"github.com/hibiken/asynq"
)

// Init builds the notification service. With redis configured, tasks go
// through asynq and a worker is returned for the caller to start; otherwise
// notifications are only logged and the worker is nil.
func Init(cfg *config.Config) (service.NotificationService, *worker.Worker) {
	if !cfg.Redis.Enabled() {
		logger.Info("Notification:Init:QueueDisabled")
		return service.NewLogNotificationService(), nil
	}

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	var m mailer.Mailer
	if cfg.SMTP.Enabled() {
		m = mailer.NewSMTPMailer(cfg.SMTP)
	} else {
		m = mailer.NewLogMailer()
	}

	return service.NewQueueNotificationService(asynq.NewClient(redisOpt)), worker.NewWorker(redisOpt, m)
}
