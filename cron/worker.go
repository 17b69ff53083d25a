package cron

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"marketplace/config"
	"marketplace/models"
	"marketplace/services/notification"
	"marketplace/services/tasks"
	"marketplace/utils"
)

// NewReminderWorker builds the asynq server that delivers scheduled
// booking reminders through the notification bus.
func NewReminderWorker() *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	return srv
}

// RunReminderWorker starts the worker in the background. Reminder
// delivery is best-effort; a failed publish is logged and the task is
// not retried.
func RunReminderWorker(srv *asynq.Server, bus notification.Bus) {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(bus))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("reminder worker stopped", zap.Error(err))
		}
	}()
}

func handleReminderTask(bus notification.Bus) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		event := models.BookingEvent{
			BookingID: p.BookingID,
			Message:   "Your booking starts at " + p.StartTime + ".",
		}
		if err := bus.Publish(ctx, p.ClientID, models.EventBookingReminder, event); err != nil {
			logger.Warn("reminder publish failed",
				zap.String("bookingId", p.BookingID), zap.Error(err))
		}
		return nil
	}
}
