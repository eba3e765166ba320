package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"petregistry-backend/internal/domains/pet/model"
	"petregistry-backend/internal/shared"
	"petregistry-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddress string) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler}
}

func (s *Scheduler) RegisterCleanupJobs() error {
	return s.registerAvatarSweepJob()
}

// Avatar sweep (daily at 3 AM): removes uploads that got a presigned URL
// but were never confirmed. Runs at a low-traffic hour.
func (s *Scheduler) registerAvatarSweepJob() error {
	payload, err := json.Marshal(struct{}{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(model.TaskAvatarSweep, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // Daily at 3 AM
		task,
		asynq.Queue(shared.QueueStorage),
		asynq.MaxRetry(1),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register AvatarSweep job", err)
		return err
	}

	logger.Info("Registered AvatarSweep: daily at 3 AM", map[string]interface{}{})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
