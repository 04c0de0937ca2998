package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"library-backend/internal/config"
	"library-backend/internal/shared"
	"library-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	dashboard config.DashboardConfig
}

func NewScheduler(redisAddress string, dashboard config.DashboardConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddress},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{
		scheduler: scheduler,
		dashboard: dashboard,
	}
}

// RegisterJobs wires every periodic job into the scheduler.
func (s *Scheduler) RegisterJobs() error {
	return s.registerDashboardRefreshJob()
}

// The dashboard refresh runs on the configured cadence (default every
// 5 minutes, matching the cache TTL) so readers almost always hit a warm
// cache. MaxRetry is low: a failed refresh is cheap to miss because the
// next tick recomputes everything anyway.
func (s *Scheduler) registerDashboardRefreshJob() error {
	payload, err := json.Marshal(shared.RefreshDashboardPayload{})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypeRefreshDashboardCache, payload)

	_, err = s.scheduler.Register(
		fmt.Sprintf("@every %s", s.dashboard.RefreshInterval),
		task,
		asynq.Queue(shared.QueueDashboard),
		asynq.MaxRetry(1),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register RefreshDashboard job", err)
		return err
	}

	logger.Info("Registered RefreshDashboard", map[string]interface{}{
		"interval": s.dashboard.RefreshInterval.String(),
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
