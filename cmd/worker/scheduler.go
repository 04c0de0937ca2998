package main

import (
	"log"

	"library-backend/internal/infrastructure/queue"
	"library-backend/pkg/container"
)

// asynqScheduler wraps queue.Scheduler for graceful shutdown.
type asynqScheduler struct {
	*queue.Scheduler
}

// setupScheduler creates the scheduler and starts it in the background.
func setupScheduler(cfg *Config, c *container.Container) *asynqScheduler {
	scheduler := queue.NewScheduler(cfg.RedisAddr, c.Config.Dashboard)

	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatalf("[Scheduler] Failed to register: %v", err)
	}

	go func() {
		log.Println("[Scheduler] Starting...")
		if err := scheduler.Start(); err != nil {
			log.Fatalf("[Scheduler] Failed: %v", err)
		}
	}()

	return &asynqScheduler{Scheduler: scheduler}
}

// Shutdown stops the scheduler.
func (s *asynqScheduler) Shutdown() {
	log.Println("[Scheduler] Shutting down...")
	s.Scheduler.Shutdown()
	log.Println("[Scheduler] Stopped")
}
