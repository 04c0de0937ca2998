package main

import (
	"github.com/hibiken/asynq"

	dashboardJob "library-backend/internal/domains/dashboard/job"
	"library-backend/internal/shared"
	"library-backend/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	refreshDashboard *dashboardJob.RefreshHandler
}

// initializeHandlers creates all job handlers with their dependencies.
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		refreshDashboard: dashboardJob.NewRefreshHandler(c.DashboardService),
	}
}

// RegisterHandlers registers all handlers with the mux.
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeRefreshDashboardCache, h.refreshDashboard.ProcessTask)
}
