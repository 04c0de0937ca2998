package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"library-backend/internal/domains/dashboard"
	"library-backend/internal/shared"
	"library-backend/pkg/logger"
)

// RefreshHandler recomputes the dashboard cache in the background so the
// first request after every TTL window does not pay the aggregate cost.
type RefreshHandler struct {
	service dashboard.Service
}

func NewRefreshHandler(svc dashboard.Service) *RefreshHandler {
	return &RefreshHandler{service: svc}
}

// ProcessTask handles one scheduled refresh. An overlapping refresh is a
// no-op inside the service, so overdue tasks piling up cannot stampede
// the database.
func (h *RefreshHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload shared.RefreshDashboardPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		// A broken payload will not fix itself on retry.
		return fmt.Errorf("unmarshal RefreshDashboard payload: %w", err)
	}

	if err := h.service.RefreshCache(ctx); err != nil {
		logger.Error("RefreshDashboard: cache refresh failed", err)
		return err
	}

	return nil
}
