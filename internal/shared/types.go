package shared

// Task types processed by the worker.
const (
	TypeRefreshDashboardCache = "dashboard:refresh_cache"
)

// Queue names with their priorities configured in cmd/worker.
const (
	QueueDefault   = "default"
	QueueDashboard = "dashboard"
)

// RefreshDashboardPayload is the (empty) payload of the dashboard
// refresh task; kept as a struct so fields can be added without changing
// the task type.
type RefreshDashboardPayload struct{}
