package dashboard

import "context"

// CacheKey holds the fully assembled dashboard payload.
const CacheKey = "dashboard:data"

// Service serves the dashboard, cached with a TTL so the aggregate
// queries do not run on every page load.
type Service interface {
	// GetData returns the cached payload, computing and caching it on a
	// miss.
	GetData(ctx context.Context) (*Data, error)
	// RefreshCache recomputes the payload and overwrites the cache
	// entry. A refresh already in flight makes this call a no-op.
	RefreshCache(ctx context.Context) error
}
