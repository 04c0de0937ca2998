package dashboard

import (
	"context"
	"time"
)

// Repository reads the aggregates the dashboard is built from. Everything
// is read-only; the dashboard never writes domain data.
type Repository interface {
	Stats(ctx context.Context) (*Stats, error)
	RecentBorrowings(ctx context.Context, limit int) ([]RecentBorrowing, error)
	// TopBooks ranks by copies across completed (returned) borrowings.
	TopBooks(ctx context.Context, limit int) ([]TopBook, error)
	// MonthlyTrend returns sparse per-month counts since the given time,
	// keyed "2006-01"; months with no borrowings are absent.
	MonthlyTrend(ctx context.Context, since time.Time) (map[string]int, error)
	StatusBreakdown(ctx context.Context) (borrowed, returned int, err error)
	BooksByCategory(ctx context.Context, limit int) ([]CategoryCount, error)
}
