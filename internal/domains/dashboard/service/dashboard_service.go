package service

import (
	"context"
	"sync"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/domains/dashboard"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

// Pie wedge colors, matched to the frontend palette.
const (
	colorBorrowed = "#3b82f6"
	colorReturned = "#10b981"
)

type dashboardService struct {
	repository dashboard.Repository
	cache      cache.Cache
	cfg        config.DashboardConfig
	now        func() time.Time

	// refreshing lets concurrent RefreshCache calls collapse into one:
	// whoever holds the lock computes, everyone else skips.
	refreshing sync.Mutex
}

// NewDashboardService creates the cached dashboard layer.
func NewDashboardService(repo dashboard.Repository, c cache.Cache, cfg config.DashboardConfig) dashboard.Service {
	return &dashboardService{
		repository: repo,
		cache:      c,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *dashboardService) GetData(ctx context.Context) (*dashboard.Data, error) {
	var data dashboard.Data
	hit, err := s.cache.Get(ctx, dashboard.CacheKey, &data)
	if err != nil {
		// A broken cache degrades to a direct read, not an outage.
		logger.Warn("dashboard cache read failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if hit {
		return &data, nil
	}

	computed, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, dashboard.CacheKey, computed, s.cfg.CacheTTL); err != nil {
		logger.Warn("dashboard cache write failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return computed, nil
}

// RefreshCache overwrites the cache entry in place. There is no
// delete-then-set window: readers see either the old payload or the new
// one, never a miss caused by the refresh itself.
func (s *dashboardService) RefreshCache(ctx context.Context) error {
	if !s.refreshing.TryLock() {
		logger.Debug("dashboard refresh already in flight, skipping")
		return nil
	}
	defer s.refreshing.Unlock()

	computed, err := s.compute(ctx)
	if err != nil {
		return err
	}

	if err := s.cache.Set(ctx, dashboard.CacheKey, computed, s.cfg.CacheTTL); err != nil {
		return err
	}

	logger.Info("dashboard cache refreshed", map[string]interface{}{
		"last_updated": computed.LastUpdated,
	})
	return nil
}

func (s *dashboardService) compute(ctx context.Context) (*dashboard.Data, error) {
	stats, err := s.repository.Stats(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repository.RecentBorrowings(ctx, s.cfg.RecentLimit)
	if err != nil {
		return nil, err
	}

	top, err := s.repository.TopBooks(ctx, s.cfg.TopLimit)
	if err != nil {
		return nil, err
	}

	trend, err := s.monthlyTrend(ctx)
	if err != nil {
		return nil, err
	}

	borrowed, returned, err := s.repository.StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	byCategory, err := s.repository.BooksByCategory(ctx, s.cfg.TopLimit)
	if err != nil {
		return nil, err
	}

	return &dashboard.Data{
		Stats:            *stats,
		RecentBorrowings: recent,
		TopBooks:         top,
		MonthlyTrend:     trend,
		StatusBreakdown: []dashboard.StatusSlice{
			{Name: "Borrowed", Value: borrowed, Color: colorBorrowed},
			{Name: "Returned", Value: returned, Color: colorReturned},
		},
		BooksByCategory: byCategory,
		LastUpdated:     s.now(),
	}, nil
}

// monthlyTrend densifies the sparse per-month counts into a fixed window
// ending at the current month, zero-filling months with no activity.
func (s *dashboardService) monthlyTrend(ctx context.Context) ([]dashboard.MonthlyCount, error) {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(s.cfg.MonthlyMonths - 1), 0)

	counts, err := s.repository.MonthlyTrend(ctx, first)
	if err != nil {
		return nil, err
	}

	out := make([]dashboard.MonthlyCount, 0, s.cfg.MonthlyMonths)
	for i := 0; i < s.cfg.MonthlyMonths; i++ {
		month := first.AddDate(0, i, 0)
		out = append(out, dashboard.MonthlyCount{
			Month:      month.Format("Jan 2006"),
			Borrowings: counts[month.Format("2006-01")],
		})
	}

	return out, nil
}
