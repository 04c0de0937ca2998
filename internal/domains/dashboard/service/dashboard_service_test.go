package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/config"
	"library-backend/internal/domains/dashboard"
	infracache "library-backend/internal/infrastructure/cache"
)

// fakeDashboardRepo serves canned aggregates and counts how often the
// expensive computation runs.
type fakeDashboardRepo struct {
	statsCalls int
	monthly    map[string]int
	borrowed   int
	returned   int
}

func (f *fakeDashboardRepo) Stats(ctx context.Context) (*dashboard.Stats, error) {
	f.statsCalls++
	return &dashboard.Stats{
		TotalBooks:         12,
		AvailableBooks:     30,
		TotalCategories:    3,
		TotalMembers:       4,
		ActiveMembers:      2,
		TotalBorrowings:    9,
		ActiveBorrowings:   3,
		ReturnedBorrowings: 6,
		BooksOut:           5,
	}, nil
}

func (f *fakeDashboardRepo) RecentBorrowings(ctx context.Context, limit int) ([]dashboard.RecentBorrowing, error) {
	return []dashboard.RecentBorrowing{
		{ID: "b1", MemberName: "Ann", BookTitles: []string{"Dune"}, BorrowDate: "2026-08-20", Status: "borrowed"},
	}, nil
}

func (f *fakeDashboardRepo) TopBooks(ctx context.Context, limit int) ([]dashboard.TopBook, error) {
	return []dashboard.TopBook{
		{BookID: "bk1", Title: "Dune", Author: "Frank Herbert", Borrowed: 6},
	}, nil
}

func (f *fakeDashboardRepo) MonthlyTrend(ctx context.Context, since time.Time) (map[string]int, error) {
	return f.monthly, nil
}

func (f *fakeDashboardRepo) StatusBreakdown(ctx context.Context) (int, int, error) {
	return f.borrowed, f.returned, nil
}

func (f *fakeDashboardRepo) BooksByCategory(ctx context.Context, limit int) ([]dashboard.CategoryCount, error) {
	return []dashboard.CategoryCount{{Name: "Fiction", Borrowed: 7}}, nil
}

func testConfig() config.DashboardConfig {
	return config.DashboardConfig{
		CacheTTL:        5 * time.Minute,
		RefreshInterval: 5 * time.Minute,
		RecentLimit:     5,
		TopLimit:        5,
		MonthlyMonths:   6,
	}
}

func newTestService(repo *fakeDashboardRepo, at time.Time) dashboard.Service {
	svc := NewDashboardService(repo, infracache.NewMemoryCache(), testConfig())
	svc.(*dashboardService).now = func() time.Time { return at }
	return svc
}

func TestGetDataComputesAndCaches(t *testing.T) {
	repo := &fakeDashboardRepo{
		monthly:  map[string]int{"2026-08": 4},
		borrowed: 3,
		returned: 6,
	}
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, at)

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, data.Stats.TotalBooks)
	assert.Equal(t, 5, data.Stats.BooksOut)
	assert.Equal(t, 2, data.Stats.ActiveMembers)
	assert.Equal(t, at, data.LastUpdated.UTC())
	assert.Equal(t, 1, repo.statsCalls)

	// Second read is served from cache.
	again, err := svc.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.statsCalls)
	assert.Equal(t, data.Stats, again.Stats)
}

func TestMonthlyTrendIsDense(t *testing.T) {
	repo := &fakeDashboardRepo{
		// Only two of the six months saw any activity.
		monthly: map[string]int{"2026-05": 2, "2026-08": 4},
	}
	svc := newTestService(repo, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.MonthlyTrend, 6)
	expected := []dashboard.MonthlyCount{
		{Month: "Mar 2026", Borrowings: 0},
		{Month: "Apr 2026", Borrowings: 0},
		{Month: "May 2026", Borrowings: 2},
		{Month: "Jun 2026", Borrowings: 0},
		{Month: "Jul 2026", Borrowings: 0},
		{Month: "Aug 2026", Borrowings: 4},
	}
	assert.Equal(t, expected, data.MonthlyTrend)
}

func TestMonthlyTrendSpansYearBoundary(t *testing.T) {
	repo := &fakeDashboardRepo{
		monthly: map[string]int{"2025-11": 1, "2026-02": 3},
	}
	svc := newTestService(repo, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.MonthlyTrend, 6)
	assert.Equal(t, "Sep 2025", data.MonthlyTrend[0].Month)
	assert.Equal(t, dashboard.MonthlyCount{Month: "Nov 2025", Borrowings: 1}, data.MonthlyTrend[2])
	assert.Equal(t, dashboard.MonthlyCount{Month: "Feb 2026", Borrowings: 3}, data.MonthlyTrend[5])
}

func TestStatusBreakdownColors(t *testing.T) {
	repo := &fakeDashboardRepo{borrowed: 3, returned: 6}
	svc := newTestService(repo, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)

	require.Len(t, data.StatusBreakdown, 2)
	assert.Equal(t, dashboard.StatusSlice{Name: "Borrowed", Value: 3, Color: "#3b82f6"}, data.StatusBreakdown[0])
	assert.Equal(t, dashboard.StatusSlice{Name: "Returned", Value: 6, Color: "#10b981"}, data.StatusBreakdown[1])
}

func TestRefreshCacheOverwrites(t *testing.T) {
	repo := &fakeDashboardRepo{borrowed: 1}
	at := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc := newTestService(repo, at)

	// Warm the cache, then change the underlying data.
	_, err := svc.GetData(context.Background())
	require.NoError(t, err)
	repo.borrowed = 5

	require.NoError(t, svc.RefreshCache(context.Background()))

	data, err := svc.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, data.StatusBreakdown[0].Value)
	// Refresh recomputed; the read after it hit the fresh cache entry.
	assert.Equal(t, 2, repo.statsCalls)
}

func TestGetDataSurvivesCacheMissAfterTTL(t *testing.T) {
	repo := &fakeDashboardRepo{}
	clock := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	mem := infracache.NewMemoryCache()
	svc := NewDashboardService(repo, mem, testConfig())
	svc.(*dashboardService).now = func() time.Time { return clock }

	_, err := svc.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.statsCalls)

	// The memory cache expires entries by wall clock; after the TTL the
	// next read recomputes.
	time.Sleep(time.Millisecond)
	mem2 := infracache.NewMemoryCache()
	svc2 := NewDashboardService(repo, mem2, config.DashboardConfig{
		CacheTTL:      time.Nanosecond,
		RecentLimit:   5,
		TopLimit:      5,
		MonthlyMonths: 6,
	})
	svc2.(*dashboardService).now = func() time.Time { return clock }

	_, err = svc2.GetData(context.Background())
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	_, err = svc2.GetData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, repo.statsCalls)
}
