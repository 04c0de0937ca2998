package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/dashboard"
)

// postgresRepository implements dashboard.Repository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) dashboard.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Stats(ctx context.Context) (*dashboard.Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COALESCE(SUM(stock), 0) FROM books),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM members),
			(SELECT COUNT(DISTINCT member_id) FROM borrowings WHERE status = 'borrowed'),
			(SELECT COUNT(*) FROM borrowings),
			(SELECT COUNT(*) FROM borrowings WHERE status = 'borrowed'),
			(SELECT COUNT(*) FROM borrowings WHERE status = 'returned'),
			(SELECT COALESCE(SUM(d.quantity), 0)
			 FROM borrowing_details d
			 JOIN borrowings b ON b.id = d.borrowing_id
			 WHERE b.status = 'borrowed')
	`

	var s dashboard.Stats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.TotalBooks,
		&s.AvailableBooks,
		&s.TotalCategories,
		&s.TotalMembers,
		&s.ActiveMembers,
		&s.TotalBorrowings,
		&s.ActiveBorrowings,
		&s.ReturnedBorrowings,
		&s.BooksOut,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load dashboard stats: %w", err)
	}

	return &s, nil
}

func (r *postgresRepository) RecentBorrowings(ctx context.Context, limit int) ([]dashboard.RecentBorrowing, error) {
	query := `
		SELECT b.id, m.name, b.borrow_date, b.status,
		       ARRAY_AGG(bk.title ORDER BY bk.title) AS titles
		FROM borrowings b
		JOIN members m ON m.id = b.member_id
		JOIN borrowing_details d ON d.borrowing_id = b.id
		JOIN books bk ON bk.id = d.book_id
		GROUP BY b.id, m.name
		ORDER BY b.borrow_date DESC, b.created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent borrowings: %w", err)
	}
	defer rows.Close()

	var out []dashboard.RecentBorrowing
	for rows.Next() {
		var rb dashboard.RecentBorrowing
		var borrowDate time.Time
		if err := rows.Scan(&rb.ID, &rb.MemberName, &borrowDate, &rb.Status, &rb.BookTitles); err != nil {
			return nil, fmt.Errorf("failed to scan recent borrowing: %w", err)
		}
		rb.BorrowDate = borrowDate.Format("2006-01-02")
		out = append(out, rb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent borrowings: %w", err)
	}

	return out, nil
}

// TopBooks counts copies only in returned borrowings, so titles still out
// on loan do not inflate the ranking.
func (r *postgresRepository) TopBooks(ctx context.Context, limit int) ([]dashboard.TopBook, error) {
	query := `
		SELECT bk.id, bk.title, bk.author, SUM(d.quantity) AS borrowed
		FROM borrowing_details d
		JOIN borrowings b ON b.id = d.borrowing_id
		JOIN books bk ON bk.id = d.book_id
		WHERE b.status = 'returned'
		GROUP BY bk.id
		ORDER BY borrowed DESC, bk.title
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top books: %w", err)
	}
	defer rows.Close()

	var out []dashboard.TopBook
	for rows.Next() {
		var t dashboard.TopBook
		if err := rows.Scan(&t.BookID, &t.Title, &t.Author, &t.Borrowed); err != nil {
			return nil, fmt.Errorf("failed to scan top book: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top books: %w", err)
	}

	return out, nil
}

func (r *postgresRepository) MonthlyTrend(ctx context.Context, since time.Time) (map[string]int, error) {
	query := `
		SELECT to_char(borrow_date, 'YYYY-MM') AS month, COUNT(*)
		FROM borrowings
		WHERE borrow_date >= $1
		GROUP BY month
	`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly trend: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		out[month] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read monthly counts: %w", err)
	}

	return out, nil
}

func (r *postgresRepository) StatusBreakdown(ctx context.Context) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'borrowed'),
			COUNT(*) FILTER (WHERE status = 'returned')
		FROM borrowings
	`

	var borrowed, returned int
	if err := r.pool.QueryRow(ctx, query).Scan(&borrowed, &returned); err != nil {
		return 0, 0, fmt.Errorf("failed to load status breakdown: %w", err)
	}

	return borrowed, returned, nil
}

// BooksByCategory ranks categories the same way TopBooks ranks titles:
// by copies in returned borrowings only. Categories with nothing
// completed are left out entirely.
func (r *postgresRepository) BooksByCategory(ctx context.Context, limit int) ([]dashboard.CategoryCount, error) {
	query := `
		SELECT c.name, SUM(d.quantity) AS borrowed
		FROM categories c
		JOIN books bk ON bk.category_id = c.id
		JOIN borrowing_details d ON d.book_id = bk.id
		JOIN borrowings b ON b.id = d.borrowing_id
		WHERE b.status = 'returned'
		GROUP BY c.id
		HAVING SUM(d.quantity) > 0
		ORDER BY borrowed DESC, c.name
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank categories: %w", err)
	}
	defer rows.Close()

	var out []dashboard.CategoryCount
	for rows.Next() {
		var cc dashboard.CategoryCount
		if err := rows.Scan(&cc.Name, &cc.Borrowed); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		out = append(out, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category counts: %w", err)
	}

	return out, nil
}
