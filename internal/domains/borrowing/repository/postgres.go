package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrowing"
	"library-backend/pkg/database"
)

// postgresRepository implements borrowing.BorrowingRepository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) borrowing.BorrowingRepository {
	return &postgresRepository{pool: pool}
}

// Create inserts the borrowing header, then walks the line items in request
// order. Each book row is locked with FOR UPDATE before its stock is read,
// so a concurrent checkout of the same title blocks until we commit or roll
// back; the check-and-decrement pair is race free. The first shortfall
// aborts the whole transaction, leaving every stock level untouched.
func (r *postgresRepository) Create(ctx context.Context, b *borrowing.Borrowing, items []borrowing.LineItem) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO borrowings (
				id, member_id, borrow_date, return_date, status,
				created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			b.ID,
			b.MemberID,
			b.BorrowDate,
			b.ReturnDate,
			b.Status,
			b.CreatedAt,
			b.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert borrowing: %w", err)
		}

		for _, item := range items {
			var title string
			var stock int
			err := tx.QueryRow(ctx, `
				SELECT title, stock FROM books
				WHERE id = $1
				FOR UPDATE
			`, item.BookID).Scan(&title, &stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("book %s: %w", item.BookID, book.ErrBookNotFound)
				}
				return fmt.Errorf("failed to lock book row: %w", err)
			}

			if stock < item.Quantity {
				return &borrowing.InsufficientStockError{
					BookTitle: title,
					Available: stock,
					Requested: item.Quantity,
				}
			}

			if _, err := tx.Exec(ctx, `
				INSERT INTO borrowing_details (id, borrowing_id, book_id, quantity)
				VALUES ($1, $2, $3, $4)
			`, uuid.New(), b.ID, item.BookID, item.Quantity); err != nil {
				return fmt.Errorf("failed to insert borrowing detail: %w", err)
			}

			if _, err := tx.Exec(ctx, `
				UPDATE books SET stock = stock - $2, updated_at = NOW()
				WHERE id = $1
			`, item.BookID, item.Quantity); err != nil {
				return fmt.Errorf("failed to decrement stock: %w", err)
			}
		}

		return nil
	})
}

// Return re-reads the borrowing under FOR UPDATE so that two concurrent
// returns serialize: the loser sees status already flipped and fails with
// ErrAlreadyReturned instead of restocking twice.
func (r *postgresRepository) Return(ctx context.Context, id uuid.UUID, returnDate time.Time) (*borrowing.Borrowing, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*borrowing.Borrowing, error) {
		var b borrowing.Borrowing
		err := tx.QueryRow(ctx, `
			SELECT id, member_id, borrow_date, return_date, status,
			       created_at, updated_at
			FROM borrowings
			WHERE id = $1
			FOR UPDATE
		`, id).Scan(
			&b.ID,
			&b.MemberID,
			&b.BorrowDate,
			&b.ReturnDate,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, borrowing.ErrBorrowingNotFound
			}
			return nil, fmt.Errorf("failed to lock borrowing: %w", err)
		}

		if !b.CanReturn() {
			return nil, borrowing.ErrAlreadyReturned
		}
		if returnDate.Before(b.BorrowDate) {
			return nil, borrowing.ErrReturnBeforeBorrow
		}

		b.MarkReturned(returnDate)

		if _, err := tx.Exec(ctx, `
			UPDATE borrowings
			SET status = $2, return_date = $3, updated_at = $4
			WHERE id = $1
		`, b.ID, b.Status, b.ReturnDate, b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to update borrowing: %w", err)
		}

		// Restore every line item's copies in one statement.
		if _, err := tx.Exec(ctx, `
			UPDATE books
			SET stock = stock + d.quantity, updated_at = NOW()
			FROM borrowing_details d
			WHERE d.borrowing_id = $1 AND books.id = d.book_id
		`, b.ID); err != nil {
			return nil, fmt.Errorf("failed to restore stock: %w", err)
		}

		return &b, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*borrowing.Borrowing, error) {
	query := `
		SELECT id, member_id, borrow_date, return_date, status,
		       created_at, updated_at
		FROM borrowings
		WHERE id = $1
	`

	var b borrowing.Borrowing
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.MemberID,
		&b.BorrowDate,
		&b.ReturnDate,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, borrowing.ErrBorrowingNotFound
		}
		return nil, fmt.Errorf("failed to get borrowing: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetWithDetails(ctx context.Context, id uuid.UUID) (*borrowing.BorrowingWithMember, error) {
	query := `
		SELECT b.id, b.member_id, b.borrow_date, b.return_date, b.status,
		       b.created_at, b.updated_at,
		       m.name, m.member_code
		FROM borrowings b
		JOIN members m ON m.id = b.member_id
		WHERE b.id = $1
	`

	var out borrowing.BorrowingWithMember
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&out.ID,
		&out.MemberID,
		&out.BorrowDate,
		&out.ReturnDate,
		&out.Status,
		&out.CreatedAt,
		&out.UpdatedAt,
		&out.MemberName,
		&out.MemberCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, borrowing.ErrBorrowingNotFound
		}
		return nil, fmt.Errorf("failed to get borrowing: %w", err)
	}

	details, err := r.detailsFor(ctx, []uuid.UUID{out.ID})
	if err != nil {
		return nil, err
	}
	out.Details = details[out.ID]

	return &out, nil
}

func (r *postgresRepository) List(ctx context.Context, filter borrowing.ListFilter) ([]borrowing.BorrowingWithMember, int, error) {
	query := `
		SELECT b.id, b.member_id, b.borrow_date, b.return_date, b.status,
		       b.created_at, b.updated_at,
		       m.name, m.member_code,
		       COUNT(*) OVER () AS total
		FROM borrowings b
		JOIN members m ON m.id = b.member_id
		WHERE ($3::text IS NULL OR b.status = $3)
		  AND ($4::uuid IS NULL OR b.member_id = $4)
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var statusArg *string
	if filter.Status != "" {
		s := string(filter.Status)
		statusArg = &s
	}
	var memberArg *uuid.UUID
	if filter.MemberID != uuid.Nil {
		memberArg = &filter.MemberID
	}

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset, statusArg, memberArg)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list borrowings: %w", err)
	}
	defer rows.Close()

	var out []borrowing.BorrowingWithMember
	var total int
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var b borrowing.BorrowingWithMember
		if err := rows.Scan(
			&b.ID,
			&b.MemberID,
			&b.BorrowDate,
			&b.ReturnDate,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.MemberName,
			&b.MemberCode,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan borrowing row: %w", err)
		}
		out = append(out, b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read borrowing rows: %w", err)
	}

	if len(ids) > 0 {
		details, err := r.detailsFor(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for i := range out {
			out[i].Details = details[out[i].ID]
		}
	}

	return out, total, nil
}

// detailsFor fetches the line items for a page of borrowings in one query.
func (r *postgresRepository) detailsFor(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]borrowing.DetailWithBook, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.borrowing_id, d.book_id, d.quantity,
		       bk.title, bk.author
		FROM borrowing_details d
		JOIN books bk ON bk.id = d.book_id
		WHERE d.borrowing_id = ANY($1)
		ORDER BY d.id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list borrowing details: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]borrowing.DetailWithBook)
	for rows.Next() {
		var d borrowing.DetailWithBook
		if err := rows.Scan(
			&d.ID,
			&d.BorrowingID,
			&d.BookID,
			&d.Quantity,
			&d.BookTitle,
			&d.BookAuthor,
		); err != nil {
			return nil, fmt.Errorf("failed to scan detail row: %w", err)
		}
		out[d.BorrowingID] = append(out[d.BorrowingID], d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read detail rows: %w", err)
	}

	return out, nil
}
