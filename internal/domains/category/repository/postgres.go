package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/category"
	"library-backend/pkg/database"
)

// postgresRepository implements category.CategoryRepository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) category.CategoryRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Description,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	var c category.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) List(ctx context.Context, limit, offset int) ([]category.CategoryWithBookCount, int, error) {
	query := `
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at,
		       COUNT(b.id) AS book_count,
		       COUNT(*) OVER () AS total
		FROM categories c
		LEFT JOIN books b ON b.category_id = c.id
		GROUP BY c.id
		ORDER BY c.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var out []category.CategoryWithBookCount
	var total int
	for rows.Next() {
		var c category.CategoryWithBookCount
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.CreatedAt,
			&c.UpdatedAt,
			&c.BookCount,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan category row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read category rows: %w", err)
	}

	return out, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Description, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// Delete runs the dependent-book check and the delete in one transaction,
// so a book inserted between check and delete cannot orphan itself. The
// ON DELETE RESTRICT foreign key backs this up at the database level.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var bookCount int
		err := tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM books WHERE category_id = $1`, id,
		).Scan(&bookCount)
		if err != nil {
			return fmt.Errorf("failed to count books in category: %w", err)
		}
		if bookCount > 0 {
			return &category.HasBooksError{Count: bookCount}
		}

		tag, err := tx.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
				return &category.HasBooksError{Count: bookCount}
			}
			return fmt.Errorf("failed to delete category: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return category.ErrCategoryNotFound
		}

		return nil
	})
}
