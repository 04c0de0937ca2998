package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/pkg/database"
)

// postgresRepository implements book.BookRepository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) book.BookRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) error {
	query := `
		INSERT INTO books (
			id, category_id, title, author, isbn, publisher,
			publication_year, stock, cover_image, description,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		b.ID,
		b.CategoryID,
		b.Title,
		b.Author,
		b.ISBN,
		b.Publisher,
		b.PublicationYear,
		b.Stock,
		b.CoverImage,
		b.Description,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // unique_violation (isbn)
				return book.ErrDuplicateISBN
			}
			if pgErr.Code == "23503" { // foreign_key_violation (category)
				return category.ErrCategoryNotFound
			}
		}
		return fmt.Errorf("failed to insert book: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	query := `
		SELECT id, category_id, title, author, isbn, publisher,
		       publication_year, stock, cover_image, description,
		       created_at, updated_at
		FROM books
		WHERE id = $1
	`

	var b book.Book
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.CategoryID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.Publisher,
		&b.PublicationYear,
		&b.Stock,
		&b.CoverImage,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) GetWithCategory(ctx context.Context, id uuid.UUID) (*book.BookWithCategory, error) {
	query := `
		SELECT b.id, b.category_id, b.title, b.author, b.isbn, b.publisher,
		       b.publication_year, b.stock, b.cover_image, b.description,
		       b.created_at, b.updated_at, c.name
		FROM books b
		JOIN categories c ON c.id = b.category_id
		WHERE b.id = $1
	`

	var b book.BookWithCategory
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.CategoryID,
		&b.Title,
		&b.Author,
		&b.ISBN,
		&b.Publisher,
		&b.PublicationYear,
		&b.Stock,
		&b.CoverImage,
		&b.Description,
		&b.CreatedAt,
		&b.UpdatedAt,
		&b.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) List(ctx context.Context, filter book.ListFilter) ([]book.BookWithCategory, int, error) {
	// $3 category and $4 search are optional; NULL disables the clause.
	query := `
		SELECT b.id, b.category_id, b.title, b.author, b.isbn, b.publisher,
		       b.publication_year, b.stock, b.cover_image, b.description,
		       b.created_at, b.updated_at, c.name,
		       COUNT(*) OVER () AS total
		FROM books b
		JOIN categories c ON c.id = b.category_id
		WHERE ($3::uuid IS NULL OR b.category_id = $3)
		  AND ($4::text IS NULL OR b.title ILIKE '%' || $4 || '%' OR b.author ILIKE '%' || $4 || '%')
		ORDER BY b.title
		LIMIT $1 OFFSET $2
	`

	var search *string
	if filter.Search != "" {
		search = &filter.Search
	}

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset, filter.CategoryID, search)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var out []book.BookWithCategory
	var total int
	for rows.Next() {
		var b book.BookWithCategory
		if err := rows.Scan(
			&b.ID,
			&b.CategoryID,
			&b.Title,
			&b.Author,
			&b.ISBN,
			&b.Publisher,
			&b.PublicationYear,
			&b.Stock,
			&b.CoverImage,
			&b.Description,
			&b.CreatedAt,
			&b.UpdatedAt,
			&b.CategoryName,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read book rows: %w", err)
	}

	return out, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) error {
	query := `
		UPDATE books
		SET category_id = $2, title = $3, author = $4, isbn = $5,
		    publisher = $6, publication_year = $7, stock = $8,
		    cover_image = $9, description = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		b.ID,
		b.CategoryID,
		b.Title,
		b.Author,
		b.ISBN,
		b.Publisher,
		b.PublicationYear,
		b.Stock,
		b.CoverImage,
		b.Description,
		b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return book.ErrDuplicateISBN
			}
			if pgErr.Code == "23503" {
				return category.ErrCategoryNotFound
			}
		}
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	return nil
}

// Delete blocks while any active borrowing still references the book.
// Check and delete share one transaction so a borrowing created in
// between cannot slip through.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var active int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*)
			FROM borrowing_details bd
			JOIN borrowings br ON br.id = bd.borrowing_id
			WHERE bd.book_id = $1 AND br.status = 'borrowed'
		`, id).Scan(&active)
		if err != nil {
			return fmt.Errorf("failed to count active borrowings for book: %w", err)
		}
		if active > 0 {
			return &book.CurrentlyBorrowedError{ActiveBorrowings: active}
		}

		// Historical (returned) details also reference the book; they are
		// removed with it so completed history does not pin the catalog.
		if _, err := tx.Exec(ctx, `DELETE FROM borrowing_details WHERE book_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete borrowing history for book: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return &book.CurrentlyBorrowedError{ActiveBorrowings: active}
			}
			return fmt.Errorf("failed to delete book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}

		return nil
	})
}
