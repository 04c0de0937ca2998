package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/member"
	"library-backend/pkg/database"
)

// postgresRepository implements member.MemberRepository.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) member.MemberRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, m *member.Member) error {
	query := `
		INSERT INTO members (
			id, member_code, name, email, phone, address, join_date,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.MemberCode,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.JoinDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err, "failed to insert member")
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	query := `
		SELECT id, member_code, name, email, phone, address, join_date,
		       created_at, updated_at
		FROM members
		WHERE id = $1
	`

	var m member.Member
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.MemberCode,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.Address,
		&m.JoinDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return &m, nil
}

func (r *postgresRepository) List(ctx context.Context, search string, limit, offset int) ([]member.MemberWithActiveCount, int, error) {
	query := `
		SELECT m.id, m.member_code, m.name, m.email, m.phone, m.address,
		       m.join_date, m.created_at, m.updated_at,
		       COUNT(b.id) FILTER (WHERE b.status = 'borrowed') AS active_borrowings,
		       COUNT(*) OVER () AS total
		FROM members m
		LEFT JOIN borrowings b ON b.member_id = m.id
		WHERE ($3::text IS NULL
		       OR m.name ILIKE '%' || $3 || '%'
		       OR m.email ILIKE '%' || $3 || '%'
		       OR m.member_code ILIKE '%' || $3 || '%')
		GROUP BY m.id
		ORDER BY m.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var searchArg *string
	if search != "" {
		searchArg = &search
	}

	rows, err := r.pool.Query(ctx, query, limit, offset, searchArg)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var out []member.MemberWithActiveCount
	var total int
	for rows.Next() {
		var m member.MemberWithActiveCount
		if err := rows.Scan(
			&m.ID,
			&m.MemberCode,
			&m.Name,
			&m.Email,
			&m.Phone,
			&m.Address,
			&m.JoinDate,
			&m.CreatedAt,
			&m.UpdatedAt,
			&m.ActiveBorrowings,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan member row: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to read member rows: %w", err)
	}

	return out, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, m *member.Member) error {
	query := `
		UPDATE members
		SET name = $2, email = $3, phone = $4, address = $5,
		    join_date = $6, updated_at = $7
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		m.Address,
		m.JoinDate,
		m.UpdatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err, "failed to update member")
	}
	if tag.RowsAffected() == 0 {
		return member.ErrMemberNotFound
	}

	return nil
}

// Delete blocks while the member still has active borrowings; check and
// delete share one transaction.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var active int
		err := tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM borrowings
			WHERE member_id = $1 AND status = 'borrowed'
		`, id).Scan(&active)
		if err != nil {
			return fmt.Errorf("failed to count active borrowings: %w", err)
		}
		if active > 0 {
			return &member.ActiveBorrowingsError{Count: active}
		}

		// Returned borrowings are history owned by the member; they go
		// with the member record, details first.
		if _, err := tx.Exec(ctx, `
			DELETE FROM borrowing_details
			WHERE borrowing_id IN (SELECT id FROM borrowings WHERE member_id = $1)
		`, id); err != nil {
			return fmt.Errorf("failed to delete borrowing details: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM borrowings WHERE member_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete borrowings: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM members WHERE id = $1`, id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return &member.ActiveBorrowingsError{Count: active}
			}
			return fmt.Errorf("failed to delete member: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return member.ErrMemberNotFound
		}

		return nil
	})
}

func (r *postgresRepository) CountActiveBorrowings(ctx context.Context, id uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM borrowings
		WHERE member_id = $1 AND status = 'borrowed'
	`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active borrowings: %w", err)
	}
	return count, nil
}

// mapUniqueViolation translates the two unique constraints on members
// into their domain errors.
func mapUniqueViolation(err error, context string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "member_code") {
			return member.ErrDuplicateMemberCode
		}
		return member.ErrDuplicateEmail
	}
	return fmt.Errorf("%s: %w", context, err)
}
