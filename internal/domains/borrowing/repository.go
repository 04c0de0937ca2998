package borrowing

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ListFilter narrows List results. Zero values disable a filter.
type ListFilter struct {
	Status   Status
	MemberID uuid.UUID
	Limit    int
	Offset   int
}

// BorrowingRepository persists borrowings and owns every stock movement.
// Create and Return are transactional: line-item inserts, stock checks and
// stock mutations commit together or not at all.
type BorrowingRepository interface {
	// Create inserts the borrowing and its details, decrementing each
	// book's stock under a row lock. Any shortfall aborts the whole
	// transaction with an *InsufficientStockError.
	Create(ctx context.Context, b *Borrowing, items []LineItem) error

	// Return flips the borrowing to returned and restores the stock of
	// every line item. The status is re-checked under lock so two
	// concurrent returns cannot both restock.
	Return(ctx context.Context, id uuid.UUID, returnDate time.Time) (*Borrowing, error)

	GetByID(ctx context.Context, id uuid.UUID) (*Borrowing, error)
	GetWithDetails(ctx context.Context, id uuid.UUID) (*BorrowingWithMember, error)
	List(ctx context.Context, filter ListFilter) ([]BorrowingWithMember, int, error)
}
