package member

import (
	"context"

	"github.com/google/uuid"
)

// MemberRepository is the data access contract for members.
type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	List(ctx context.Context, search string, limit, offset int) ([]MemberWithActiveCount, int, error)
	Update(ctx context.Context, m *Member) error
	// Delete removes a member. The active-borrowing check and the delete
	// run in one transaction; a member with books still out fails with
	// *ActiveBorrowingsError.
	Delete(ctx context.Context, id uuid.UUID) error
	// CountActiveBorrowings reports how many of the member's borrowings
	// are still in "borrowed" status.
	CountActiveBorrowings(ctx context.Context, id uuid.UUID) (int, error)
}
