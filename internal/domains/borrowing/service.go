package borrowing

import (
	"context"

	"github.com/google/uuid"
)

// BorrowingService is the checkout/return business logic.
type BorrowingService interface {
	Create(ctx context.Context, req *CreateBorrowingReq) (*BorrowingResp, error)
	Return(ctx context.Context, id uuid.UUID, req *ReturnBorrowingReq) (*BorrowingResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BorrowingResp, error)
	List(ctx context.Context, q *ListBorrowingsQuery) ([]BorrowingResp, int, error)
	ListByMember(ctx context.Context, memberID uuid.UUID, q *ListBorrowingsQuery) ([]BorrowingResp, int, error)
}
