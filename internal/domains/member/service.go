package member

import (
	"context"

	"github.com/google/uuid"
)

// MemberService is the business logic contract for membership.
type MemberService interface {
	Create(ctx context.Context, req *CreateMemberReq) (*MemberResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*MemberResp, error)
	List(ctx context.Context, q *ListMembersQuery) ([]MemberResp, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMemberReq) (*MemberResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
