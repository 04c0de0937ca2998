package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/member"
	"library-backend/pkg/logger"
)

type borrowingService struct {
	repository borrowing.BorrowingRepository
	members    member.MemberRepository
}

// NewBorrowingService creates the checkout/return business logic layer.
func NewBorrowingService(repo borrowing.BorrowingRepository, members member.MemberRepository) borrowing.BorrowingService {
	return &borrowingService{
		repository: repo,
		members:    members,
	}
}

func (s *borrowingService) Create(ctx context.Context, req *borrowing.CreateBorrowingReq) (*borrowing.BorrowingResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if len(req.Books) == 0 {
		return nil, borrowing.ErrNoLineItems
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, member.ErrInvalidMemberID
	}
	borrowDate, err := time.Parse(borrowing.DateLayout, req.BorrowDate)
	if err != nil {
		return nil, err
	}

	// Fail fast on an unknown member; the stock transaction never starts.
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	items := make([]borrowing.LineItem, 0, len(req.Books))
	for _, it := range req.Books {
		bookID, err := uuid.Parse(it.BookID)
		if err != nil {
			return nil, err
		}
		items = append(items, borrowing.LineItem{BookID: bookID, Quantity: it.Quantity})
	}

	b := borrowing.NewBorrowing(memberID, borrowDate)
	if err := s.repository.Create(ctx, b, items); err != nil {
		return nil, err
	}

	logger.Info("borrowing created", map[string]interface{}{
		"borrowing_id": b.ID.String(),
		"member_id":    memberID.String(),
		"items":        len(items),
	})

	return s.GetByID(ctx, b.ID)
}

func (s *borrowingService) Return(ctx context.Context, id uuid.UUID, req *borrowing.ReturnBorrowingReq) (*borrowing.BorrowingResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	returnDate, err := time.Parse(borrowing.DateLayout, req.ReturnDate)
	if err != nil {
		return nil, err
	}

	b, err := s.repository.Return(ctx, id, returnDate)
	if err != nil {
		return nil, err
	}

	logger.Info("borrowing returned", map[string]interface{}{
		"borrowing_id": b.ID.String(),
		"return_date":  req.ReturnDate,
	})

	return s.GetByID(ctx, b.ID)
}

func (s *borrowingService) GetByID(ctx context.Context, id uuid.UUID) (*borrowing.BorrowingResp, error) {
	b, err := s.repository.GetWithDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return borrowing.WithMemberToResp(b), nil
}

func (s *borrowingService) List(ctx context.Context, q *borrowing.ListBorrowingsQuery) ([]borrowing.BorrowingResp, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}
	q.Normalize()

	filter := borrowing.ListFilter{
		Status: borrowing.Status(q.Status),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.MemberID != "" {
		memberID, err := uuid.Parse(q.MemberID)
		if err != nil {
			return nil, 0, member.ErrInvalidMemberID
		}
		filter.MemberID = memberID
	}

	items, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return borrowing.WithMembersToResp(items), total, nil
}

// ListByMember is the member history view; a missing member is reported as
// such rather than as an empty page.
func (s *borrowingService) ListByMember(ctx context.Context, memberID uuid.UUID, q *borrowing.ListBorrowingsQuery) ([]borrowing.BorrowingResp, int, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, 0, err
	}

	q.MemberID = memberID.String()
	return s.List(ctx, q)
}
