package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/member"
)

// fakeBorrowingRepo keeps borrowings in memory and mimics the transactional
// guarantees of the real repository: Create fails atomically, Return
// rejects the second transition.
type fakeBorrowingRepo struct {
	borrowings map[uuid.UUID]*borrowing.Borrowing
	items      map[uuid.UUID][]borrowing.LineItem
	createErr  error
	createdIn  []borrowing.LineItem
}

func newFakeBorrowingRepo() *fakeBorrowingRepo {
	return &fakeBorrowingRepo{
		borrowings: make(map[uuid.UUID]*borrowing.Borrowing),
		items:      make(map[uuid.UUID][]borrowing.LineItem),
	}
}

func (f *fakeBorrowingRepo) Create(ctx context.Context, b *borrowing.Borrowing, items []borrowing.LineItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	clone := *b
	f.borrowings[b.ID] = &clone
	f.items[b.ID] = items
	f.createdIn = items
	return nil
}

func (f *fakeBorrowingRepo) Return(ctx context.Context, id uuid.UUID, returnDate time.Time) (*borrowing.Borrowing, error) {
	b, ok := f.borrowings[id]
	if !ok {
		return nil, borrowing.ErrBorrowingNotFound
	}
	if !b.CanReturn() {
		return nil, borrowing.ErrAlreadyReturned
	}
	if returnDate.Before(b.BorrowDate) {
		return nil, borrowing.ErrReturnBeforeBorrow
	}
	b.MarkReturned(returnDate)
	clone := *b
	return &clone, nil
}

func (f *fakeBorrowingRepo) GetByID(ctx context.Context, id uuid.UUID) (*borrowing.Borrowing, error) {
	b, ok := f.borrowings[id]
	if !ok {
		return nil, borrowing.ErrBorrowingNotFound
	}
	clone := *b
	return &clone, nil
}

func (f *fakeBorrowingRepo) GetWithDetails(ctx context.Context, id uuid.UUID) (*borrowing.BorrowingWithMember, error) {
	b, ok := f.borrowings[id]
	if !ok {
		return nil, borrowing.ErrBorrowingNotFound
	}
	out := &borrowing.BorrowingWithMember{
		Borrowing:  *b,
		MemberName: "Test Member",
		MemberCode: "MBR-20260101-TEST",
	}
	for _, item := range f.items[id] {
		out.Details = append(out.Details, borrowing.DetailWithBook{
			BorrowingDetail: borrowing.BorrowingDetail{
				ID:          uuid.New(),
				BorrowingID: id,
				BookID:      item.BookID,
				Quantity:    item.Quantity,
			},
			BookTitle:  "Some Title",
			BookAuthor: "Some Author",
		})
	}
	return out, nil
}

func (f *fakeBorrowingRepo) List(ctx context.Context, filter borrowing.ListFilter) ([]borrowing.BorrowingWithMember, int, error) {
	var out []borrowing.BorrowingWithMember
	for id, b := range f.borrowings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.MemberID != uuid.Nil && b.MemberID != filter.MemberID {
			continue
		}
		enriched, _ := f.GetWithDetails(ctx, id)
		out = append(out, *enriched)
	}
	return out, len(out), nil
}

type fakeMemberRepo struct {
	members map[uuid.UUID]*member.Member
}

func newFakeMemberRepo(ids ...uuid.UUID) *fakeMemberRepo {
	f := &fakeMemberRepo{members: make(map[uuid.UUID]*member.Member)}
	for _, id := range ids {
		f.members[id] = &member.Member{ID: id, Name: "Test Member"}
	}
	return f
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *member.Member) error { return nil }

func (f *fakeMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func (f *fakeMemberRepo) List(ctx context.Context, search string, limit, offset int) ([]member.MemberWithActiveCount, int, error) {
	return nil, 0, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) error { return nil }

func (f *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeMemberRepo) CountActiveBorrowings(ctx context.Context, id uuid.UUID) (int, error) {
	return 0, nil
}

func TestCreateBorrowing(t *testing.T) {
	memberID := uuid.New()
	bookA := uuid.New()
	bookB := uuid.New()

	repo := newFakeBorrowingRepo()
	svc := NewBorrowingService(repo, newFakeMemberRepo(memberID))

	resp, err := svc.Create(context.Background(), &borrowing.CreateBorrowingReq{
		MemberID:   memberID.String(),
		BorrowDate: "2026-08-20",
		Books: []borrowing.BorrowItemReq{
			{BookID: bookA.String(), Quantity: 2},
			{BookID: bookB.String(), Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, borrowing.StatusBorrowed, resp.Status)
	assert.Equal(t, "2026-08-20", resp.BorrowDate)
	assert.Nil(t, resp.ReturnDate)
	require.Len(t, resp.Details, 2)

	// Line items reach the repository in request order.
	require.Len(t, repo.createdIn, 2)
	assert.Equal(t, bookA, repo.createdIn[0].BookID)
	assert.Equal(t, 2, repo.createdIn[0].Quantity)
	assert.Equal(t, bookB, repo.createdIn[1].BookID)
}

func TestCreateBorrowingValidation(t *testing.T) {
	memberID := uuid.New()
	repo := newFakeBorrowingRepo()
	svc := NewBorrowingService(repo, newFakeMemberRepo(memberID))

	tests := []struct {
		name string
		req  borrowing.CreateBorrowingReq
	}{
		{
			name: "no line items",
			req: borrowing.CreateBorrowingReq{
				MemberID:   memberID.String(),
				BorrowDate: "2026-08-20",
			},
		},
		{
			name: "zero quantity",
			req: borrowing.CreateBorrowingReq{
				MemberID:   memberID.String(),
				BorrowDate: "2026-08-20",
				Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 0}},
			},
		},
		{
			name: "malformed member id",
			req: borrowing.CreateBorrowingReq{
				MemberID:   "not-a-uuid",
				BorrowDate: "2026-08-20",
				Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 1}},
			},
		},
		{
			name: "malformed borrow date",
			req: borrowing.CreateBorrowingReq{
				MemberID:   memberID.String(),
				BorrowDate: "20/08/2026",
				Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 1}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.Error(t, err)
			assert.Empty(t, repo.borrowings, "nothing should be persisted")
		})
	}
}

func TestCreateBorrowingUnknownMember(t *testing.T) {
	repo := newFakeBorrowingRepo()
	svc := NewBorrowingService(repo, newFakeMemberRepo())

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingReq{
		MemberID:   uuid.NewString(),
		BorrowDate: "2026-08-20",
		Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 1}},
	})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	assert.Empty(t, repo.borrowings)
}

func TestCreateBorrowingInsufficientStock(t *testing.T) {
	memberID := uuid.New()
	repo := newFakeBorrowingRepo()
	repo.createErr = &borrowing.InsufficientStockError{
		BookTitle: "The Go Programming Language",
		Available: 1,
		Requested: 3,
	}
	svc := NewBorrowingService(repo, newFakeMemberRepo(memberID))

	_, err := svc.Create(context.Background(), &borrowing.CreateBorrowingReq{
		MemberID:   memberID.String(),
		BorrowDate: "2026-08-20",
		Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 3}},
	})
	require.Error(t, err)
	assert.True(t, borrowing.IsInsufficientStock(err))
	assert.Equal(t,
		"insufficient stock for book: The Go Programming Language. Available: 1, Requested: 3",
		err.Error())
}

func TestReturnBorrowing(t *testing.T) {
	memberID := uuid.New()
	repo := newFakeBorrowingRepo()
	svc := NewBorrowingService(repo, newFakeMemberRepo(memberID))

	created, err := svc.Create(context.Background(), &borrowing.CreateBorrowingReq{
		MemberID:   memberID.String(),
		BorrowDate: "2026-08-20",
		Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 1}},
	})
	require.NoError(t, err)

	id := uuid.MustParse(created.ID)
	resp, err := svc.Return(context.Background(), id, &borrowing.ReturnBorrowingReq{
		ReturnDate: "2026-08-25",
	})
	require.NoError(t, err)

	assert.Equal(t, borrowing.StatusReturned, resp.Status)
	require.NotNil(t, resp.ReturnDate)
	assert.Equal(t, "2026-08-25", *resp.ReturnDate)

	// The transition is terminal.
	_, err = svc.Return(context.Background(), id, &borrowing.ReturnBorrowingReq{
		ReturnDate: "2026-08-26",
	})
	assert.ErrorIs(t, err, borrowing.ErrAlreadyReturned)
}

func TestReturnBeforeBorrowDate(t *testing.T) {
	memberID := uuid.New()
	repo := newFakeBorrowingRepo()
	svc := NewBorrowingService(repo, newFakeMemberRepo(memberID))

	created, err := svc.Create(context.Background(), &borrowing.CreateBorrowingReq{
		MemberID:   memberID.String(),
		BorrowDate: "2026-08-20",
		Books:      []borrowing.BorrowItemReq{{BookID: uuid.NewString(), Quantity: 1}},
	})
	require.NoError(t, err)

	_, err = svc.Return(context.Background(), uuid.MustParse(created.ID), &borrowing.ReturnBorrowingReq{
		ReturnDate: "2026-08-19",
	})
	assert.ErrorIs(t, err, borrowing.ErrReturnBeforeBorrow)
}

func TestReturnUnknownBorrowing(t *testing.T) {
	svc := NewBorrowingService(newFakeBorrowingRepo(), newFakeMemberRepo())

	_, err := svc.Return(context.Background(), uuid.New(), &borrowing.ReturnBorrowingReq{
		ReturnDate: "2026-08-25",
	})
	assert.ErrorIs(t, err, borrowing.ErrBorrowingNotFound)
}

func TestListByMemberUnknownMember(t *testing.T) {
	svc := NewBorrowingService(newFakeBorrowingRepo(), newFakeMemberRepo())

	_, _, err := svc.ListByMember(context.Background(), uuid.New(), &borrowing.ListBorrowingsQuery{})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
