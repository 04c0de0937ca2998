package borrowing

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/member"
)

func validCreateReq() CreateBorrowingReq {
	return CreateBorrowingReq{
		MemberID:   uuid.NewString(),
		BorrowDate: "2026-08-20",
		Books: []BorrowItemReq{
			{BookID: uuid.NewString(), Quantity: 1},
		},
	}
}

func TestCreateBorrowingReqValidate(t *testing.T) {
	assert.NoError(t, validCreateReq().Validate())

	t.Run("missing member", func(t *testing.T) {
		req := validCreateReq()
		req.MemberID = ""
		assert.Error(t, req.Validate())
	})

	t.Run("empty books", func(t *testing.T) {
		req := validCreateReq()
		req.Books = nil
		assert.Error(t, req.Validate())
	})

	t.Run("bad book id", func(t *testing.T) {
		req := validCreateReq()
		req.Books[0].BookID = "not-a-uuid"
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "books[0]")
	})

	t.Run("zero quantity", func(t *testing.T) {
		req := validCreateReq()
		req.Books[0].Quantity = 0
		assert.Error(t, req.Validate())
	})

	t.Run("bad date format", func(t *testing.T) {
		req := validCreateReq()
		req.BorrowDate = "2026/08/20"
		assert.Error(t, req.Validate())
	})
}

func TestListBorrowingsQueryValidate(t *testing.T) {
	assert.NoError(t, ListBorrowingsQuery{}.Validate())
	assert.NoError(t, ListBorrowingsQuery{Status: "borrowed"}.Validate())
	assert.NoError(t, ListBorrowingsQuery{Status: "returned"}.Validate())
	assert.Error(t, ListBorrowingsQuery{Status: "overdue"}.Validate())
	assert.Error(t, ListBorrowingsQuery{MemberID: "nope"}.Validate())
}

func TestToRespFormatsDates(t *testing.T) {
	b := NewBorrowing(uuid.New(), time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	resp := ToResp(b, nil)
	assert.Equal(t, "2026-08-20", resp.BorrowDate)
	assert.Nil(t, resp.ReturnDate)
	assert.Equal(t, StatusBorrowed, resp.Status)

	b.MarkReturned(time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC))
	resp = ToResp(b, nil)
	require.NotNil(t, resp.ReturnDate)
	assert.Equal(t, "2026-08-25", *resp.ReturnDate)
	assert.Equal(t, StatusReturned, resp.Status)
}

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrBorrowingNotFound, http.StatusNotFound},
		{member.ErrMemberNotFound, http.StatusNotFound},
		{ErrInvalidBorrowingID, http.StatusBadRequest},
		{ErrReturnBeforeBorrow, http.StatusBadRequest},
		{ErrAlreadyReturned, http.StatusConflict},
		{&InsufficientStockError{BookTitle: "Dune", Available: 0, Requested: 1}, http.StatusConflict},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GetHTTPStatusCode(tt.err), "for %v", tt.err)
	}
}
