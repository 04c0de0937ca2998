package borrowing

import (
	"time"

	"github.com/google/uuid"
)

// Status is the borrowing state. Two states, one transition:
// borrowed -> returned, and returned is terminal.
type Status string

const (
	StatusBorrowed Status = "borrowed"
	StatusReturned Status = "returned"
)

// Borrowing is one checkout transaction: a member taking one or more
// books on a given date. return_date is null exactly while the status is
// "borrowed".
type Borrowing struct {
	ID         uuid.UUID
	MemberID   uuid.UUID
	BorrowDate time.Time
	ReturnDate *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// BorrowingDetail is one line item of a borrowing. The set of details is
// fixed at creation; there is no update path.
type BorrowingDetail struct {
	ID          uuid.UUID
	BorrowingID uuid.UUID
	BookID      uuid.UUID
	Quantity    int
}

// LineItem is a requested (book, quantity) pair for a new borrowing.
type LineItem struct {
	BookID   uuid.UUID
	Quantity int
}

// DetailWithBook enriches a detail with book fields for display.
type DetailWithBook struct {
	BorrowingDetail
	BookTitle  string
	BookAuthor string
}

// BorrowingWithMember enriches a borrowing with member identity and its
// line items; the read model for lists and detail pages.
type BorrowingWithMember struct {
	Borrowing
	MemberName string
	MemberCode string
	Details    []DetailWithBook
}

// NewBorrowing builds a borrowing in its initial state.
func NewBorrowing(memberID uuid.UUID, borrowDate time.Time) *Borrowing {
	now := time.Now()
	return &Borrowing{
		ID:         uuid.New(),
		MemberID:   memberID,
		BorrowDate: borrowDate,
		Status:     StatusBorrowed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// CanReturn reports whether the single allowed transition is still open.
func (b *Borrowing) CanReturn() bool {
	return b.Status == StatusBorrowed
}

// MarkReturned applies the terminal transition.
func (b *Borrowing) MarkReturned(returnDate time.Time) {
	b.Status = StatusReturned
	b.ReturnDate = &returnDate
	b.UpdatedAt = time.Now()
}
