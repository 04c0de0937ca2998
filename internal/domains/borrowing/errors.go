package borrowing

import (
	"errors"
	"fmt"
	"net/http"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/member"
)

var ErrBorrowingNotFound = errors.New("borrowing not found")

var ErrInvalidBorrowingID = errors.New("invalid borrowing id")

// ErrAlreadyReturned rejects a second return. The transition is terminal;
// a repeat is an error, not a silent no-op.
var ErrAlreadyReturned = errors.New("this borrowing has already been returned")

var ErrReturnBeforeBorrow = errors.New("return date must be on or after borrow date")

var ErrNoLineItems = errors.New("a borrowing needs at least one book")

// InsufficientStockError aborts the whole create when any line item asks
// for more copies than are on the shelf. Names the book and both numbers
// so the caller can show exactly what failed.
type InsufficientStockError struct {
	BookTitle string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for book: %s. Available: %d, Requested: %d",
		e.BookTitle, e.Available, e.Requested)
}

func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}

// GetHTTPStatusCode maps a domain error to an HTTP status code.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBorrowingNotFound),
		errors.Is(err, member.ErrMemberNotFound),
		errors.Is(err, book.ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBorrowingID),
		errors.Is(err, member.ErrInvalidMemberID),
		errors.Is(err, ErrReturnBeforeBorrow),
		errors.Is(err, ErrNoLineItems):
		return http.StatusBadRequest
	case errors.Is(err, ErrAlreadyReturned), IsInsufficientStock(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
