package book

import (
	"errors"
	"fmt"
	"net/http"

	"library-backend/internal/domains/category"
)

var ErrBookNotFound = errors.New("book not found")

var ErrInvalidBookID = errors.New("invalid book id")

var ErrDuplicateISBN = errors.New("a book with this ISBN already exists")

// CurrentlyBorrowedError blocks deletion of a book with copies out on an
// active borrowing.
type CurrentlyBorrowedError struct {
	ActiveBorrowings int
}

func (e *CurrentlyBorrowedError) Error() string {
	return fmt.Sprintf("cannot delete book that is currently borrowed in %d active borrowing(s)", e.ActiveBorrowings)
}

func IsCurrentlyBorrowed(err error) bool {
	var target *CurrentlyBorrowedError
	return errors.As(err, &target)
}

// GetHTTPStatusCode maps a domain error to an HTTP status code.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, category.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBookID):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateISBN):
		return http.StatusConflict
	case IsCurrentlyBorrowed(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
