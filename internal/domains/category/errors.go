package category

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrCategoryNotFound = errors.New("category not found")

var ErrInvalidCategoryID = errors.New("invalid category id")

// HasBooksError blocks deletion of a category that still owns books.
// Carries the count so the caller can surface it, matching the delete
// guard message shown to users.
type HasBooksError struct {
	Count int
}

func (e *HasBooksError) Error() string {
	return fmt.Sprintf("cannot delete category that still has %d book(s)", e.Count)
}

func IsHasBooks(err error) bool {
	var target *HasBooksError
	return errors.As(err, &target)
}

// GetHTTPStatusCode maps a domain error to an HTTP status code.
// Centralized so handlers stay thin.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCategoryID):
		return http.StatusBadRequest
	case IsHasBooks(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
