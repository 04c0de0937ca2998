package member

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMemberNotFound = errors.New("member not found")

var ErrInvalidMemberID = errors.New("invalid member id")

var ErrDuplicateEmail = errors.New("a member with this email already exists")

// ErrDuplicateMemberCode signals a collision on the generated code; the
// service retries with a new code.
var ErrDuplicateMemberCode = errors.New("member code already exists")

// ActiveBorrowingsError blocks deletion of a member who still has books
// out.
type ActiveBorrowingsError struct {
	Count int
}

func (e *ActiveBorrowingsError) Error() string {
	return fmt.Sprintf("cannot delete member who still has %d active borrowing(s)", e.Count)
}

func IsActiveBorrowings(err error) bool {
	var target *ActiveBorrowingsError
	return errors.As(err, &target)
}

// GetHTTPStatusCode maps a domain error to an HTTP status code.
func GetHTTPStatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidMemberID):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateEmail), errors.Is(err, ErrDuplicateMemberCode):
		return http.StatusConflict
	case IsActiveBorrowings(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
