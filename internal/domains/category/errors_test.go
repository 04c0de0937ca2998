package category

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasBooksError(t *testing.T) {
	err := &HasBooksError{Count: 3}
	assert.Equal(t, "cannot delete category that still has 3 book(s)", err.Error())
	assert.True(t, IsHasBooks(err))
	assert.True(t, IsHasBooks(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsHasBooks(ErrCategoryNotFound))
}

func TestGetHTTPStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, GetHTTPStatusCode(ErrCategoryNotFound))
	assert.Equal(t, http.StatusBadRequest, GetHTTPStatusCode(ErrInvalidCategoryID))
	assert.Equal(t, http.StatusConflict, GetHTTPStatusCode(&HasBooksError{Count: 1}))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(assert.AnError))
}
