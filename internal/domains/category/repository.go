package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryRepository is the data access contract for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	// List returns a page of categories with their book counts plus the
	// total number of categories.
	List(ctx context.Context, limit, offset int) ([]CategoryWithBookCount, int, error)
	Update(ctx context.Context, c *Category) error
	// Delete removes a category. The dependent-book check and the delete
	// run in one transaction; a category that still owns books fails with
	// *HasBooksError.
	Delete(ctx context.Context, id uuid.UUID) error
}
