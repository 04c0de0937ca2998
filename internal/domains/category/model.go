package category

import (
	"time"

	"github.com/google/uuid"
)

// Category groups books on the shelf. A category cannot be deleted while
// it still owns books.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CategoryWithBookCount decorates a category with the number of books it
// owns; used by list views and by the delete guard message.
type CategoryWithBookCount struct {
	Category
	BookCount int
}

// NewCategory builds a category with a fresh id.
func NewCategory(name string, description *string) *Category {
	now := time.Now()
	return &Category{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Update applies an edit and bumps the updated timestamp.
func (c *Category) Update(name string, description *string) {
	c.Name = name
	c.Description = description
	c.UpdatedAt = time.Now()
}
