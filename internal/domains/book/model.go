package book

import (
	"time"

	"github.com/google/uuid"
)

// Book is a catalog entry. Stock counts the copies currently available to
// lend; only the borrowing engine mutates it once copies start moving.
type Book struct {
	ID              uuid.UUID
	CategoryID      uuid.UUID
	Title           string
	Author          string
	ISBN            *string
	Publisher       *string
	PublicationYear *int
	Stock           int
	CoverImage      *string
	Description     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookWithCategory decorates a book with its category name for list and
// detail views.
type BookWithCategory struct {
	Book
	CategoryName string
}

// NewBook builds a book with a fresh id.
func NewBook(categoryID uuid.UUID, title, author string, stock int) *Book {
	now := time.Now()
	return &Book{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Title:      title,
		Author:     author,
		Stock:      stock,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// HasStock reports whether quantity copies are available.
func (b *Book) HasStock(quantity int) bool {
	return b.Stock >= quantity
}
