package book

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter narrows the book listing.
type ListFilter struct {
	CategoryID *uuid.UUID
	Search     string // matches title or author, case-insensitive
	Limit      int
	Offset     int
}

// BookRepository is the data access contract for books. Stock mutation is
// deliberately absent: only the borrowing engine moves stock, inside its
// own transaction.
type BookRepository interface {
	Create(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetWithCategory(ctx context.Context, id uuid.UUID) (*BookWithCategory, error)
	List(ctx context.Context, filter ListFilter) ([]BookWithCategory, int, error)
	Update(ctx context.Context, b *Book) error
	// Delete removes a book unless it is referenced by a detail of an
	// active borrowing; the check and the delete run in one transaction
	// and a blocked delete fails with *CurrentlyBorrowedError.
	Delete(ctx context.Context, id uuid.UUID) error
}
