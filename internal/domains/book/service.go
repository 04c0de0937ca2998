package book

import (
	"context"

	"github.com/google/uuid"
)

// BookService is the business logic contract for the catalog.
type BookService interface {
	Create(ctx context.Context, req *CreateBookReq) (*BookResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BookResp, error)
	List(ctx context.Context, q *ListBooksQuery) ([]BookResp, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookReq) (*BookResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
