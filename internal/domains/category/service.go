package category

import (
	"context"

	"github.com/google/uuid"
)

// CategoryService is the business logic contract for categories.
type CategoryService interface {
	Create(ctx context.Context, req *CreateCategoryReq) (*CategoryResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CategoryResp, error)
	List(ctx context.Context, q *ListCategoriesQuery) ([]CategoryResp, int, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryReq) (*CategoryResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
