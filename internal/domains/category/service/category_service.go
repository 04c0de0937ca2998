package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/category"
	"library-backend/pkg/logger"
)

type categoryService struct {
	repository category.CategoryRepository
}

// NewCategoryService creates the category business logic layer.
func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryService{repository: repo}
}

func (s *categoryService) Create(ctx context.Context, req *category.CreateCategoryReq) (*category.CategoryResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := category.NewCategory(strings.TrimSpace(req.Name), req.Description)
	if err := s.repository.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("category created", map[string]interface{}{
		"category_id": c.ID.String(),
		"name":        c.Name,
	})

	return category.ToResp(c), nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.CategoryResp, error) {
	c, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return category.ToResp(c), nil
}

func (s *categoryService) List(ctx context.Context, q *category.ListCategoriesQuery) ([]category.CategoryResp, int, error) {
	q.Normalize()

	categories, total, err := s.repository.List(ctx, q.Limit, q.Offset)
	if err != nil {
		return nil, 0, err
	}

	return category.WithCountsToResp(categories), total, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryReq) (*category.CategoryResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Update(strings.TrimSpace(req.Name), req.Description)
	if err := s.repository.Update(ctx, c); err != nil {
		return nil, err
	}

	return category.ToResp(c), nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("category deleted", map[string]interface{}{
		"category_id": id.String(),
	})
	return nil
}
