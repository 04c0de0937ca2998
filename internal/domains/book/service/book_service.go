package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
	"library-backend/pkg/logger"
)

type bookService struct {
	repository   book.BookRepository
	categoryRepo category.CategoryRepository
}

// NewBookService creates the catalog business logic layer.
func NewBookService(repo book.BookRepository, categoryRepo category.CategoryRepository) book.BookService {
	return &bookService{
		repository:   repo,
		categoryRepo: categoryRepo,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookReq) (*book.BookResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, category.ErrInvalidCategoryID
	}

	// Validated before any write; the FK catches the race where the
	// category disappears between this check and the insert.
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	b := book.NewBook(categoryID, strings.TrimSpace(req.Title), strings.TrimSpace(req.Author), req.Stock)
	b.ISBN = normalizeOptional(req.ISBN)
	b.Publisher = req.Publisher
	b.PublicationYear = req.PublicationYear
	b.CoverImage = req.CoverImage
	b.Description = req.Description

	if err := s.repository.Create(ctx, b); err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"book_id": b.ID.String(),
		"title":   b.Title,
		"stock":   b.Stock,
	})

	return book.ToResp(b), nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.BookResp, error) {
	b, err := s.repository.GetWithCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return book.WithCategoryToResp(b), nil
}

func (s *bookService) List(ctx context.Context, q *book.ListBooksQuery) ([]book.BookResp, int, error) {
	q.Normalize()

	filter := book.ListFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
	if q.CategoryID != "" {
		categoryID, err := uuid.Parse(q.CategoryID)
		if err != nil {
			return nil, 0, category.ErrInvalidCategoryID
		}
		filter.CategoryID = &categoryID
	}

	books, total, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return book.WithCategoriesToResp(books), total, nil
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req *book.UpdateBookReq) (*book.BookResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, category.ErrInvalidCategoryID
	}

	b, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.CategoryID = categoryID
	b.Title = strings.TrimSpace(req.Title)
	b.Author = strings.TrimSpace(req.Author)
	b.ISBN = normalizeOptional(req.ISBN)
	b.Publisher = req.Publisher
	b.PublicationYear = req.PublicationYear
	b.Stock = req.Stock
	b.CoverImage = req.CoverImage
	b.Description = req.Description
	b.UpdatedAt = time.Now()

	if err := s.repository.Update(ctx, b); err != nil {
		return nil, err
	}

	return book.ToResp(b), nil
}

func (s *bookService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{
		"book_id": id.String(),
	})
	return nil
}

// normalizeOptional maps empty strings to nil so optional unique columns
// (isbn) stay NULL instead of colliding on "".
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
