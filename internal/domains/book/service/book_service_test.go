package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
)

type fakeBookRepo struct {
	books map[uuid.UUID]*book.Book
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[uuid.UUID]*book.Book)}
}

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) error {
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) GetWithCategory(ctx context.Context, id uuid.UUID) (*book.BookWithCategory, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return &book.BookWithCategory{Book: *b, CategoryName: "Fiction"}, nil
}

func (f *fakeBookRepo) List(ctx context.Context, filter book.ListFilter) ([]book.BookWithCategory, int, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return book.ErrBookNotFound
	}
	f.books[b.ID] = b
	return nil
}

func (f *fakeBookRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*category.Category
}

func newFakeCategoryRepo(ids ...uuid.UUID) *fakeCategoryRepo {
	f := &fakeCategoryRepo{categories: make(map[uuid.UUID]*category.Category)}
	for _, id := range ids {
		f.categories[id] = &category.Category{ID: id, Name: "Fiction"}
	}
	return f
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *category.Category) error { return nil }

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	c, ok := f.categories[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context, limit, offset int) ([]category.CategoryWithBookCount, int, error) {
	return nil, 0, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *category.Category) error { return nil }

func (f *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func strPtr(s string) *string { return &s }

func TestCreateBook(t *testing.T) {
	categoryID := uuid.New()
	repo := newFakeBookRepo()
	svc := NewBookService(repo, newFakeCategoryRepo(categoryID))

	resp, err := svc.Create(context.Background(), &book.CreateBookReq{
		CategoryID: categoryID.String(),
		Title:      "  Dune  ",
		Author:     "Frank Herbert",
		Stock:      3,
		ISBN:       strPtr("978-0441172719"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Dune", resp.Title)
	assert.Equal(t, 3, resp.Stock)
	require.NotNil(t, resp.ISBN)
	assert.Equal(t, "978-0441172719", *resp.ISBN)
	assert.Len(t, repo.books, 1)
}

func TestCreateBookUnknownCategory(t *testing.T) {
	repo := newFakeBookRepo()
	svc := NewBookService(repo, newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), &book.CreateBookReq{
		CategoryID: uuid.NewString(),
		Title:      "Dune",
		Author:     "Frank Herbert",
	})
	assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	assert.Empty(t, repo.books)
}

func TestCreateBookValidation(t *testing.T) {
	categoryID := uuid.New()
	svc := NewBookService(newFakeBookRepo(), newFakeCategoryRepo(categoryID))

	year := 99
	tests := []struct {
		name string
		req  book.CreateBookReq
	}{
		{"missing title", book.CreateBookReq{CategoryID: categoryID.String(), Author: "A"}},
		{"missing author", book.CreateBookReq{CategoryID: categoryID.String(), Title: "T"}},
		{"bad category id", book.CreateBookReq{CategoryID: "nope", Title: "T", Author: "A"}},
		{"negative stock", book.CreateBookReq{CategoryID: categoryID.String(), Title: "T", Author: "A", Stock: -1}},
		{"two digit year", book.CreateBookReq{CategoryID: categoryID.String(), Title: "T", Author: "A", PublicationYear: &year}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.Error(t, err)
		})
	}
}

func TestCreateBookBlankISBNStoredAsNil(t *testing.T) {
	categoryID := uuid.New()
	repo := newFakeBookRepo()
	svc := NewBookService(repo, newFakeCategoryRepo(categoryID))

	resp, err := svc.Create(context.Background(), &book.CreateBookReq{
		CategoryID: categoryID.String(),
		Title:      "Dune",
		Author:     "Frank Herbert",
		ISBN:       strPtr("   "),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.ISBN)
}

func TestUpdateBook(t *testing.T) {
	categoryID := uuid.New()
	repo := newFakeBookRepo()
	svc := NewBookService(repo, newFakeCategoryRepo(categoryID))

	created, err := svc.Create(context.Background(), &book.CreateBookReq{
		CategoryID: categoryID.String(),
		Title:      "Dune",
		Author:     "Frank Herbert",
		Stock:      3,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), uuid.MustParse(created.ID), &book.UpdateBookReq{
		CategoryID: categoryID.String(),
		Title:      "Dune Messiah",
		Author:     "Frank Herbert",
		Stock:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	assert.Equal(t, 5, updated.Stock)
}

func TestGetBookIncludesCategoryName(t *testing.T) {
	categoryID := uuid.New()
	repo := newFakeBookRepo()
	svc := NewBookService(repo, newFakeCategoryRepo(categoryID))

	created, err := svc.Create(context.Background(), &book.CreateBookReq{
		CategoryID: categoryID.String(),
		Title:      "Dune",
		Author:     "Frank Herbert",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Equal(t, "Fiction", got.CategoryName)
}
