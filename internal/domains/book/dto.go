package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateBookReq struct {
	CategoryID      string  `json:"category_id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            *string `json:"isbn"`
	Publisher       *string `json:"publisher"`
	PublicationYear *int    `json:"publication_year"`
	Stock           int     `json:"stock"`
	CoverImage      *string `json:"cover_image"`
	Description     *string `json:"description"`
}

func (r CreateBookReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryID,
			validation.Required.Error("category is required"),
			is.UUID.Error("category id must be a valid UUID"),
		),
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.PublicationYear,
			validation.Min(1000).Error("publication year must be a 4-digit year"),
			validation.Max(9999).Error("publication year must be a 4-digit year"),
		),
		validation.Field(&r.Stock,
			validation.Min(0).Error("stock cannot be negative"),
		),
	)
}

type UpdateBookReq struct {
	CategoryID      string  `json:"category_id"`
	Title           string  `json:"title"`
	Author          string  `json:"author"`
	ISBN            *string `json:"isbn"`
	Publisher       *string `json:"publisher"`
	PublicationYear *int    `json:"publication_year"`
	Stock           int     `json:"stock"`
	CoverImage      *string `json:"cover_image"`
	Description     *string `json:"description"`
}

func (r UpdateBookReq) Validate() error {
	return CreateBookReq(r).Validate()
}

type ListBooksQuery struct {
	CategoryID string `form:"category_id"`
	Search     string `form:"search"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (q *ListBooksQuery) Normalize() {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

type BookResp struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id"`
	CategoryName    string    `json:"category_name,omitempty"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            *string   `json:"isbn,omitempty"`
	Publisher       *string   `json:"publisher,omitempty"`
	PublicationYear *int      `json:"publication_year,omitempty"`
	Stock           int       `json:"stock"`
	CoverImage      *string   `json:"cover_image,omitempty"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToResp(b *Book) *BookResp {
	return &BookResp{
		ID:              b.ID.String(),
		CategoryID:      b.CategoryID.String(),
		Title:           b.Title,
		Author:          b.Author,
		ISBN:            b.ISBN,
		Publisher:       b.Publisher,
		PublicationYear: b.PublicationYear,
		Stock:           b.Stock,
		CoverImage:      b.CoverImage,
		Description:     b.Description,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func WithCategoryToResp(b *BookWithCategory) *BookResp {
	resp := ToResp(&b.Book)
	resp.CategoryName = b.CategoryName
	return resp
}

func WithCategoriesToResp(books []BookWithCategory) []BookResp {
	out := make([]BookResp, 0, len(books))
	for i := range books {
		out = append(out, *WithCategoryToResp(&books[i]))
	}
	return out
}
