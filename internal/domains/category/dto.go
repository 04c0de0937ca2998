package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCategoryReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

type UpdateCategoryReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

type ListCategoriesQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// Normalize clamps pagination to sane bounds.
func (q *ListCategoriesQuery) Normalize() {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

type CategoryResp struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	BookCount   int       `json:"book_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResp(c *Category) *CategoryResp {
	return &CategoryResp{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func WithCountToResp(c *CategoryWithBookCount) *CategoryResp {
	resp := ToResp(&c.Category)
	resp.BookCount = c.BookCount
	return resp
}

func WithCountsToResp(categories []CategoryWithBookCount) []CategoryResp {
	out := make([]CategoryResp, 0, len(categories))
	for i := range categories {
		out = append(out, *WithCountToResp(&categories[i]))
	}
	return out
}
