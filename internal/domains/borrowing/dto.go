package borrowing

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

type BorrowItemReq struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

func (r BorrowItemReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID,
			validation.Required.Error("book selection is required"),
			is.UUID.Error("book id must be a valid UUID"),
		),
		validation.Field(&r.Quantity,
			validation.Required.Error("quantity is required"),
			validation.Min(1).Error("quantity must be at least 1"),
		),
	)
}

type CreateBorrowingReq struct {
	MemberID   string          `json:"member_id"`
	BorrowDate string          `json:"borrow_date"`
	Books      []BorrowItemReq `json:"books"`
}

func (r CreateBorrowingReq) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.MemberID,
			validation.Required.Error("please select a member"),
			is.UUID.Error("member id must be a valid UUID"),
		),
		validation.Field(&r.BorrowDate,
			validation.Required.Error("borrow date is required"),
			validation.Date(DateLayout).Error("borrow date must be YYYY-MM-DD"),
		),
		validation.Field(&r.Books,
			validation.Required.Error("please select at least one book"),
			validation.Length(1, 0).Error("please select at least one book"),
		),
	)
	if err != nil {
		return err
	}

	for i, item := range r.Books {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("books[%d]: %w", i, err)
		}
	}
	return nil
}

type ReturnBorrowingReq struct {
	ReturnDate string `json:"return_date"`
}

func (r ReturnBorrowingReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ReturnDate,
			validation.Required.Error("return date is required"),
			validation.Date(DateLayout).Error("return date must be YYYY-MM-DD"),
		),
	)
}

type ListBorrowingsQuery struct {
	Status   string `form:"status"`
	MemberID string `form:"member_id"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (q *ListBorrowingsQuery) Normalize() {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

func (q ListBorrowingsQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Status,
			validation.In(string(StatusBorrowed), string(StatusReturned)).
				Error("status must be borrowed or returned"),
		),
		validation.Field(&q.MemberID,
			validation.When(q.MemberID != "", is.UUID.Error("member id must be a valid UUID")),
		),
	)
}

type DetailResp struct {
	ID         string `json:"id"`
	BookID     string `json:"book_id"`
	BookTitle  string `json:"book_title,omitempty"`
	BookAuthor string `json:"book_author,omitempty"`
	Quantity   int    `json:"quantity"`
}

type BorrowingResp struct {
	ID         string       `json:"id"`
	MemberID   string       `json:"member_id"`
	MemberName string       `json:"member_name,omitempty"`
	MemberCode string       `json:"member_code,omitempty"`
	BorrowDate string       `json:"borrow_date"`
	ReturnDate *string      `json:"return_date,omitempty"`
	Status     Status       `json:"status"`
	Details    []DetailResp `json:"details,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

func ToResp(b *Borrowing, details []BorrowingDetail) *BorrowingResp {
	resp := &BorrowingResp{
		ID:         b.ID.String(),
		MemberID:   b.MemberID.String(),
		BorrowDate: b.BorrowDate.Format(DateLayout),
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
	if b.ReturnDate != nil {
		formatted := b.ReturnDate.Format(DateLayout)
		resp.ReturnDate = &formatted
	}
	for _, d := range details {
		resp.Details = append(resp.Details, DetailResp{
			ID:       d.ID.String(),
			BookID:   d.BookID.String(),
			Quantity: d.Quantity,
		})
	}
	return resp
}

func WithMemberToResp(b *BorrowingWithMember) *BorrowingResp {
	resp := ToResp(&b.Borrowing, nil)
	resp.MemberName = b.MemberName
	resp.MemberCode = b.MemberCode
	for _, d := range b.Details {
		resp.Details = append(resp.Details, DetailResp{
			ID:         d.ID.String(),
			BookID:     d.BookID.String(),
			BookTitle:  d.BookTitle,
			BookAuthor: d.BookAuthor,
			Quantity:   d.Quantity,
		})
	}
	return resp
}

func WithMembersToResp(borrowings []BorrowingWithMember) []BorrowingResp {
	out := make([]BorrowingResp, 0, len(borrowings))
	for i := range borrowings {
		out = append(out, *WithMemberToResp(&borrowings[i]))
	}
	return out
}
