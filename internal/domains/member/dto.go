package member

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

type CreateMemberReq struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	JoinDate string  `json:"join_date"` // optional, defaults to today
}

func (r CreateMemberReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("email must be a valid address"),
			validation.Length(5, 255),
		),
		validation.Field(&r.JoinDate,
			validation.Date(DateLayout).Error("join date must be YYYY-MM-DD"),
		),
	)
}

type UpdateMemberReq struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	JoinDate string  `json:"join_date"`
}

func (r UpdateMemberReq) Validate() error {
	return CreateMemberReq(r).Validate()
}

type ListMembersQuery struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (q *ListMembersQuery) Normalize() {
	if q.Limit <= 0 || q.Limit > 100 {
		q.Limit = 10
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

type MemberResp struct {
	ID               string    `json:"id"`
	MemberCode       string    `json:"member_code"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            *string   `json:"phone,omitempty"`
	Address          *string   `json:"address,omitempty"`
	JoinDate         string    `json:"join_date"`
	ActiveBorrowings int       `json:"active_borrowings"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToResp(m *Member) *MemberResp {
	return &MemberResp{
		ID:         m.ID.String(),
		MemberCode: m.MemberCode,
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		Address:    m.Address,
		JoinDate:   m.JoinDate.Format(DateLayout),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func WithCountToResp(m *MemberWithActiveCount) *MemberResp {
	resp := ToResp(&m.Member)
	resp.ActiveBorrowings = m.ActiveBorrowings
	return resp
}

func WithCountsToResp(members []MemberWithActiveCount) []MemberResp {
	out := make([]MemberResp, 0, len(members))
	for i := range members {
		out = append(out, *WithCountToResp(&members[i]))
	}
	return out
}
