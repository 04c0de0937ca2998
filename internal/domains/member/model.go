package member

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered library patron, identified to staff by a
// system-generated member code.
type Member struct {
	ID         uuid.UUID
	MemberCode string
	Name       string
	Email      string
	Phone      *string
	Address    *string
	JoinDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MemberWithActiveCount decorates a member with the number of borrowings
// still out; used by list views and the delete guard message.
type MemberWithActiveCount struct {
	Member
	ActiveBorrowings int
}

// NewMember builds a member with a fresh id.
func NewMember(code, name, email string, joinDate time.Time) *Member {
	now := time.Now()
	return &Member{
		ID:         uuid.New(),
		MemberCode: code,
		Name:       name,
		Email:      email,
		JoinDate:   joinDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
