package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/member"
)

type fakeMemberRepo struct {
	members        map[uuid.UUID]*member.Member
	codes          map[string]bool
	duplicateCodes int // fail this many Creates with a code collision
	createAttempts int
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{
		members: make(map[uuid.UUID]*member.Member),
		codes:   make(map[string]bool),
	}
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *member.Member) error {
	f.createAttempts++
	if f.duplicateCodes > 0 {
		f.duplicateCodes--
		return member.ErrDuplicateMemberCode
	}
	if f.codes[m.MemberCode] {
		return member.ErrDuplicateMemberCode
	}
	f.codes[m.MemberCode] = true
	f.members[m.ID] = m
	return nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id uuid.UUID) (*member.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return m, nil
}

func (f *fakeMemberRepo) List(ctx context.Context, search string, limit, offset int) ([]member.MemberWithActiveCount, int, error) {
	return nil, 0, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) error { return nil }

func (f *fakeMemberRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeMemberRepo) CountActiveBorrowings(ctx context.Context, id uuid.UUID) (int, error) {
	return 0, nil
}

var memberCodePattern = regexp.MustCompile(`^MBR-\d{8}-[A-HJ-NP-Z2-9]{4}$`)

func TestCreateMemberGeneratesCode(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)
	svc.(*memberService).now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}

	resp, err := svc.Create(context.Background(), &member.CreateMemberReq{
		Name:  "Ann Smith",
		Email: "Ann@Example.com",
	})
	require.NoError(t, err)

	assert.Regexp(t, memberCodePattern, resp.MemberCode)
	assert.Contains(t, resp.MemberCode, "MBR-20260828-")
	// Email is normalized on the way in.
	assert.Equal(t, "ann@example.com", resp.Email)
	// No join date supplied: defaults to the registration day.
	assert.Equal(t, "2026-08-28", resp.JoinDate)
}

func TestCreateMemberRetriesOnCodeCollision(t *testing.T) {
	repo := newFakeMemberRepo()
	repo.duplicateCodes = 2
	svc := NewMemberService(repo)

	resp, err := svc.Create(context.Background(), &member.CreateMemberReq{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	require.NoError(t, err)
	assert.Regexp(t, memberCodePattern, resp.MemberCode)
	assert.Equal(t, 3, repo.createAttempts)
}

func TestCreateMemberGivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := newFakeMemberRepo()
	repo.duplicateCodes = 100
	svc := NewMemberService(repo)

	_, err := svc.Create(context.Background(), &member.CreateMemberReq{
		Name:  "Carol",
		Email: "carol@example.com",
	})
	assert.ErrorIs(t, err, member.ErrDuplicateMemberCode)
	assert.Equal(t, codeAttempts, repo.createAttempts)
}

func TestCreateMemberValidation(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())

	_, err := svc.Create(context.Background(), &member.CreateMemberReq{
		Name:  "",
		Email: "not-an-email",
	})
	assert.Error(t, err)
}

func TestCreateMemberExplicitJoinDate(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)

	resp, err := svc.Create(context.Background(), &member.CreateMemberReq{
		Name:     "Dave",
		Email:    "dave@example.com",
		JoinDate: "2026-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15", resp.JoinDate)
}
