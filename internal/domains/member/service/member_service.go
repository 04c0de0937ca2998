package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/member"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/logger"
)

// codeAttempts bounds the retry loop on member-code collisions. Four
// random characters over a 32-symbol alphabet collide rarely; five
// attempts is already overkill.
const codeAttempts = 5

type memberService struct {
	repository member.MemberRepository
	now        func() time.Time
}

// NewMemberService creates the membership business logic layer.
func NewMemberService(repo member.MemberRepository) member.MemberService {
	return &memberService{
		repository: repo,
		now:        time.Now,
	}
}

func (s *memberService) Create(ctx context.Context, req *member.CreateMemberReq) (*member.MemberResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	joinDate, err := s.parseJoinDate(req.JoinDate)
	if err != nil {
		return nil, err
	}

	// The member code is unique; on the rare collision we draw a new
	// suffix and try again instead of surfacing the conflict.
	var m *member.Member
	for attempt := 0; attempt < codeAttempts; attempt++ {
		m = member.NewMember(
			s.generateMemberCode(),
			strings.TrimSpace(req.Name),
			strings.ToLower(strings.TrimSpace(req.Email)),
			joinDate,
		)
		m.Phone = req.Phone
		m.Address = req.Address

		err = s.repository.Create(ctx, m)
		if !errors.Is(err, member.ErrDuplicateMemberCode) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Info("member registered", map[string]interface{}{
		"member_id":   m.ID.String(),
		"member_code": m.MemberCode,
	})

	return member.ToResp(m), nil
}

func (s *memberService) GetByID(ctx context.Context, id uuid.UUID) (*member.MemberResp, error) {
	m, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	active, err := s.repository.CountActiveBorrowings(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := member.ToResp(m)
	resp.ActiveBorrowings = active
	return resp, nil
}

func (s *memberService) List(ctx context.Context, q *member.ListMembersQuery) ([]member.MemberResp, int, error) {
	q.Normalize()

	members, total, err := s.repository.List(ctx, strings.TrimSpace(q.Search), q.Limit, q.Offset)
	if err != nil {
		return nil, 0, err
	}

	return member.WithCountsToResp(members), total, nil
}

func (s *memberService) Update(ctx context.Context, id uuid.UUID, req *member.UpdateMemberReq) (*member.MemberResp, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.Name = strings.TrimSpace(req.Name)
	m.Email = strings.ToLower(strings.TrimSpace(req.Email))
	m.Phone = req.Phone
	m.Address = req.Address
	if req.JoinDate != "" {
		joinDate, err := time.Parse(member.DateLayout, req.JoinDate)
		if err != nil {
			return nil, err
		}
		m.JoinDate = joinDate
	}
	m.UpdatedAt = s.now()

	if err := s.repository.Update(ctx, m); err != nil {
		return nil, err
	}

	return member.ToResp(m), nil
}

func (s *memberService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("member deleted", map[string]interface{}{
		"member_id": id.String(),
	})
	return nil
}

// generateMemberCode produces codes like MBR-20260828-K7Q2.
func (s *memberService) generateMemberCode() string {
	return fmt.Sprintf("MBR-%s-%s", s.now().Format("20060102"), utils.RandomCode(4))
}

func (s *memberService) parseJoinDate(raw string) (time.Time, error) {
	if raw == "" {
		now := s.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(member.DateLayout, raw)
}
