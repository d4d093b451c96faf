package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sleeptight/club-backend/internal/domain"
)

// fixedClock returns a constant instant, so tests pick the venue
// state instead of waiting for it
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

var bangkok = time.FixedZone("ICT", 7*60*60)

func openInstant() time.Time {
	return time.Date(2025, 6, 15, 1, 0, 0, 0, bangkok)
}

func closedInstant() time.Time {
	return time.Date(2025, 6, 15, 22, 0, 0, 0, bangkok)
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Create(member *domain.Member) error {
	args := m.Called(member)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByID(id string) (*domain.Member, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByEmail(email string) (*domain.Member, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByMemberCode(code string) (*domain.Member, error) {
	args := m.Called(code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(p *domain.Post) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(id string) (*domain.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) FindApproved() ([]*domain.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *MockPostRepository) FindPending() ([]*domain.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *MockPostRepository) ApproveWithLog(id string, entry *domain.ModLog) (bool, error) {
	args := m.Called(id, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) RemoveWithLog(id string, entry *domain.ModLog) error {
	args := m.Called(id, entry)
	return args.Error(0)
}

func (m *MockPostRepository) PurgeWithLog(entry *domain.ModLog) (int64, error) {
	args := m.Called(entry)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(c *domain.Comment, pair domain.Pair) error {
	args := m.Called(c, pair)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByPostID(postID string) ([]*domain.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

// MockMessageRepository is a mock implementation of MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(msg *domain.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByMember(memberID string) ([]*domain.Message, error) {
	args := m.Called(memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

// MockInteractionRepository is a mock implementation of InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) Count(pair domain.Pair) (int64, error) {
	args := m.Called(pair)
	return args.Get(0).(int64), args.Error(1)
}

// MockModLogRepository is a mock implementation of ModLogRepository
type MockModLogRepository struct {
	mock.Mock
}

func (m *MockModLogRepository) FindRecent(limit int) ([]*domain.ModLog, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ModLog), args.Error(1)
}
