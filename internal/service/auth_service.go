package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sleeptight/club-backend/internal/common"
	"github.com/sleeptight/club-backend/internal/domain"
	"github.com/sleeptight/club-backend/internal/repository"
	"github.com/sleeptight/club-backend/internal/venue"
	pkgauth "github.com/sleeptight/club-backend/pkg/auth"
	"github.com/sleeptight/club-backend/pkg/jwt"
)

// LoginResponse login response
type LoginResponse struct {
	User  *domain.MemberResponse `json:"user"`
	Token string                 `json:"token"`
}

// AuthService authentication business logic
type AuthService interface {
	Signup(req *domain.SignupRequest) (*domain.MemberResponse, error)
	Login(req *domain.LoginRequest) (*LoginResponse, error)
	GetMember(id string) (*domain.MemberResponse, error)
}

type authService struct {
	members    repository.MemberRepository
	jwtManager *jwt.Manager
	clock      venue.Clock
}

// NewAuthService creates a new AuthService
func NewAuthService(members repository.MemberRepository, jwtManager *jwt.Manager, clock venue.Clock) AuthService {
	return &authService{
		members:    members,
		jwtManager: jwtManager,
		clock:      clock,
	}
}

// Signup registers a new member with a fresh member code
func (s *authService) Signup(req *domain.SignupRequest) (*domain.MemberResponse, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", common.ErrInvalidInput)
	}

	if _, err := s.members.FindByEmail(req.Email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	code, err := s.freeMemberCode()
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		ID:         uuid.NewString(),
		Email:      req.Email,
		Password:   hash,
		Nickname:   req.Nickname,
		MemberCode: code,
		IsVip:      false,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.members.Create(member); err != nil {
		return nil, err
	}

	return member.ToResponse(), nil
}

// Login authenticates a member and returns a token
func (s *authService) Login(req *domain.LoginRequest) (*LoginResponse, error) {
	member, err := s.members.FindByEmail(req.Email)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if !pkgauth.VerifyPassword(req.Password, member.Password) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(member.ID, member.Nickname)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  member.ToResponse(),
	}, nil
}

// GetMember returns a member's profile
func (s *authService) GetMember(id string) (*domain.MemberResponse, error) {
	member, err := s.members.FindByID(id)
	if err != nil {
		return nil, common.ErrUserNotFound
	}
	return member.ToResponse(), nil
}

const memberCodeAttempts = 5

// freeMemberCode draws random codes until one is unused. The code
// space is small enough that a fresh draw can collide with an
// existing member, and member_code carries a unique index.
func (s *authService) freeMemberCode() (string, error) {
	for i := 0; i < memberCodeAttempts; i++ {
		code := newMemberCode()
		_, err := s.members.FindByMemberCode(code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("member code space exhausted")
}

// newMemberCode generates a club member code like ST-41237
func newMemberCode() string {
	return fmt.Sprintf("ST-%05d", 10000+rand.Intn(90000)) //nolint:gosec // display code, not a secret
}
