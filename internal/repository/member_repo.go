package repository

import (
	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
)

// MemberRepository member data access interface
type MemberRepository interface {
	Create(m *domain.Member) error
	FindByID(id string) (*domain.Member, error)
	FindByEmail(email string) (*domain.Member, error)
	FindByMemberCode(code string) (*domain.Member, error)
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(m *domain.Member) error {
	return r.db.Create(m).Error
}

func (r *memberRepository) FindByID(id string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) FindByEmail(email string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.Where("email = ?", email).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *memberRepository) FindByMemberCode(code string) (*domain.Member, error) {
	var m domain.Member
	if err := r.db.Where("member_code = ?", code).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
