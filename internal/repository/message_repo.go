package repository

import (
	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access interface
type MessageRepository interface {
	Create(m *domain.Message) error
	FindByMember(memberID string) ([]*domain.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(m *domain.Message) error {
	return r.db.Create(m).Error
}

// FindByMember returns every message the member sent or received,
// newest first
func (r *messageRepository) FindByMember(memberID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.Where("from_id = ? OR to_id = ?", memberID, memberID).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}
