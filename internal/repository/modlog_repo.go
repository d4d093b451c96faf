package repository

import (
	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
)

// ModLogRepository audit trail read access. Entries are written
// inside the same transaction as the moderation or purge mutation
// (see PostRepository), never through this interface.
type ModLogRepository interface {
	FindRecent(limit int) ([]*domain.ModLog, error)
}

type modLogRepository struct {
	db *gorm.DB
}

// NewModLogRepository creates a new ModLogRepository
func NewModLogRepository(db *gorm.DB) ModLogRepository {
	return &modLogRepository{db: db}
}

// FindRecent returns the most recent audit entries, newest first
func (r *modLogRepository) FindRecent(limit int) ([]*domain.ModLog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var entries []*domain.ModLog
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
