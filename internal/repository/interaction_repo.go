package repository

import (
	"errors"

	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
)

// InteractionRepository interaction ledger read access. Writes happen
// through CommentRepository.Create, the only qualifying interaction.
type InteractionRepository interface {
	Count(pair domain.Pair) (int64, error)
}

type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new InteractionRepository
func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

// Count returns the pair's interaction count, 0 for unseen pairs
func (r *interactionRepository) Count(pair domain.Pair) (int64, error) {
	var entry domain.Interaction
	err := r.db.Where("pair_key = ?", pair.Key()).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return entry.Count, nil
}
