package repository

import (
	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommentRepository comment data access interface
type CommentRepository interface {
	// Create inserts the comment and increments the interaction
	// ledger for the given pair in one transaction.
	Create(c *domain.Comment, pair domain.Pair) error
	FindByPostID(postID string) ([]*domain.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and bumps the pair's interaction count.
// The upsert keeps the read-modify-write atomic per pair key.
func (r *commentRepository) Create(c *domain.Comment, pair domain.Pair) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
		}).Create(&domain.Interaction{PairKey: pair.Key(), Count: 1}).Error
	})
}

// FindByPostID returns a post's comments, oldest first
func (r *commentRepository) FindByPostID(postID string) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	err := r.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
