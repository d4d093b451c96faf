package repository

import (
	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository post data access interface. Moderation mutations
// write their audit entry in the same transaction as the state
// change: one cannot land without the other.
type PostRepository interface {
	Create(p *domain.Post) error
	FindByID(id string) (*domain.Post, error)
	FindApproved() ([]*domain.Post, error)
	FindPending() ([]*domain.Post, error)
	ApproveWithLog(id string, entry *domain.ModLog) (bool, error)
	RemoveWithLog(id string, entry *domain.ModLog) error
	PurgeWithLog(entry *domain.ModLog) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(p *domain.Post) error {
	return r.db.Create(p).Error
}

func (r *postRepository) FindByID(id string) (*domain.Post, error) {
	var p domain.Post
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// FindApproved returns approved posts, newest first
func (r *postRepository) FindApproved() ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Where("approved = ?", true).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// FindPending returns posts awaiting moderation, oldest first
func (r *postRepository) FindPending() ([]*domain.Post, error) {
	var posts []*domain.Post
	err := r.db.Where("approved = ?", false).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

// ApproveWithLog marks a pending post approved and appends the audit
// entry in the same transaction. The pending check lives in the WHERE
// clause, so of two concurrent approvals only one writes an audit
// entry; the other returns applied=false. Missing post is
// gorm.ErrRecordNotFound.
func (r *postRepository) ApproveWithLog(id string, entry *domain.ModLog) (bool, error) {
	applied := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Post{}).
			Where("id = ? AND approved = ?", id, false).
			Update("approved", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&domain.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		}
		applied = true
		return tx.Create(entry).Error
	})
	return applied, err
}

// RemoveWithLog deletes a post and appends the audit entry atomically
func (r *postRepository) RemoveWithLog(id string, entry *domain.ModLog) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).Delete(&domain.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(entry).Error
	})
}

// PurgeWithLog deletes every non-pinned post and appends the audit
// entry atomically. Returns the number of posts purged.
func (r *postRepository) PurgeWithLog(entry *domain.ModLog) (int64, error) {
	var purged int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("pinned = ?", false).Delete(&domain.Post{})
		if res.Error != nil {
			return res.Error
		}
		purged = res.RowsAffected
		return tx.Create(entry).Error
	})
	return purged, err
}
