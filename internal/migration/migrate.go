package migration

import (
	"github.com/sleeptight/club-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all club tables
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Member{},
		&domain.Post{},
		&domain.Comment{},
		&domain.Message{},
		&domain.Interaction{},
		&domain.ModLog{},
	)
}
