package db

import (
	"backend/internal/app/board"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs gorm automigrations. The boards table carries no unique
// constraint on title: title uniqueness is advisory and enforced (racily)
// by the synchronization engine's find-then-create.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	if err := db.AutoMigrate(&board.Board{}); err != nil {
		return err
	}

	logger.Info("Database migrations completed")
	return nil
}
