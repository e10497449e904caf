package seeder

import (
	"backend/internal/app/board"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db           *gorm.DB
	logger       *zap.Logger
	defaultTitle string
}

func NewSeeder(db *gorm.DB, logger *zap.Logger, defaultTitle string) *Seeder {
	return &Seeder{
		db:           db,
		logger:       logger,
		defaultTitle: defaultTitle,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedDefaultBoard(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

// seedDefaultBoard creates the board that legacy clients draw on when they
// send canvas data without a board id.
func (s *Seeder) seedDefaultBoard() error {
	var count int64
	s.db.Model(&board.Board{}).Where("title = ?", s.defaultTitle).Count(&count)
	if count > 0 {
		s.logger.Info("Default board already exists, skipping seed")
		return nil
	}

	b := board.Board{Title: s.defaultTitle, Content: ""}
	if err := s.db.Create(&b).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded default board",
		zap.Uint64("board_id", b.ID),
		zap.String("title", b.Title),
	)
	return nil
}
