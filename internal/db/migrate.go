package db

import (
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Bruce1404/simple-library-backend/internal/model"
)

// Migrate ensures the users, books and borrow_records tables exist.
// It is safe to run on every process start. A failure is logged but does
// not abort startup; requests against missing tables fail individually.
func Migrate(gormDB *gorm.DB, log zerolog.Logger) {
	err := gormDB.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.BorrowRecord{},
	)
	if err != nil {
		log.Error().Err(err).Msg("schema migration failed, continuing without it")
		return
	}
	log.Info().Msg("schema migration completed")
}
