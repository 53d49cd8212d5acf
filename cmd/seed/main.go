// Command seed loads a starter catalog into the database. It is idempotent:
// books are matched by ISBN and skipped when already present.
package main

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Bruce1404/simple-library-backend/internal/config"
	"github.com/Bruce1404/simple-library-backend/internal/db"
	"github.com/Bruce1404/simple-library-backend/internal/logger"
	"github.com/Bruce1404/simple-library-backend/internal/model"
	"github.com/Bruce1404/simple-library-backend/internal/repository"
)

var starterCatalog = []model.Book{
	{Title: "Dune", Author: "Frank Herbert", ISBN: "9780441172719", Category: "Science Fiction", Available: true},
	{Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", ISBN: "9780441478125", Category: "Science Fiction", Available: true},
	{Title: "The Name of the Rose", Author: "Umberto Eco", ISBN: "9780156001311", Category: "Mystery", Available: true},
	{Title: "A Brief History of Time", Author: "Stephen Hawking", ISBN: "9780553380163", Category: "Science", Available: true},
	{Title: "The Pragmatic Programmer", Author: "Andrew Hunt", ISBN: "9780201616224", Category: "Technology", Available: true},
	{Title: "Designing Data-Intensive Applications", Author: "Martin Kleppmann", ISBN: "9781449373320", Category: "Technology", Available: true},
}

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	log.Info().Msg("starting seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	db.Migrate(gormDB, log)

	bookRepo := repository.NewBookRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for i := range starterCatalog {
		book := starterCatalog[i]

		_, err := bookRepo.FindByISBN(ctx, book.ISBN)
		if err == nil {
			skipped++
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("isbn", book.ISBN).Msg("lookup book")
		}

		if err := bookRepo.Create(ctx, &book); err != nil {
			log.Fatal().Err(err).Str("isbn", book.ISBN).Msg("create book")
		}
		created++
	}

	log.Info().Int("created", created).Int("skipped", skipped).Msg("seed completed")
}
