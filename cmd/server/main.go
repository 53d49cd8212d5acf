package main

import (
	"net/http"

	_ "github.com/Bruce1404/simple-library-backend/docs" // swagger docs

	"github.com/labstack/echo/v4"

	"github.com/Bruce1404/simple-library-backend/internal/cache"
	"github.com/Bruce1404/simple-library-backend/internal/config"
	"github.com/Bruce1404/simple-library-backend/internal/db"
	"github.com/Bruce1404/simple-library-backend/internal/handler"
	"github.com/Bruce1404/simple-library-backend/internal/logger"
	"github.com/Bruce1404/simple-library-backend/internal/repository"
	"github.com/Bruce1404/simple-library-backend/internal/router"
	"github.com/Bruce1404/simple-library-backend/internal/service"
)

// @title Library Management API
// @version 1.0
// @description Library management API with user registration, a book catalog, and borrow/return tracking.
// @host localhost:3004
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	e := echo.New()
	e.HideBanner = true

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	db.Migrate(gormDB, log)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	bookRepo := repository.NewBookRepository(gormDB)
	borrowRepo := repository.NewBorrowRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(bookRepo, cacheClient)
	circulationService := service.NewCirculationService(userRepo, borrowRepo, cacheClient)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(gormDB)
	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(catalogService)
	borrowHandler := handler.NewBorrowHandler(circulationService)

	// Register routes
	router.Register(e, log, healthHandler, authHandler, bookHandler, borrowHandler)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
