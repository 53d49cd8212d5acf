package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/Bruce1404/simple-library-backend/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	log zerolog.Logger,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	bookHandler *handler.BookHandler,
	borrowHandler *handler.BorrowHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", healthHandler.Live)
	e.GET("/test-db", healthHandler.TestDB)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Catalog routes
	api.GET("/books", bookHandler.ListBooks)
	api.POST("/books", bookHandler.CreateBook)
	api.PUT("/books/:id", bookHandler.UpdateBook)
	api.DELETE("/books/:id", bookHandler.DeleteBook)

	// Circulation routes
	api.POST("/borrow/borrow", borrowHandler.Borrow)
	api.POST("/borrow/return", borrowHandler.Return)
	api.GET("/borrow/user/:user_id", borrowHandler.ListUserLoans)
}

// requestLogger emits one structured line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
