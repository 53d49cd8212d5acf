package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "github.com/Bruce1404/simple-library-backend/internal/errors"
)

// HealthHandler serves liveness and database connectivity probes.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live godoc
// @Summary Liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func (h *HealthHandler) Live(c echo.Context) error {
	return c.String(http.StatusOK, "Library Management API is running")
}

// TestDB godoc
// @Summary Database connectivity probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /test-db [get]
func (h *HealthHandler) TestDB(c echo.Context) error {
	var now time.Time
	if err := h.db.WithContext(c.Request().Context()).Raw("SELECT NOW()").Scan(&now).Error; err != nil {
		he := apperrors.NewHTTPError(http.StatusInternalServerError, "database connection failed", "DATABASE_ERROR")
		return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "database connection ok",
		"time":    now,
	})
}
