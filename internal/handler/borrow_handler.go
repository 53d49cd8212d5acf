package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Bruce1404/simple-library-backend/internal/model"
	"github.com/Bruce1404/simple-library-backend/internal/service"
)

// BorrowHandler handles circulation endpoints.
type BorrowHandler struct {
	circulationService service.CirculationService
}

// NewBorrowHandler creates a new borrow handler.
func NewBorrowHandler(circulationService service.CirculationService) *BorrowHandler {
	return &BorrowHandler{circulationService: circulationService}
}

// BorrowRequest represents a borrow request.
type BorrowRequest struct {
	BookID uint `json:"book_id" validate:"required,gt=0"`
	UserID uint `json:"user_id" validate:"required,gt=0"`
}

// ReturnRequest represents a return request.
type ReturnRequest struct {
	RecordID uint `json:"record_id" validate:"required,gt=0"`
}

// Borrow godoc
// @Summary Borrow an available book
// @Tags borrow
// @Accept json
// @Produce json
// @Param request body BorrowRequest true "Borrow data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/borrow/borrow [post]
func (h *BorrowHandler) Borrow(c echo.Context) error {
	var req BorrowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	record, err := h.circulationService.Borrow(c.Request().Context(), req.BookID, req.UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "book borrowed successfully",
		"record":  record,
	})
}

// Return godoc
// @Summary Return a borrowed book
// @Tags borrow
// @Accept json
// @Produce json
// @Param request body ReturnRequest true "Return data"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/borrow/return [post]
func (h *BorrowHandler) Return(c echo.Context) error {
	var req ReturnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.circulationService.Return(c.Request().Context(), req.RecordID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "book returned successfully",
	})
}

// ListUserLoans godoc
// @Summary List a user's active loans, soonest due first
// @Tags borrow
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} model.Loan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/borrow/user/{user_id} [get]
func (h *BorrowHandler) ListUserLoans(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	loans, err := h.circulationService.ListUserLoans(c.Request().Context(), uint(userID))
	if err != nil {
		return httpError(err)
	}

	if loans == nil {
		loans = []model.Loan{}
	}
	return c.JSON(http.StatusOK, loans)
}
