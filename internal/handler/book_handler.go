package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Bruce1404/simple-library-backend/internal/service"
)

// BookHandler handles catalog endpoints.
type BookHandler struct {
	catalogService service.CatalogService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(catalogService service.CatalogService) *BookHandler {
	return &BookHandler{catalogService: catalogService}
}

// CreateBookRequest represents a book creation request.
type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	ISBN     string `json:"isbn" validate:"required"`
	Category string `json:"category"`
}

// UpdateBookRequest represents a full-replace book update. Available is a
// pointer so an explicit false survives validation.
type UpdateBookRequest struct {
	Title     string `json:"title" validate:"required"`
	Author    string `json:"author" validate:"required"`
	ISBN      string `json:"isbn" validate:"required"`
	Category  string `json:"category"`
	Available *bool  `json:"available" validate:"required"`
}

// ListBooks godoc
// @Summary List books, optionally filtered by a title/author substring
// @Tags books
// @Produce json
// @Param search query string false "Case-insensitive substring over title and author"
// @Success 200 {array} model.Book
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/books [get]
func (h *BookHandler) ListBooks(c echo.Context) error {
	books, err := h.catalogService.ListBooks(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// CreateBook godoc
// @Summary Add a book to the catalog
// @Tags books
// @Accept json
// @Produce json
// @Param request body CreateBookRequest true "Book data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/books [post]
func (h *BookHandler) CreateBook(c echo.Context) error {
	var req CreateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalogService.CreateBook(c.Request().Context(), req.Title, req.Author, req.ISBN, req.Category)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "book created successfully",
		"book":    book,
	})
}

// UpdateBook godoc
// @Summary Replace all mutable fields of a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Param request body UpdateBookRequest true "Book data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/books/{id} [put]
func (h *BookHandler) UpdateBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalogService.UpdateBook(c.Request().Context(), uint(id), req.Title, req.Author, req.ISBN, req.Category, *req.Available)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "book updated successfully",
		"book":    book,
	})
}

// DeleteBook godoc
// @Summary Delete a book and its borrow records
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/books/{id} [delete]
func (h *BookHandler) DeleteBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if err := h.catalogService.DeleteBook(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "book deleted successfully",
	})
}
