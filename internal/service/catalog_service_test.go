package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "github.com/Bruce1404/simple-library-backend/internal/errors"
	"github.com/Bruce1404/simple-library-backend/internal/model"
)

func TestCreateBook_DefaultsAvailable(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	repo.On("FindByISBN", mock.Anything, "111").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Book")).Return(nil)

	book, err := svc.CreateBook(context.Background(), "Dune", "Herbert", "111", "")

	assert.NoError(t, err)
	assert.True(t, book.Available)
	assert.Equal(t, "Dune", book.Title)
	repo.AssertExpectations(t)
}

func TestCreateBook_DuplicateISBN(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	repo.On("FindByISBN", mock.Anything, "111").Return(&model.Book{ID: 3, ISBN: "111"}, nil)

	book, err := svc.CreateBook(context.Background(), "Dune", "Herbert", "111", "")

	assert.Nil(t, book)
	assert.ErrorIs(t, err, apperrors.ErrISBNTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateBook_ReplacesAllFields(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	existing := &model.Book{ID: 5, Title: "Dune", Author: "Herbert", ISBN: "111", Available: true}
	repo.On("FindByID", mock.Anything, uint(5)).Return(existing, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*model.Book")).Return(nil)

	book, err := svc.UpdateBook(context.Background(), 5, "Dune Messiah", "Frank Herbert", "222", "Science Fiction", false)

	assert.NoError(t, err)
	assert.Equal(t, "Dune Messiah", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
	assert.Equal(t, "222", book.ISBN)
	assert.Equal(t, "Science Fiction", book.Category)
	assert.False(t, book.Available)
}

func TestUpdateBook_NotFound(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	book, err := svc.UpdateBook(context.Background(), 99, "x", "y", "z", "", true)

	assert.Nil(t, book)
	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestDeleteBook_NotFound(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	repo.On("Delete", mock.Anything, uint(99)).Return(int64(0), nil)

	err := svc.DeleteBook(context.Background(), 99)

	assert.ErrorIs(t, err, apperrors.ErrBookNotFound)
}

func TestDeleteBook_Success(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	repo.On("Delete", mock.Anything, uint(5)).Return(int64(1), nil)

	assert.NoError(t, svc.DeleteBook(context.Background(), 5))
}

func TestListBooks_PassesSearchThrough(t *testing.T) {
	repo := new(MockBookRepository)
	svc := NewCatalogService(repo, nil)

	expected := []model.Book{{ID: 1, Title: "Dune", Author: "Herbert", ISBN: "111", Available: true}}
	repo.On("List", mock.Anything, "dune").Return(expected, nil)

	books, err := svc.ListBooks(context.Background(), "dune")

	assert.NoError(t, err)
	assert.Equal(t, expected, books)
}
