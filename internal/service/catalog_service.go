package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Bruce1404/simple-library-backend/internal/cache"
	apperrors "github.com/Bruce1404/simple-library-backend/internal/errors"
	"github.com/Bruce1404/simple-library-backend/internal/model"
	"github.com/Bruce1404/simple-library-backend/internal/repository"
)

const bookListCacheTTL = 5 * time.Minute

// CatalogService exposes catalog operations.
type CatalogService interface {
	ListBooks(ctx context.Context, search string) ([]model.Book, error)
	CreateBook(ctx context.Context, title, author, isbn, category string) (*model.Book, error)
	UpdateBook(ctx context.Context, id uint, title, author, isbn, category string, available bool) (*model.Book, error)
	DeleteBook(ctx context.Context, id uint) error
}

type catalogService struct {
	bookRepo repository.BookRepository
	cache    *cache.Client
}

// NewCatalogService builds a CatalogService with repository and cache.
func NewCatalogService(bookRepo repository.BookRepository, cache *cache.Client) CatalogService {
	return &catalogService{bookRepo: bookRepo, cache: cache}
}

// ListBooks returns books ordered by title, filtered by a case-insensitive
// substring over title and author when search is given. Only the unfiltered
// listing is cached.
func (s *catalogService) ListBooks(ctx context.Context, search string) ([]model.Book, error) {
	if search == "" {
		var cached []model.Book
		if s.cache.GetJSON(ctx, cache.KeyBookList, &cached) {
			return cached, nil
		}
	}

	books, err := s.bookRepo.List(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	if search == "" {
		s.cache.SetJSON(ctx, cache.KeyBookList, books, bookListCacheTTL)
	}
	return books, nil
}

// CreateBook inserts a new catalog entry, available by default.
func (s *catalogService) CreateBook(ctx context.Context, title, author, isbn, category string) (*model.Book, error) {
	existing, err := s.bookRepo.FindByISBN(ctx, isbn)
	if err == nil && existing != nil {
		return nil, apperrors.ErrISBNTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check isbn existence: %w", err)
	}

	book := &model.Book{
		Title:     title,
		Author:    author,
		ISBN:      isbn,
		Category:  category,
		Available: true,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.KeyBookList)
	return book, nil
}

// UpdateBook replaces all mutable fields of a book. There is no
// partial-field update.
func (s *catalogService) UpdateBook(ctx context.Context, id uint, title, author, isbn, category string, available bool) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	book.Title = title
	book.Author = author
	book.ISBN = isbn
	book.Category = category
	book.Available = available

	if err := s.bookRepo.Save(ctx, book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	_ = s.cache.Delete(ctx, cache.KeyBookList)
	return book, nil
}

// DeleteBook removes a book; the schema cascades its borrow records away.
func (s *catalogService) DeleteBook(ctx context.Context, id uint) error {
	rows, err := s.bookRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrBookNotFound
	}

	_ = s.cache.Delete(ctx, cache.KeyBookList)
	return nil
}
