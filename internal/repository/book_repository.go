package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Bruce1404/simple-library-backend/internal/model"
)

// BookRepository defines catalog persistence operations.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) error
	Save(ctx context.Context, book *model.Book) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*model.Book, error)
	List(ctx context.Context, search string) ([]model.Book, error)
	// MarkUnavailable flips available false only when it is currently true
	// and reports the affected row count, so callers can treat 0 as
	// "missing or already borrowed".
	MarkUnavailable(ctx context.Context, id uint) (int64, error)
	MarkAvailable(ctx context.Context, id uint) error
}

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository builds a GORM-backed repository.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

func (r *bookRepository) Save(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Save(book).Error
}

func (r *bookRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Book{}, id)
	return res.RowsAffected, res.Error
}

func (r *bookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).Where("isbn = ?", isbn).First(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// List returns books ordered by title. A non-empty search filters to rows
// whose title or author contains it, case-insensitively.
func (r *bookRepository) List(ctx context.Context, search string) ([]model.Book, error) {
	q := r.db.WithContext(ctx).Order("title ASC")
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}

	var books []model.Book
	if err := q.Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepository) MarkUnavailable(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ? AND available = ?", id, true).
		Update("available", false)
	return res.RowsAffected, res.Error
}

func (r *bookRepository) MarkAvailable(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ?", id).
		Update("available", true).Error
}
