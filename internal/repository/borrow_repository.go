package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Bruce1404/simple-library-backend/internal/model"
)

// BorrowRepository defines circulation persistence operations. Circulation
// writes span books and borrow_records, so WithTransaction hands the
// closure transaction-scoped instances of both repositories.
type BorrowRepository interface {
	Create(ctx context.Context, record *model.BorrowRecord) error
	FindByID(ctx context.Context, id uint) (*model.BorrowRecord, error)
	// MarkReturned closes a record only while its status is still
	// "borrowed" and reports the affected row count.
	MarkReturned(ctx context.Context, id uint, returnedAt time.Time) (int64, error)
	ListActiveByUser(ctx context.Context, userID uint) ([]model.Loan, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, books BookRepository, records BorrowRepository) error) error
}

type borrowRepository struct {
	db *gorm.DB
}

// NewBorrowRepository builds a GORM-backed repository.
func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepository{db: db}
}

func (r *borrowRepository) Create(ctx context.Context, record *model.BorrowRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *borrowRepository) FindByID(ctx context.Context, id uint) (*model.BorrowRecord, error) {
	var record model.BorrowRecord
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *borrowRepository) MarkReturned(ctx context.Context, id uint, returnedAt time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.BorrowRecord{}).
		Where("id = ? AND status = ?", id, model.BorrowStatusBorrowed).
		Updates(map[string]interface{}{
			"status":      model.BorrowStatusReturned,
			"returned_at": returnedAt,
		})
	return res.RowsAffected, res.Error
}

// ListActiveByUser returns the user's open loans joined with their books,
// soonest due first.
func (r *borrowRepository) ListActiveByUser(ctx context.Context, userID uint) ([]model.Loan, error) {
	var loans []model.Loan
	err := r.db.WithContext(ctx).
		Table("borrow_records").
		Select("borrow_records.id AS record_id, books.id AS book_id, books.title, books.author, books.isbn, books.category, borrow_records.borrowed_at, borrow_records.due_at, borrow_records.status").
		Joins("JOIN books ON books.id = borrow_records.book_id").
		Where("borrow_records.user_id = ? AND borrow_records.status = ?", userID, model.BorrowStatusBorrowed).
		Order("borrow_records.due_at ASC").
		Scan(&loans).Error
	if err != nil {
		return nil, err
	}
	return loans, nil
}

// WithTransaction executes a function within a database transaction.
func (r *borrowRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, books BookRepository, records BorrowRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &bookRepository{db: tx}, &borrowRepository{db: tx})
	})
}
