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

// loanPeriod is how long a borrowed book is out before it is due.
const loanPeriod = 14 * 24 * time.Hour

// CirculationService handles borrow and return operations.
type CirculationService interface {
	Borrow(ctx context.Context, bookID, userID uint) (*model.BorrowRecord, error)
	Return(ctx context.Context, recordID uint) error
	ListUserLoans(ctx context.Context, userID uint) ([]model.Loan, error)
}

type circulationService struct {
	userRepo   repository.UserRepository
	borrowRepo repository.BorrowRepository
	cache      *cache.Client
}

// NewCirculationService creates a new circulation service.
func NewCirculationService(
	userRepo repository.UserRepository,
	borrowRepo repository.BorrowRepository,
	cache *cache.Client,
) CirculationService {
	return &circulationService{
		userRepo:   userRepo,
		borrowRepo: borrowRepo,
		cache:      cache,
	}
}

// Borrow moves a book from available to borrowed and opens a record due in
// 14 days. The availability flip is a conditional update inside one
// transaction, so of two concurrent borrows on the same book exactly one
// wins; the loser sees the book as unavailable. A missing book and an
// already borrowed one are indistinguishable to the caller.
func (s *circulationService) Borrow(ctx context.Context, bookID, userID uint) (*model.BorrowRecord, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	var record *model.BorrowRecord
	err := s.borrowRepo.WithTransaction(ctx, func(ctx context.Context, books repository.BookRepository, records repository.BorrowRepository) error {
		rows, err := books.MarkUnavailable(ctx, bookID)
		if err != nil {
			return fmt.Errorf("mark book unavailable: %w", err)
		}
		if rows == 0 {
			return apperrors.ErrBookUnavailable
		}

		now := time.Now()
		record = &model.BorrowRecord{
			BookID:     bookID,
			UserID:     userID,
			BorrowedAt: now,
			DueAt:      now.Add(loanPeriod),
			Status:     model.BorrowStatusBorrowed,
		}
		if err := records.Create(ctx, record); err != nil {
			return fmt.Errorf("create borrow record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.KeyBookList)
	return record, nil
}

// Return closes a borrow record and frees its book. The status guard stops
// a second return from re-freeing a book someone else has since borrowed.
func (s *circulationService) Return(ctx context.Context, recordID uint) error {
	err := s.borrowRepo.WithTransaction(ctx, func(ctx context.Context, books repository.BookRepository, records repository.BorrowRepository) error {
		record, err := records.FindByID(ctx, recordID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrRecordNotFound
			}
			return fmt.Errorf("find borrow record: %w", err)
		}

		rows, err := records.MarkReturned(ctx, recordID, time.Now())
		if err != nil {
			return fmt.Errorf("mark record returned: %w", err)
		}
		if rows == 0 {
			return apperrors.ErrAlreadyReturned
		}

		if err := books.MarkAvailable(ctx, record.BookID); err != nil {
			return fmt.Errorf("mark book available: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.KeyBookList)
	return nil
}

// ListUserLoans returns the user's open loans, soonest due first.
func (s *circulationService) ListUserLoans(ctx context.Context, userID uint) ([]model.Loan, error) {
	loans, err := s.borrowRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}
