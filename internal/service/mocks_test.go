package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Bruce1404/simple-library-backend/internal/model"
	"github.com/Bruce1404/simple-library-backend/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockBookRepository is a mock implementation of BookRepository.
type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) Create(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Save(ctx context.Context, book *model.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) Delete(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) FindByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	args := m.Called(ctx, isbn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Book), args.Error(1)
}

func (m *MockBookRepository) List(ctx context.Context, search string) ([]model.Book, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockBookRepository) MarkUnavailable(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookRepository) MarkAvailable(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBorrowRepository is a mock implementation of BorrowRepository. Its
// WithTransaction runs the closure against the repositories in txBooks and
// txRecords, standing in for transaction-scoped instances.
type MockBorrowRepository struct {
	mock.Mock
	txBooks   repository.BookRepository
	txRecords repository.BorrowRepository
}

func (m *MockBorrowRepository) Create(ctx context.Context, record *model.BorrowRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockBorrowRepository) FindByID(ctx context.Context, id uint) (*model.BorrowRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BorrowRecord), args.Error(1)
}

func (m *MockBorrowRepository) MarkReturned(ctx context.Context, id uint, returnedAt time.Time) (int64, error) {
	args := m.Called(ctx, id, returnedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBorrowRepository) ListActiveByUser(ctx context.Context, userID uint) ([]model.Loan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Loan), args.Error(1)
}

func (m *MockBorrowRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, books repository.BookRepository, records repository.BorrowRepository) error) error {
	return fn(ctx, m.txBooks, m.txRecords)
}
