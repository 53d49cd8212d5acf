package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/Bruce1404/simple-library-backend/internal/errors"
	"github.com/Bruce1404/simple-library-backend/internal/model"
)

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo)

	repo.On("FindByEmail", mock.Anything, "alice@x.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Register(context.Background(), "alice@x.com", "pw1secret", "Alice", "")

	assert.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "student", user.Role)
	assert.NotEqual(t, "pw1secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1secret")))
	repo.AssertExpectations(t)
}

func TestRegister_KeepsExplicitRole(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo)

	repo.On("FindByEmail", mock.Anything, "bob@x.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, err := svc.Register(context.Background(), "bob@x.com", "pw2secret", "Bob", "librarian")

	assert.NoError(t, err)
	assert.Equal(t, "librarian", user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo)

	repo.On("FindByEmail", mock.Anything, "alice@x.com").Return(&model.User{ID: 1, Email: "alice@x.com"}, nil)

	user, err := svc.Register(context.Background(), "alice@x.com", "pw1secret", "Alice", "")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &model.User{ID: 1, Email: "alice@x.com", Name: "Alice", PasswordHash: string(hash)}
	repo.On("FindByEmail", mock.Anything, "alice@x.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), "alice@x.com", "pw1secret")

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "Alice", user.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &model.User{ID: 1, Email: "alice@x.com", PasswordHash: string(hash)}
	repo.On("FindByEmail", mock.Anything, "alice@x.com").Return(stored, nil)

	user, err := svc.Login(context.Background(), "alice@x.com", "pw2")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockUserRepository)
	svc := NewAuthService(repo)

	repo.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)

	user, err := svc.Login(context.Background(), "nobody@x.com", "pw1secret")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
