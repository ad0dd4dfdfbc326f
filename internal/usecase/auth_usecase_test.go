package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should reject an unknown account type", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), "secret", 24)
		_, err := uc.Register(ctx, "jane", "jane@example.com", "password123", "admin")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "job_seeker or employer")
	})

	t.Run("Should reject a duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(&domain.User{ID: 1}, nil)

		uc := usecase.NewAuthUsecase(userRepo, "secret", 24)
		_, err := uc.Register(ctx, "jane", "Jane@Example.com", "password123", domain.RoleJobSeeker)

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	})

	t.Run("Should reject a taken username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByUsername", ctx, "jane").Return(&domain.User{ID: 2}, nil)

		uc := usecase.NewAuthUsecase(userRepo, "secret", 24)
		_, err := uc.Register(ctx, "jane", "jane@example.com", "password123", domain.RoleJobSeeker)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "username is already taken")
	})

	t.Run("Should store a hashed password and the chosen role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByUsername", ctx, "jane").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		uc := usecase.NewAuthUsecase(userRepo, "secret", 24)
		user, err := uc.Register(ctx, "jane", "Jane@Example.com", "password123", domain.RoleEmployer)

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, domain.RoleEmployer, user.Role)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	account := &domain.User{ID: 1, Email: "jane@example.com", PasswordHash: string(hash), Role: domain.RoleJobSeeker}

	t.Run("Should not reveal whether the account exists", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(account, nil)

		uc := usecase.NewAuthUsecase(userRepo, "secret", 24)
		_, _, missingErr := uc.Login(ctx, "ghost@example.com", "whatever")
		_, _, wrongErr := uc.Login(ctx, "jane@example.com", "wrongpass")

		assert.Error(t, missingErr)
		assert.Error(t, wrongErr)
		assert.Equal(t, missingErr.Error(), wrongErr.Error())
	})

	t.Run("Should issue a token that expires in the future", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "jane@example.com").Return(account, nil)

		uc := usecase.NewAuthUsecase(userRepo, "secret", 24)
		user, pair, err := uc.Login(ctx, "Jane@Example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, account.ID, user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.True(t, pair.ExpiresAt.After(time.Now()))
	})
}

func TestGetCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should treat a deleted account as unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)

		uc := usecase.NewAuthUsecase(userRepo, "secret", 24)
		_, err := uc.GetCurrentUser(ctx, 404)

		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	})
}
