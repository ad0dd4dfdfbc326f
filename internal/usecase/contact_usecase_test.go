package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubmitContactMessage(t *testing.T) {
	ctx := context.Background()

	req := &domain.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Partnership",
		Message: "Hello there",
	}

	t.Run("Should persist the message with status new", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("CreateContactMessage", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(nil)

		uc := usecase.NewContactUsecase(contentRepo, nil)
		msg, err := uc.SubmitContactMessage(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, domain.ContactStatusNew, msg.Status)
		assert.Equal(t, req.Email, msg.Email)
	})

	t.Run("Should surface a storage failure", func(t *testing.T) {
		contentRepo := new(MockContentRepo)
		contentRepo.On("CreateContactMessage", ctx, mock.AnythingOfType("*domain.ContactMessage")).Return(errors.New("insert failed"))

		uc := usecase.NewContactUsecase(contentRepo, nil)
		_, err := uc.SubmitContactMessage(ctx, req)

		assert.Error(t, err)
	})
}
