package usecase

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
)

type contactUsecase struct {
	contentRepo  domain.ContentRepository
	emailService *email.EmailService
}

func NewContactUsecase(contentRepo domain.ContentRepository, emailService *email.EmailService) domain.ContactUsecase {
	return &contactUsecase{
		contentRepo:  contentRepo,
		emailService: emailService,
	}
}

// SubmitContactMessage persists the message first; the email notification is
// best-effort and never fails the submission.
func (u *contactUsecase) SubmitContactMessage(ctx context.Context, req *domain.ContactRequest) (*domain.ContactMessage, error) {
	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactStatusNew,
	}
	if err := u.contentRepo.CreateContactMessage(ctx, msg); err != nil {
		return nil, apperror.Internal(err)
	}

	if u.emailService != nil && u.emailService.IsConfigured() {
		go func() {
			err := u.emailService.SendContactEmail(email.ContactEmailData{
				SenderName:  msg.Name,
				SenderEmail: msg.Email,
				Subject:     msg.Subject,
				Message:     msg.Message,
			})
			if err != nil {
				logger.Log.Error("failed to send contact notification", "message_id", msg.ID, "error", err)
			}
		}()
	}

	return msg, nil
}
