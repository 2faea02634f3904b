package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/mail"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
)

// EmailUseCase 안내 메일 발송 유스케이스 구현체
type EmailUseCase struct {
	logger           *zap.Logger
	mailRepository   repository.MailRepository
	templates        *mail.EmailTemplateService
	resetPasswordURL string
}

// NewEmailUseCase 새 이메일 유스케이스 생성
func NewEmailUseCase(
	logger *zap.Logger,
	mailRepo repository.MailRepository,
	templates *mail.EmailTemplateService,
	resetPasswordURL string,
) interfaces.EmailUseCase {
	return &EmailUseCase{
		logger:           logger,
		mailRepository:   mailRepo,
		templates:        templates,
		resetPasswordURL: resetPasswordURL,
	}
}

// SendPasswordResetEmail 비밀번호 재설정 링크 메일 발송
func (uc *EmailUseCase) SendPasswordResetEmail(ctx context.Context, email, name, resetToken string) error {
	resetURL := fmt.Sprintf("%s?token=%s", uc.resetPasswordURL, resetToken)
	body := uc.templates.GeneratePasswordResetEmailHTML(name, resetURL)

	if err := uc.mailRepository.SendMail(ctx, email, "비밀번호 재설정 안내", body); err != nil {
		uc.logger.Error("재설정 이메일 발송 실패",
			zap.String("email", email),
			zap.Error(err))
		return fmt.Errorf("재설정 이메일 발송 실패: %w", err)
	}

	return nil
}

// SendWelcomeEmail 신규 사용자에게 임시 비밀번호 안내 메일 발송
func (uc *EmailUseCase) SendWelcomeEmail(ctx context.Context, email, name, username, tempPassword string) error {
	body := uc.templates.GenerateWelcomeEmailHTML(name, username, tempPassword)

	if err := uc.mailRepository.SendMail(ctx, email, "계정 생성 안내", body); err != nil {
		uc.logger.Error("환영 이메일 발송 실패",
			zap.String("email", email),
			zap.Error(err))
		return fmt.Errorf("환영 이메일 발송 실패: %w", err)
	}

	return nil
}
