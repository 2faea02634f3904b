package interfaces

import (
	"context"
)

// EmailUseCase 안내 메일 발송을 담당하는 유스케이스 인터페이스
type EmailUseCase interface {
	// SendPasswordResetEmail 비밀번호 재설정 링크 메일 발송
	SendPasswordResetEmail(ctx context.Context, email, name, resetToken string) error

	// SendWelcomeEmail 신규 사용자에게 임시 비밀번호 안내 메일 발송
	SendWelcomeEmail(ctx context.Context, email, name, username, tempPassword string) error
}
