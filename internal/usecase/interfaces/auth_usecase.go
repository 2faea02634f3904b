package interfaces

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
)

// AuthUseCase 인증 흐름을 담당하는 유스케이스 인터페이스
type AuthUseCase interface {
	// Login 자격 증명 검증 후 액세스 토큰과 리프레시 토큰 발급
	Login(ctx context.Context, params dto.LoginParams) (*dto.LoginResult, error)

	// RenewToken 리프레시 토큰을 회전하여 새 토큰 쌍 발급
	RenewToken(ctx context.Context, presentedSecret string) (*dto.LoginResult, error)

	// Logout 세션 종료. 토큰이 없거나 이미 철회되어도 실패하지 않습니다
	Logout(ctx context.Context, presentedSecret, accessToken string) error

	// ChangePassword 현재 비밀번호 확인 후 새 비밀번호로 변경
	ChangePassword(ctx context.Context, params dto.ChangePasswordParams) error

	// ForgotPassword 비밀번호 재설정 토큰을 생성하고 이메일 발송
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword 이메일로 전달된 토큰 확인 후 비밀번호 재설정
	ResetPassword(ctx context.Context, params dto.ResetPasswordParams) error
}
