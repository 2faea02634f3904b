package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// AuthConfig 인증 흐름 관련 설정
type AuthConfig struct {
	HashCost         int // bcrypt 비용 계수
	ResetTokenExpiry int // 재설정 토큰 유효 시간 (초)
}

// AuthUseCase 인증 유스케이스 구현체
type AuthUseCase struct {
	logger             *zap.Logger
	config             AuthConfig
	userRepository     repository.UserRepository
	activityRepository repository.LoginActivityRepository
	auditRepository    repository.AuditLogRepository
	tokenUseCase       interfaces.TokenUseCase
	emailUseCase       interfaces.EmailUseCase
}

// NewAuthUseCase 새 인증 유스케이스 생성
func NewAuthUseCase(
	logger *zap.Logger,
	config AuthConfig,
	userRepo repository.UserRepository,
	activityRepo repository.LoginActivityRepository,
	auditRepo repository.AuditLogRepository,
	tokenUC interfaces.TokenUseCase,
	emailUC interfaces.EmailUseCase,
) interfaces.AuthUseCase {
	return &AuthUseCase{
		logger:             logger,
		config:             config,
		userRepository:     userRepo,
		activityRepository: activityRepo,
		auditRepository:    auditRepo,
		tokenUseCase:       tokenUC,
		emailUseCase:       emailUC,
	}
}

// Login 자격 증명 검증 후 토큰 쌍 발급
func (uc *AuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*dto.LoginResult, error) {
	// 1. 사용자 조회. 실패 사유는 클라이언트에 구분해 노출하지 않습니다
	user, err := uc.userRepository.FindByUsername(ctx, params.Username)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if user == nil {
		uc.recordLoginFailed(ctx, params)
		return nil, apperrors.NewAppError(apperrors.ErrInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다", nil)
	}

	// 2. 비밀번호 검증
	if err := VerifyPassword(user.Password, params.Secret, user.Salt); err != nil {
		uc.recordLoginFailed(ctx, params)
		return nil, apperrors.NewAppError(apperrors.ErrInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다", nil)
	}

	// 3. 계정 상태 확인
	if !user.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrAccountDeactivated, "비활성화된 계정입니다", nil)
	}

	// 4. 액세스 토큰 발급
	accessToken, err := uc.tokenUseCase.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	// 5. 패밀리 루트 리프레시 토큰 발급
	refreshSecret, err := uc.tokenUseCase.IssueInitial(ctx, user, accessToken)
	if err != nil {
		return nil, err
	}

	// 6. 로그인 시각 기록
	user.RecordLogin()
	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Warn("로그인 시각 갱신 실패", zap.Error(err))
	}

	// 7. 로그인 이력 및 감사 로그 기록
	activity := entity.NewLoginActivity(user.ID, params.IP, params.UserAgent)
	if err := uc.activityRepository.Create(ctx, activity); err != nil {
		uc.logger.Warn("로그인 이력 저장 실패", zap.Error(err))
	}

	uc.recordAudit(ctx, &user.ID, entity.AuditLogTypeLoginSuccess, map[string]interface{}{
		"username":   user.Username,
		"ip":         params.IP,
		"user_agent": params.UserAgent,
	})

	return &dto.LoginResult{
		AuthToken:     accessToken,
		RefreshSecret: refreshSecret,
		User:          toUserDetails(user),
	}, nil
}

// RenewToken 리프레시 토큰 회전으로 새 토큰 쌍 발급
func (uc *AuthUseCase) RenewToken(ctx context.Context, presentedSecret string) (*dto.LoginResult, error) {
	result, err := uc.tokenUseCase.Rotate(ctx, presentedSecret)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		AuthToken:     result.AccessToken,
		RefreshSecret: result.RefreshSecret,
		User:          toUserDetails(result.User),
	}, nil
}

// Logout 세션 종료. 토큰이 없거나 이미 철회되어도 성공으로 처리합니다
func (uc *AuthUseCase) Logout(ctx context.Context, presentedSecret, accessToken string) error {
	if presentedSecret != "" {
		revoked, err := uc.tokenUseCase.Revoke(ctx, presentedSecret)
		if err != nil {
			uc.logger.Warn("로그아웃 중 리프레시 토큰 철회 실패", zap.Error(err))
		} else if revoked {
			uc.recordAudit(ctx, nil, entity.AuditLogTypeLogoutSuccess, map[string]interface{}{
				"revoked": true,
			})
		}
	}

	if accessToken != "" {
		if err := uc.tokenUseCase.RevokeAccessToken(ctx, accessToken); err != nil {
			uc.logger.Warn("로그아웃 중 액세스 토큰 폐기 실패", zap.Error(err))
		}
	}

	return nil
}

// ChangePassword 현재 비밀번호 확인 후 새 비밀번호로 변경.
// 변경에 성공하면 사용자의 기존 세션을 모두 철회합니다.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, params dto.ChangePasswordParams) error {
	// 1. 사용자 조회
	user, err := uc.userRepository.FindByID(ctx, params.UserID)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if user == nil {
		return apperrors.NewAppError(apperrors.ErrNotFound, "사용자를 찾을 수 없습니다", nil)
	}

	// 2. 현재 비밀번호 검증
	if err := VerifyPassword(user.Password, params.CurrentPassword, user.Salt); err != nil {
		return apperrors.NewAppError(apperrors.ErrInvalidCredentials, "현재 비밀번호가 올바르지 않습니다", nil)
	}

	// 3. 새 비밀번호 해싱 및 저장
	hashedPassword, salt, err := HashPassword(params.NewPassword, uc.config.HashCost)
	if err != nil {
		return fmt.Errorf("비밀번호 해싱 실패: %w", err)
	}

	if err := user.ChangePassword(hashedPassword, salt); err != nil {
		return err
	}

	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Error("비밀번호 변경 저장 실패", zap.Error(err))
		return fmt.Errorf("비밀번호 변경 저장 실패: %w", err)
	}

	// 4. 기존 세션 전체 철회. 실패해도 비밀번호 변경 자체는 유지
	if _, err := uc.tokenUseCase.RevokeAllForUser(ctx, user.ID); err != nil {
		uc.logger.Warn("비밀번호 변경 후 세션 철회 실패",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	uc.recordAudit(ctx, &user.ID, entity.AuditLogTypePasswordChanged, map[string]interface{}{
		"username": user.Username,
	})

	return nil
}

// ForgotPassword 비밀번호 재설정 토큰 생성 후 이메일 발송.
// 계정 존재 여부는 응답으로 노출하지 않습니다.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if !isValidEmail(email) {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 이메일 형식입니다", nil)
	}

	user, err := uc.userRepository.FindByUsername(ctx, email)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if user == nil {
		uc.logger.Info("미등록 이메일로 재설정 요청", zap.String("email", email))
		return nil
	}

	// 재설정 토큰 생성 및 저장
	resetToken := uuid.NewString()
	expiry := uc.config.ResetTokenExpiry
	if expiry <= 0 {
		expiry = 3600
	}
	user.SetResetToken(resetToken, time.Now().Add(time.Duration(expiry)*time.Second))

	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Error("재설정 토큰 저장 실패", zap.Error(err))
		return fmt.Errorf("재설정 토큰 저장 실패: %w", err)
	}

	// 이메일 발송은 응답을 지연시키지 않도록 비동기로 처리
	go func() {
		bgCtx := context.Background()
		if err := uc.emailUseCase.SendPasswordResetEmail(bgCtx, user.Email, user.Name, resetToken); err != nil {
			uc.logger.Error("재설정 이메일 발송 실패", zap.Error(err))
		}
	}()

	uc.recordAudit(ctx, &user.ID, entity.AuditLogTypePasswordResetRequested, map[string]interface{}{
		"username": user.Username,
	})

	return nil
}

// ResetPassword 이메일로 전달된 토큰 확인 후 비밀번호 재설정.
// 재설정에 성공하면 사용자의 기존 세션을 모두 철회합니다.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, params dto.ResetPasswordParams) error {
	// 1. 재설정 토큰으로 사용자 조회
	user, err := uc.userRepository.FindByResetToken(ctx, params.Token)
	if err != nil {
		uc.logger.Error("재설정 토큰 조회 실패", zap.Error(err))
		return fmt.Errorf("재설정 토큰 조회 실패: %w", err)
	}

	if user == nil || !user.CanUseResetToken(params.Token) {
		return apperrors.NewAppError(apperrors.ErrMalformedToken, "유효하지 않거나 만료된 재설정 토큰입니다", nil)
	}

	// 2. 새 비밀번호 해싱 및 토큰 해제
	hashedPassword, salt, err := HashPassword(params.NewPassword, uc.config.HashCost)
	if err != nil {
		return fmt.Errorf("비밀번호 해싱 실패: %w", err)
	}

	if err := user.ChangePassword(hashedPassword, salt); err != nil {
		return err
	}
	user.ClearResetToken()

	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Error("비밀번호 재설정 저장 실패", zap.Error(err))
		return fmt.Errorf("비밀번호 재설정 저장 실패: %w", err)
	}

	// 3. 기존 세션 전체 철회. 실패해도 재설정 자체는 유지
	if _, err := uc.tokenUseCase.RevokeAllForUser(ctx, user.ID); err != nil {
		uc.logger.Warn("비밀번호 재설정 후 세션 철회 실패",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	uc.recordAudit(ctx, &user.ID, entity.AuditLogTypePasswordReset, map[string]interface{}{
		"username": user.Username,
	})

	return nil
}

// recordLoginFailed 로그인 실패 감사 로그 기록
func (uc *AuthUseCase) recordLoginFailed(ctx context.Context, params dto.LoginParams) {
	uc.recordAudit(ctx, nil, entity.AuditLogTypeLoginFailed, map[string]interface{}{
		"username":   params.Username,
		"ip":         params.IP,
		"user_agent": params.UserAgent,
	})
}

// recordAudit 감사 로그 기록. 실패해도 본 처리에는 영향을 주지 않습니다
func (uc *AuthUseCase) recordAudit(ctx context.Context, userID *string, logType entity.AuditLogType, content map[string]interface{}) {
	auditLog := entity.NewAuditLog(userID, logType, content)
	if err := uc.auditRepository.Create(ctx, auditLog); err != nil {
		uc.logger.Warn("감사 로그 저장 실패",
			zap.String("type", string(logType)),
			zap.Error(err))
	}
}

// toUserDetails 클라이언트 응답용 사용자 정보 변환
func toUserDetails(user *entity.User) dto.UserDetails {
	return dto.UserDetails{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Role:     user.RoleName,
	}
}
