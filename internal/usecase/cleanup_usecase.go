package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/constants"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
)

// CleanupUseCase 리프레시 토큰 보존 정책 정리 유스케이스 구현체
type CleanupUseCase struct {
	logger            *zap.Logger
	refreshExpiryDays int
	tokenRepository   repository.RefreshTokenRepository
}

// NewCleanupUseCase 새 정리 유스케이스 생성
func NewCleanupUseCase(
	logger *zap.Logger,
	refreshExpiryDays int,
	tokenRepo repository.RefreshTokenRepository,
) interfaces.CleanupUseCase {
	if refreshExpiryDays <= 0 {
		refreshExpiryDays = constants.RefreshTokenExpiryDays
	}

	return &CleanupUseCase{
		logger:            logger,
		refreshExpiryDays: refreshExpiryDays,
		tokenRepository:   tokenRepo,
	}
}

// RunRetentionSweep 보존 기한이 지난 리프레시 토큰을 삭제합니다.
// 비철회 토큰은 만료 후 유예 기간까지, 철회 토큰은 감사용 보존 기간까지 유지됩니다.
func (uc *CleanupUseCase) RunRetentionSweep(ctx context.Context) (int64, error) {
	now := time.Now()
	activeBefore := now.AddDate(0, 0, -(uc.refreshExpiryDays + constants.ExpiredTokenGraceDays))
	revokedBefore := now.AddDate(0, 0, -constants.RevokedTokenRetentionDays)

	deleted, err := uc.tokenRepository.DeleteExpired(ctx, activeBefore, revokedBefore)
	if err != nil {
		uc.logger.Error("토큰 보존 정리 실패", zap.Error(err))
		return 0, fmt.Errorf("토큰 보존 정리 실패: %w", err)
	}

	uc.logger.Info("토큰 보존 정리 완료",
		zap.Int64("deleted_count", deleted),
		zap.Time("active_before", activeBefore),
		zap.Time("revoked_before", revokedBefore))

	return deleted, nil
}
