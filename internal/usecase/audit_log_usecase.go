package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
)

// AuditLogUseCase 감사 로그 유스케이스 구현체
type AuditLogUseCase struct {
	logger          *zap.Logger
	auditRepository repository.AuditLogRepository
}

// NewAuditLogUseCase 새 감사 로그 유스케이스 생성
func NewAuditLogUseCase(
	logger *zap.Logger,
	auditRepo repository.AuditLogRepository,
) interfaces.AuditLogUseCase {
	return &AuditLogUseCase{
		logger:          logger,
		auditRepository: auditRepo,
	}
}

// Record 감사 로그 한 건 기록
func (uc *AuditLogUseCase) Record(ctx context.Context, log *entity.AuditLog) error {
	if err := uc.auditRepository.Create(ctx, log); err != nil {
		uc.logger.Error("감사 로그 저장 실패",
			zap.String("type", string(log.Type)),
			zap.Error(err))
		return err
	}
	return nil
}

// ListByUserID 사용자 ID로 감사 로그 조회
func (uc *AuditLogUseCase) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.AuditLog, int64, error) {
	return uc.auditRepository.ListByUserID(ctx, userID, page, limit)
}

// Search 검색 조건으로 감사 로그 조회
func (uc *AuditLogUseCase) Search(
	ctx context.Context,
	userID *string,
	logTypes []entity.AuditLogType,
	startDate, endDate *time.Time,
	page, limit int,
) ([]*entity.AuditLog, int64, error) {
	return uc.auditRepository.Search(ctx, userID, logTypes, startDate, endDate, page, limit)
}
