package interfaces

import (
	"context"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// AuditLogUseCase 감사 로그 조회를 담당하는 유스케이스 인터페이스
type AuditLogUseCase interface {
	// Record 감사 로그 한 건 기록
	Record(ctx context.Context, log *entity.AuditLog) error

	// ListByUserID 사용자 ID로 감사 로그 조회
	ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.AuditLog, int64, error)

	// Search 검색 조건으로 감사 로그 조회
	Search(
		ctx context.Context,
		userID *string,
		logTypes []entity.AuditLogType,
		startDate, endDate *time.Time,
		page, limit int,
	) ([]*entity.AuditLog, int64, error)
}
