package interfaces

import (
	"context"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
)

// DashboardUseCase 대시보드 집계를 담당하는 유스케이스 인터페이스
type DashboardUseCase interface {
	// StatusSummary 기간 내 잡오더/제안 상태별 건수 집계
	StatusSummary(ctx context.Context, from, to time.Time) (*dto.StatusSummaryResult, error)
}

// CleanupUseCase 토큰 보존 정책 정리를 담당하는 유스케이스 인터페이스
type CleanupUseCase interface {
	// RunRetentionSweep 보존 기한이 지난 리프레시 토큰 삭제. 삭제 개수 반환
	RunRetentionSweep(ctx context.Context) (int64, error)
}
