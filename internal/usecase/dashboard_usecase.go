package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// DashboardUseCase 대시보드 집계 유스케이스 구현체
type DashboardUseCase struct {
	logger             *zap.Logger
	jobOrderRepository repository.JobOrderRepository
	proposalRepository repository.ProposalRepository
}

// NewDashboardUseCase 새 대시보드 유스케이스 생성
func NewDashboardUseCase(
	logger *zap.Logger,
	jobOrderRepo repository.JobOrderRepository,
	proposalRepo repository.ProposalRepository,
) interfaces.DashboardUseCase {
	return &DashboardUseCase{
		logger:             logger,
		jobOrderRepository: jobOrderRepo,
		proposalRepository: proposalRepo,
	}
}

// StatusSummary 기간 내 잡오더/제안 상태별 건수 집계
func (uc *DashboardUseCase) StatusSummary(ctx context.Context, from, to time.Time) (*dto.StatusSummaryResult, error) {
	if to.Before(from) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "조회 기간이 올바르지 않습니다", nil)
	}

	jobOrders, err := uc.jobOrderRepository.CountByStatus(ctx, from, to)
	if err != nil {
		uc.logger.Error("잡오더 집계 실패", zap.Error(err))
		return nil, fmt.Errorf("잡오더 집계 실패: %w", err)
	}

	proposals, err := uc.proposalRepository.CountByStatus(ctx, from, to)
	if err != nil {
		uc.logger.Error("제안 집계 실패", zap.Error(err))
		return nil, fmt.Errorf("제안 집계 실패: %w", err)
	}

	return &dto.StatusSummaryResult{
		From:      from,
		To:        to,
		JobOrders: jobOrders,
		Proposals: proposals,
	}, nil
}
