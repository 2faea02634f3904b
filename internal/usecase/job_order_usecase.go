package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// JobOrderUseCase 잡오더 관리 유스케이스 구현체
type JobOrderUseCase struct {
	logger             *zap.Logger
	jobOrderRepository repository.JobOrderRepository
	clientRepository   repository.ClientRepository
}

// NewJobOrderUseCase 새 잡오더 유스케이스 생성
func NewJobOrderUseCase(
	logger *zap.Logger,
	jobOrderRepo repository.JobOrderRepository,
	clientRepo repository.ClientRepository,
) interfaces.JobOrderUseCase {
	return &JobOrderUseCase{
		logger:             logger,
		jobOrderRepository: jobOrderRepo,
		clientRepository:   clientRepo,
	}
}

// Create 새 잡오더 등록
func (uc *JobOrderUseCase) Create(ctx context.Context, jobOrder *entity.JobOrder) (*entity.JobOrder, error) {
	if jobOrder.Title == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "잡오더 제목은 필수입니다", nil)
	}

	if jobOrder.Positions <= 0 {
		jobOrder.Positions = 1
	}

	if jobOrder.MinRate.GreaterThan(jobOrder.MaxRate) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "최소 단가가 최대 단가보다 클 수 없습니다", nil)
	}

	// 고객사 존재 확인
	client, err := uc.clientRepository.FindByID(ctx, jobOrder.ClientID)
	if err != nil {
		uc.logger.Error("고객사 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("고객사 조회 실패: %w", err)
	}

	if client == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "고객사를 찾을 수 없습니다", nil)
	}

	if !client.IsActive {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "비활성 고객사에는 잡오더를 등록할 수 없습니다", nil)
	}

	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}
	jobOrder.ID = id
	jobOrder.Status = entity.JobOrderStatusOpen
	jobOrder.OpenedAt = time.Now()

	if err := uc.jobOrderRepository.Create(ctx, jobOrder); err != nil {
		uc.logger.Error("잡오더 생성 실패", zap.Error(err))
		return nil, fmt.Errorf("잡오더 생성 실패: %w", err)
	}

	return jobOrder, nil
}

// Get ID로 잡오더 조회
func (uc *JobOrderUseCase) Get(ctx context.Context, id string) (*entity.JobOrder, error) {
	jobOrder, err := uc.jobOrderRepository.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("잡오더 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("잡오더 조회 실패: %w", err)
	}

	if jobOrder == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "잡오더를 찾을 수 없습니다", nil)
	}

	return jobOrder, nil
}

// List 고객사/상태 필터로 잡오더 목록 조회
func (uc *JobOrderUseCase) List(ctx context.Context, clientID, status string, page, limit int) ([]*entity.JobOrder, int64, error) {
	return uc.jobOrderRepository.List(ctx, clientID, status, page, limit)
}

// Update 잡오더 정보 수정
func (uc *JobOrderUseCase) Update(ctx context.Context, jobOrder *entity.JobOrder) (*entity.JobOrder, error) {
	existing, err := uc.Get(ctx, jobOrder.ID)
	if err != nil {
		return nil, err
	}

	if jobOrder.Title != "" {
		existing.Title = jobOrder.Title
	}
	if jobOrder.Description != "" {
		existing.Description = jobOrder.Description
	}
	if jobOrder.Positions > 0 {
		existing.Positions = jobOrder.Positions
	}
	if !jobOrder.MinRate.IsZero() {
		existing.MinRate = jobOrder.MinRate
	}
	if !jobOrder.MaxRate.IsZero() {
		existing.MaxRate = jobOrder.MaxRate
	}
	if jobOrder.Currency != "" {
		existing.Currency = jobOrder.Currency
	}
	if jobOrder.TargetDate != nil {
		existing.TargetDate = jobOrder.TargetDate
	}

	if existing.MinRate.GreaterThan(existing.MaxRate) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "최소 단가가 최대 단가보다 클 수 없습니다", nil)
	}

	if err := uc.jobOrderRepository.Update(ctx, existing); err != nil {
		uc.logger.Error("잡오더 수정 실패", zap.Error(err))
		return nil, fmt.Errorf("잡오더 수정 실패: %w", err)
	}

	return existing, nil
}

// ChangeStatus 잡오더 상태 변경
func (uc *JobOrderUseCase) ChangeStatus(ctx context.Context, id, status string) error {
	switch status {
	case entity.JobOrderStatusOpen, entity.JobOrderStatusOnHold,
		entity.JobOrderStatusFilled, entity.JobOrderStatusCancelled:
	default:
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 잡오더 상태입니다", nil)
	}

	jobOrder, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}

	if jobOrder.Status == status {
		return nil
	}

	jobOrder.Status = status
	if err := uc.jobOrderRepository.Update(ctx, jobOrder); err != nil {
		uc.logger.Error("잡오더 상태 변경 실패", zap.Error(err))
		return fmt.Errorf("잡오더 상태 변경 실패: %w", err)
	}

	return nil
}

// Delete 잡오더 삭제
func (uc *JobOrderUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.jobOrderRepository.Delete(ctx, id); err != nil {
		uc.logger.Error("잡오더 삭제 실패", zap.Error(err))
		return fmt.Errorf("잡오더 삭제 실패: %w", err)
	}

	return nil
}
