package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/adapter/mapper"
	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type JobOrderRepositoryImpl struct {
	db *gorm.DB
}

// NewJobOrderRepository 잡오더 레포지토리 구현체 생성
func NewJobOrderRepository(db *gorm.DB) repository.JobOrderRepository {
	return &JobOrderRepositoryImpl{db: db}
}

// FindByID ID로 잡오더 조회
func (r *JobOrderRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.JobOrder, error) {
	var jobOrderModel model.JobOrderModel

	if err := r.db.WithContext(ctx).First(&jobOrderModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.JobOrderFromModel(&jobOrderModel), nil
}

// List 잡오더 목록 조회
func (r *JobOrderRepositoryImpl) List(ctx context.Context, clientID, status string, page, limit int) ([]*entity.JobOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.JobOrderModel{})
	if clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobOrderModels []model.JobOrderModel
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobOrderModels).Error; err != nil {
		return nil, 0, err
	}

	jobOrders := make([]*entity.JobOrder, len(jobOrderModels))
	for i := range jobOrderModels {
		jobOrders[i] = mapper.JobOrderFromModel(&jobOrderModels[i])
	}
	return jobOrders, total, nil
}

// CountByStatus 기간 내 생성된 잡오더를 상태별로 집계합니다
func (r *JobOrderRepositoryImpl) CountByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&model.JobOrderModel{}).
		Select("status, COUNT(*) AS count").
		Where("created_at BETWEEN ? AND ?", from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// Create 새 잡오더 생성
func (r *JobOrderRepositoryImpl) Create(ctx context.Context, jobOrder *entity.JobOrder) error {
	jobOrderModel := mapper.JobOrderToModel(jobOrder)

	if err := r.db.WithContext(ctx).Create(jobOrderModel).Error; err != nil {
		return err
	}

	jobOrder.CreatedAt = jobOrderModel.CreatedAt
	return nil
}

// Update 잡오더 정보 업데이트
func (r *JobOrderRepositoryImpl) Update(ctx context.Context, jobOrder *entity.JobOrder) error {
	return r.db.WithContext(ctx).Save(mapper.JobOrderToModel(jobOrder)).Error
}

// Delete 잡오더 삭제
func (r *JobOrderRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.JobOrderModel{}, "id = ?", id).Error
}
