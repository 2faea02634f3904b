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

type ProposalRepositoryImpl struct {
	db *gorm.DB
}

// NewProposalRepository 제안 레포지토리 구현체 생성
func NewProposalRepository(db *gorm.DB) repository.ProposalRepository {
	return &ProposalRepositoryImpl{db: db}
}

// FindByID ID로 제안 조회
func (r *ProposalRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Proposal, error) {
	var proposalModel model.ProposalModel

	if err := r.db.WithContext(ctx).First(&proposalModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.ProposalFromModel(&proposalModel), nil
}

// List 제안 목록 조회
func (r *ProposalRepositoryImpl) List(ctx context.Context, jobOrderID, status string, page, limit int) ([]*entity.Proposal, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ProposalModel{})
	if jobOrderID != "" {
		query = query.Where("job_order_id = ?", jobOrderID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var proposalModels []model.ProposalModel
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&proposalModels).Error; err != nil {
		return nil, 0, err
	}

	proposals := make([]*entity.Proposal, len(proposalModels))
	for i := range proposalModels {
		proposals[i] = mapper.ProposalFromModel(&proposalModels[i])
	}
	return proposals, total, nil
}

// CountByStatus 기간 내 생성된 제안을 상태별로 집계합니다
func (r *ProposalRepositoryImpl) CountByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error) {
	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&model.ProposalModel{}).
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

// Create 새 제안 생성
func (r *ProposalRepositoryImpl) Create(ctx context.Context, proposal *entity.Proposal) error {
	proposalModel := mapper.ProposalToModel(proposal)

	if err := r.db.WithContext(ctx).Create(proposalModel).Error; err != nil {
		return err
	}

	proposal.CreatedAt = proposalModel.CreatedAt
	return nil
}

// Update 제안 정보 업데이트
func (r *ProposalRepositoryImpl) Update(ctx context.Context, proposal *entity.Proposal) error {
	return r.db.WithContext(ctx).Save(mapper.ProposalToModel(proposal)).Error
}

// Delete 제안 삭제
func (r *ProposalRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ProposalModel{}, "id = ?", id).Error
}
