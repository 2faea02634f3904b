package repository

import (
	"context"
	"errors"

	"github.com/shri210404/pmsnew-sub000/internal/adapter/mapper"
	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type ClientRepositoryImpl struct {
	db *gorm.DB
}

// NewClientRepository 고객사 레포지토리 구현체 생성
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &ClientRepositoryImpl{db: db}
}

// FindByID ID로 고객사 조회
func (r *ClientRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	var clientModel model.ClientModel

	if err := r.db.WithContext(ctx).First(&clientModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.ClientFromModel(&clientModel), nil
}

// List 고객사 목록 조회
func (r *ClientRepositoryImpl) List(ctx context.Context, page, limit int) ([]*entity.Client, int64, error) {
	var clientModels []model.ClientModel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.ClientModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name").Offset(offset).Limit(limit).Find(&clientModels).Error; err != nil {
		return nil, 0, err
	}

	clients := make([]*entity.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = mapper.ClientFromModel(&clientModels[i])
	}
	return clients, total, nil
}

// Create 새 고객사 생성
func (r *ClientRepositoryImpl) Create(ctx context.Context, client *entity.Client) error {
	clientModel := mapper.ClientToModel(client)

	if err := r.db.WithContext(ctx).Create(clientModel).Error; err != nil {
		return err
	}

	client.CreatedAt = clientModel.CreatedAt
	return nil
}

// Update 고객사 정보 업데이트
func (r *ClientRepositoryImpl) Update(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Save(mapper.ClientToModel(client)).Error
}

// Delete 고객사 삭제
func (r *ClientRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id).Error
}
