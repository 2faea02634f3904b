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

type MailTemplateRepositoryImpl struct {
	db *gorm.DB
}

// NewMailTemplateRepository 메일 템플릿 레포지토리 구현체 생성
func NewMailTemplateRepository(db *gorm.DB) repository.MailTemplateRepository {
	return &MailTemplateRepositoryImpl{db: db}
}

// FindByID ID로 템플릿 조회
func (r *MailTemplateRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.MailTemplate, error) {
	var templateModel model.MailTemplateModel

	if err := r.db.WithContext(ctx).First(&templateModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.MailTemplateFromModel(&templateModel), nil
}

// FindByName 이름으로 템플릿 조회
func (r *MailTemplateRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.MailTemplate, error) {
	var templateModel model.MailTemplateModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&templateModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.MailTemplateFromModel(&templateModel), nil
}

// List 템플릿 목록 조회
func (r *MailTemplateRepositoryImpl) List(ctx context.Context, page, limit int) ([]*entity.MailTemplate, int64, error) {
	var templateModels []model.MailTemplateModel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.MailTemplateModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name").Offset(offset).Limit(limit).Find(&templateModels).Error; err != nil {
		return nil, 0, err
	}

	templates := make([]*entity.MailTemplate, len(templateModels))
	for i := range templateModels {
		templates[i] = mapper.MailTemplateFromModel(&templateModels[i])
	}
	return templates, total, nil
}

// Create 새 템플릿 생성
func (r *MailTemplateRepositoryImpl) Create(ctx context.Context, template *entity.MailTemplate) error {
	templateModel := mapper.MailTemplateToModel(template)

	if err := r.db.WithContext(ctx).Create(templateModel).Error; err != nil {
		return err
	}

	template.CreatedAt = templateModel.CreatedAt
	return nil
}

// Update 템플릿 업데이트
func (r *MailTemplateRepositoryImpl) Update(ctx context.Context, template *entity.MailTemplate) error {
	return r.db.WithContext(ctx).Save(mapper.MailTemplateToModel(template)).Error
}

// Delete 템플릿 삭제
func (r *MailTemplateRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.MailTemplateModel{}, "id = ?", id).Error
}
