package repository

import (
	"context"
	"errors"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CountryRepositoryImpl struct {
	db *gorm.DB
}

// NewCountryRepository 국가 레포지토리 구현체 생성
func NewCountryRepository(db *gorm.DB) repository.CountryRepository {
	return &CountryRepositoryImpl{db: db}
}

// FindByCode 국가 코드로 조회
func (r *CountryRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Country, error) {
	var countryModel model.CountryModel

	if err := r.db.WithContext(ctx).First(&countryModel, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entity.Country{
		Code:     countryModel.Code,
		Name:     countryModel.Name,
		DialCode: countryModel.DialCode,
	}, nil
}

// List 모든 국가 조회
func (r *CountryRepositoryImpl) List(ctx context.Context) ([]*entity.Country, error) {
	var countryModels []model.CountryModel

	if err := r.db.WithContext(ctx).Order("name").Find(&countryModels).Error; err != nil {
		return nil, err
	}

	countries := make([]*entity.Country, len(countryModels))
	for i, m := range countryModels {
		countries[i] = &entity.Country{
			Code:     m.Code,
			Name:     m.Name,
			DialCode: m.DialCode,
		}
	}
	return countries, nil
}

// Upsert 국가 생성 또는 갱신
func (r *CountryRepositoryImpl) Upsert(ctx context.Context, country *entity.Country) error {
	countryModel := &model.CountryModel{
		Code:     country.Code,
		Name:     country.Name,
		DialCode: country.DialCode,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "dial_code"}),
	}).Create(countryModel).Error
}
