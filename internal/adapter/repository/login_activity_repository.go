package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type LoginActivityRepositoryImpl struct {
	db *gorm.DB
}

// NewLoginActivityRepository 로그인 이력 레포지토리 구현체 생성
func NewLoginActivityRepository(db *gorm.DB) repository.LoginActivityRepository {
	return &LoginActivityRepositoryImpl{db: db}
}

// Create 새 로그인 이력 생성
func (r *LoginActivityRepositoryImpl) Create(ctx context.Context, activity *entity.LoginActivity) error {
	activityModel := &model.LoginActivityModel{
		UserID:    activity.UserID,
		IP:        activity.IP,
		UserAgent: activity.UserAgent,
		LoginAt:   activity.LoginAt,
	}

	if err := r.db.WithContext(ctx).Create(activityModel).Error; err != nil {
		return err
	}

	activity.ID = activityModel.ID
	return nil
}

// ListByUserID 사용자 ID로 로그인 이력 조회
func (r *LoginActivityRepositoryImpl) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.LoginActivity, int64, error) {
	var activityModels []model.LoginActivityModel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.LoginActivityModel{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("login_at DESC").Offset(offset).Limit(limit).Find(&activityModels).Error; err != nil {
		return nil, 0, err
	}

	activities := make([]*entity.LoginActivity, len(activityModels))
	for i, m := range activityModels {
		activities[i] = &entity.LoginActivity{
			ID:        m.ID,
			UserID:    m.UserID,
			IP:        m.IP,
			UserAgent: m.UserAgent,
			LoginAt:   m.LoginAt,
		}
	}

	return activities, total, nil
}
