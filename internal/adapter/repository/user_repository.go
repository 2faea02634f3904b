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

type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 사용자 레포지토리 구현체 생성
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// FindByID ID로 사용자 조회
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).Preload("Role").First(&userModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // 사용자를 찾지 못함
		}
		return nil, err
	}

	return mapper.UserFromModel(&userModel), nil
}

// FindByUsername 로그인 식별자로 사용자 조회
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).Preload("Role").Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.UserFromModel(&userModel), nil
}

// FindByResetToken 비밀번호 재설정 토큰으로 사용자 조회
func (r *UserRepositoryImpl) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).Preload("Role").Where("reset_token = ?", token).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.UserFromModel(&userModel), nil
}

// List 사용자 목록 조회
func (r *UserRepositoryImpl) List(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	var userModels []model.UserModel
	var total int64

	query := r.db.WithContext(ctx).Model(&model.UserModel{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Role").Order("created_at DESC").Offset(offset).Limit(limit).Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	return mapper.UsersFromModels(userModels), total, nil
}

// Create 새 사용자 생성
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	userModel := mapper.UserToModel(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}

	user.CreatedAt = userModel.CreatedAt
	return nil
}

// Update 사용자 정보 업데이트
func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	userModel := mapper.UserToModel(user)

	// Select로 nil 포인터 필드도 함께 반영합니다. 재설정 토큰 해제에 필요합니다
	return r.db.WithContext(ctx).Model(&model.UserModel{ID: user.ID}).
		Select("Username", "Name", "Email", "Password", "Salt", "RoleID", "Status",
			"LastLoginAt", "PasswordChangedAt", "ResetToken", "ResetTokenExpiresAt").
		Updates(userModel).Error
}

// Delete 사용자 삭제
func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id).Error
}
