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

type RefreshTokenRepositoryImpl struct {
	db *gorm.DB
}

// NewRefreshTokenRepository 리프레시 토큰 저장소 구현체 생성
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &RefreshTokenRepositoryImpl{db: db}
}

// FindByID ID로 토큰 조회
func (r *RefreshTokenRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshTokenModel

	if err := r.db.WithContext(ctx).First(&tokenModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // 토큰을 찾지 못함
		}
		return nil, err
	}

	return mapper.RefreshTokenFromModel(&tokenModel), nil
}

// FindByToken 시크릿 값으로 토큰 조회
func (r *RefreshTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	var tokenModel model.RefreshTokenModel

	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.RefreshTokenFromModel(&tokenModel), nil
}

// Create 새 토큰 생성
func (r *RefreshTokenRepositoryImpl) Create(ctx context.Context, token *entity.RefreshToken) error {
	tokenModel := mapper.RefreshTokenToModel(token)

	if err := r.db.WithContext(ctx).Create(tokenModel).Error; err != nil {
		return err
	}

	// ID와 생성 시간이 DB에서 생성된 경우 엔티티에 반영
	token.ID = tokenModel.ID
	token.CreatedAt = tokenModel.CreatedAt
	return nil
}

// RevokeIfActive 철회되지 않은 경우에만 조건부로 철회합니다.
// RowsAffected가 0이면 이미 철회된 것으로 false를 반환합니다.
func (r *RefreshTokenRepositoryImpl) RevokeIfActive(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("id = ? AND is_revoked = ?", id, false).
		Updates(map[string]interface{}{
			"is_revoked": true,
			"revoked_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// RevokeFamily 루트와 루트를 가리키는 모든 자손 토큰을 단일 쿼리로 철회합니다
func (r *RefreshTokenRepositoryImpl) RevokeFamily(ctx context.Context, rootID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("(id = ? OR parent_token_id = ?) AND is_revoked = ?", rootID, rootID, false).
		Updates(map[string]interface{}{
			"is_revoked": true,
			"revoked_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// RevokeAllByUserID 사용자의 모든 토큰 철회
func (r *RefreshTokenRepositoryImpl) RevokeAllByUserID(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RefreshTokenModel{}).
		Where("user_id = ? AND is_revoked = ?", userID, false).
		Updates(map[string]interface{}{
			"is_revoked": true,
			"revoked_at": time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// DeleteExpired 보존 기한이 지난 토큰을 하드 삭제합니다
func (r *RefreshTokenRepositoryImpl) DeleteExpired(ctx context.Context, activeBefore, revokedBefore time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("(is_revoked = ? AND created_at < ?) OR (is_revoked = ? AND revoked_at < ?)",
			false, activeBefore, true, revokedBefore).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
