package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// LoginActivityRepository 로그인 이력 저장소 인터페이스
type LoginActivityRepository interface {
	// Create 새 로그인 이력 생성
	Create(ctx context.Context, activity *entity.LoginActivity) error

	// ListByUserID 사용자 ID로 로그인 이력 조회
	ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.LoginActivity, int64, error)
}
