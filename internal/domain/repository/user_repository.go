package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// UserRepository 사용자 엔티티 관련 저장소 인터페이스
type UserRepository interface {
	// FindByID ID로 사용자 조회
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername 로그인 식별자로 사용자 조회
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByResetToken 비밀번호 재설정 토큰으로 사용자 조회
	FindByResetToken(ctx context.Context, token string) (*entity.User, error)

	// List 사용자 목록 조회
	List(ctx context.Context, page, limit int) ([]*entity.User, int64, error)

	// Create 새 사용자 생성
	Create(ctx context.Context, user *entity.User) error

	// Update 사용자 정보 업데이트
	Update(ctx context.Context, user *entity.User) error

	// Delete 사용자 삭제
	Delete(ctx context.Context, id string) error
}
