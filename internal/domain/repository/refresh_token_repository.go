package repository

import (
	"context"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// RefreshTokenRepository 리프레시 토큰 저장소 인터페이스
type RefreshTokenRepository interface {
	// FindByID ID로 토큰 조회
	FindByID(ctx context.Context, id uint) (*entity.RefreshToken, error)

	// FindByToken 시크릿 값으로 토큰 조회
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Create 새 토큰 생성
	Create(ctx context.Context, token *entity.RefreshToken) error

	// RevokeIfActive 철회되지 않은 경우에만 조건부로 철회합니다.
	// 이미 철회된 경우 false를 반환하며, 동시 회전 경합 감지에 사용됩니다.
	RevokeIfActive(ctx context.Context, id uint) (bool, error)

	// RevokeFamily 루트와 루트를 가리키는 모든 자손 토큰을 한 번에 철회합니다
	RevokeFamily(ctx context.Context, rootID uint) (int64, error)

	// RevokeAllByUserID 사용자의 모든 토큰 철회. 철회된 개수를 반환합니다
	RevokeAllByUserID(ctx context.Context, userID string) (int64, error)

	// DeleteExpired 보존 기한이 지난 토큰을 삭제합니다.
	// activeBefore 이전에 생성된 비철회 토큰과 revokedBefore 이전에 철회된 토큰이 대상입니다.
	DeleteExpired(ctx context.Context, activeBefore, revokedBefore time.Time) (int64, error)
}
