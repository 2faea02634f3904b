package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// ClientRepository 고객사 저장소 인터페이스
type ClientRepository interface {
	// FindByID ID로 고객사 조회
	FindByID(ctx context.Context, id string) (*entity.Client, error)

	// List 고객사 목록 조회
	List(ctx context.Context, page, limit int) ([]*entity.Client, int64, error)

	// Create 새 고객사 생성
	Create(ctx context.Context, client *entity.Client) error

	// Update 고객사 정보 업데이트
	Update(ctx context.Context, client *entity.Client) error

	// Delete 고객사 삭제
	Delete(ctx context.Context, id string) error
}
