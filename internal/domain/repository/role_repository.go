package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// RoleRepository 역할 저장소 인터페이스
type RoleRepository interface {
	// FindByID ID로 역할 조회
	FindByID(ctx context.Context, id uint) (*entity.Role, error)

	// FindByName 이름으로 역할 조회
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// List 모든 역할 조회
	List(ctx context.Context) ([]*entity.Role, error)

	// Create 새 역할 생성
	Create(ctx context.Context, role *entity.Role) error
}
