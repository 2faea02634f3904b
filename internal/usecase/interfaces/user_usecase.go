package interfaces

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
)

// UserUseCase 사용자 관리를 담당하는 유스케이스 인터페이스
type UserUseCase interface {
	// Create 새 사용자를 생성하고 임시 비밀번호를 이메일로 안내
	Create(ctx context.Context, params dto.CreateUserParams) (*entity.User, error)

	// Get ID로 사용자 조회
	Get(ctx context.Context, id string) (*entity.User, error)

	// List 사용자 목록 조회
	List(ctx context.Context, page, limit int) ([]*entity.User, int64, error)

	// Update 사용자 기본 정보 수정
	Update(ctx context.Context, params dto.UpdateUserParams) (*entity.User, error)

	// ChangeRole 사용자 역할 변경. 기존 세션은 모두 철회됩니다
	ChangeRole(ctx context.Context, userID, roleName, actorID string) error

	// ChangeStatus 계정 상태 변경. 비활성화 시 기존 세션은 모두 철회됩니다
	ChangeStatus(ctx context.Context, userID, status, actorID string) error

	// Delete 사용자 삭제
	Delete(ctx context.Context, userID, actorID string) error
}
