package repository

import (
	"context"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// JobOrderRepository 잡오더 저장소 인터페이스
type JobOrderRepository interface {
	// FindByID ID로 잡오더 조회
	FindByID(ctx context.Context, id string) (*entity.JobOrder, error)

	// List 잡오더 목록 조회. clientID와 status는 빈 값이면 무시됩니다
	List(ctx context.Context, clientID, status string, page, limit int) ([]*entity.JobOrder, int64, error)

	// CountByStatus 기간 내 생성된 잡오더를 상태별로 집계합니다
	CountByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// Create 새 잡오더 생성
	Create(ctx context.Context, jobOrder *entity.JobOrder) error

	// Update 잡오더 정보 업데이트
	Update(ctx context.Context, jobOrder *entity.JobOrder) error

	// Delete 잡오더 삭제
	Delete(ctx context.Context, id string) error
}
