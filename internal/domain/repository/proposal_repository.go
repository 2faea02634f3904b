package repository

import (
	"context"
	"time"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// ProposalRepository 제안 저장소 인터페이스
type ProposalRepository interface {
	// FindByID ID로 제안 조회
	FindByID(ctx context.Context, id string) (*entity.Proposal, error)

	// List 제안 목록 조회. jobOrderID와 status는 빈 값이면 무시됩니다
	List(ctx context.Context, jobOrderID, status string, page, limit int) ([]*entity.Proposal, int64, error)

	// CountByStatus 기간 내 생성된 제안을 상태별로 집계합니다
	CountByStatus(ctx context.Context, from, to time.Time) (map[string]int64, error)

	// Create 새 제안 생성
	Create(ctx context.Context, proposal *entity.Proposal) error

	// Update 제안 정보 업데이트
	Update(ctx context.Context, proposal *entity.Proposal) error

	// Delete 제안 삭제
	Delete(ctx context.Context, id string) error
}
