package interfaces

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// ClientUseCase 고객사 관리를 담당하는 유스케이스 인터페이스
type ClientUseCase interface {
	// Create 새 고객사 등록
	Create(ctx context.Context, client *entity.Client) (*entity.Client, error)

	// Get ID로 고객사 조회
	Get(ctx context.Context, id string) (*entity.Client, error)

	// List 고객사 목록 조회
	List(ctx context.Context, page, limit int) ([]*entity.Client, int64, error)

	// Update 고객사 정보 수정
	Update(ctx context.Context, client *entity.Client) (*entity.Client, error)

	// Delete 고객사 삭제
	Delete(ctx context.Context, id string) error
}

// CountryUseCase 국가 참조 데이터를 담당하는 유스케이스 인터페이스
type CountryUseCase interface {
	// Get 코드로 국가 조회
	Get(ctx context.Context, code string) (*entity.Country, error)

	// List 전체 국가 목록 조회
	List(ctx context.Context) ([]*entity.Country, error)

	// Upsert 국가 정보 등록 또는 갱신
	Upsert(ctx context.Context, country *entity.Country) error
}

// JobOrderUseCase 잡오더 관리를 담당하는 유스케이스 인터페이스
type JobOrderUseCase interface {
	// Create 새 잡오더 등록
	Create(ctx context.Context, jobOrder *entity.JobOrder) (*entity.JobOrder, error)

	// Get ID로 잡오더 조회
	Get(ctx context.Context, id string) (*entity.JobOrder, error)

	// List 고객사/상태 필터로 잡오더 목록 조회
	List(ctx context.Context, clientID, status string, page, limit int) ([]*entity.JobOrder, int64, error)

	// Update 잡오더 정보 수정
	Update(ctx context.Context, jobOrder *entity.JobOrder) (*entity.JobOrder, error)

	// ChangeStatus 잡오더 상태 변경
	ChangeStatus(ctx context.Context, id, status string) error

	// Delete 잡오더 삭제
	Delete(ctx context.Context, id string) error
}

// ProposalUseCase 후보자 제안 관리를 담당하는 유스케이스 인터페이스
type ProposalUseCase interface {
	// Create 열린 잡오더에 후보자 제안 등록
	Create(ctx context.Context, proposal *entity.Proposal) (*entity.Proposal, error)

	// Get ID로 제안 조회
	Get(ctx context.Context, id string) (*entity.Proposal, error)

	// List 잡오더/상태 필터로 제안 목록 조회
	List(ctx context.Context, jobOrderID, status string, page, limit int) ([]*entity.Proposal, int64, error)

	// ChangeStatus 제안 상태 전이. 허용되지 않은 전이는 거부됩니다
	ChangeStatus(ctx context.Context, id, status string) error

	// Delete 제안 삭제
	Delete(ctx context.Context, id string) error
}

// MailTemplateUseCase 안내 메일 템플릿 관리를 담당하는 유스케이스 인터페이스
type MailTemplateUseCase interface {
	// Create 새 템플릿 등록
	Create(ctx context.Context, template *entity.MailTemplate) (*entity.MailTemplate, error)

	// Get ID로 템플릿 조회
	Get(ctx context.Context, id string) (*entity.MailTemplate, error)

	// List 템플릿 목록 조회
	List(ctx context.Context, page, limit int) ([]*entity.MailTemplate, int64, error)

	// Update 템플릿 수정
	Update(ctx context.Context, template *entity.MailTemplate) (*entity.MailTemplate, error)

	// Delete 템플릿 삭제
	Delete(ctx context.Context, id string) error
}
