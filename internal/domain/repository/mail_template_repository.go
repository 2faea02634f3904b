package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// MailTemplateRepository 메일 템플릿 저장소 인터페이스
type MailTemplateRepository interface {
	// FindByID ID로 템플릿 조회
	FindByID(ctx context.Context, id string) (*entity.MailTemplate, error)

	// FindByName 이름으로 템플릿 조회
	FindByName(ctx context.Context, name string) (*entity.MailTemplate, error)

	// List 템플릿 목록 조회
	List(ctx context.Context, page, limit int) ([]*entity.MailTemplate, int64, error)

	// Create 새 템플릿 생성
	Create(ctx context.Context, template *entity.MailTemplate) error

	// Update 템플릿 업데이트
	Update(ctx context.Context, template *entity.MailTemplate) error

	// Delete 템플릿 삭제
	Delete(ctx context.Context, id string) error
}
