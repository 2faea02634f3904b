package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// MailTemplateUseCase 안내 메일 템플릿 유스케이스 구현체
type MailTemplateUseCase struct {
	logger             *zap.Logger
	templateRepository repository.MailTemplateRepository
}

// NewMailTemplateUseCase 새 메일 템플릿 유스케이스 생성
func NewMailTemplateUseCase(
	logger *zap.Logger,
	templateRepo repository.MailTemplateRepository,
) interfaces.MailTemplateUseCase {
	return &MailTemplateUseCase{
		logger:             logger,
		templateRepository: templateRepo,
	}
}

// Create 새 템플릿 등록
func (uc *MailTemplateUseCase) Create(ctx context.Context, template *entity.MailTemplate) (*entity.MailTemplate, error) {
	if template.Name == "" || template.Subject == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "템플릿 이름과 제목은 필수입니다", nil)
	}

	existing, err := uc.templateRepository.FindByName(ctx, template.Name)
	if err != nil {
		uc.logger.Error("템플릿 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("템플릿 조회 실패: %w", err)
	}

	if existing != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConflict, "이미 등록된 템플릿 이름입니다", nil)
	}

	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}
	template.ID = id
	template.IsActive = true

	if err := uc.templateRepository.Create(ctx, template); err != nil {
		uc.logger.Error("템플릿 생성 실패", zap.Error(err))
		return nil, fmt.Errorf("템플릿 생성 실패: %w", err)
	}

	return template, nil
}

// Get ID로 템플릿 조회
func (uc *MailTemplateUseCase) Get(ctx context.Context, id string) (*entity.MailTemplate, error) {
	template, err := uc.templateRepository.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("템플릿 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("템플릿 조회 실패: %w", err)
	}

	if template == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "템플릿을 찾을 수 없습니다", nil)
	}

	return template, nil
}

// List 템플릿 목록 조회
func (uc *MailTemplateUseCase) List(ctx context.Context, page, limit int) ([]*entity.MailTemplate, int64, error) {
	return uc.templateRepository.List(ctx, page, limit)
}

// Update 템플릿 수정
func (uc *MailTemplateUseCase) Update(ctx context.Context, template *entity.MailTemplate) (*entity.MailTemplate, error) {
	existing, err := uc.Get(ctx, template.ID)
	if err != nil {
		return nil, err
	}

	if template.Subject != "" {
		existing.Subject = template.Subject
	}
	if template.Body != "" {
		existing.Body = template.Body
	}
	existing.IsActive = template.IsActive

	if err := uc.templateRepository.Update(ctx, existing); err != nil {
		uc.logger.Error("템플릿 수정 실패", zap.Error(err))
		return nil, fmt.Errorf("템플릿 수정 실패: %w", err)
	}

	return existing, nil
}

// Delete 템플릿 삭제
func (uc *MailTemplateUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.templateRepository.Delete(ctx, id); err != nil {
		uc.logger.Error("템플릿 삭제 실패", zap.Error(err))
		return fmt.Errorf("템플릿 삭제 실패: %w", err)
	}

	return nil
}
