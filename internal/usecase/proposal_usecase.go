package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// ProposalStatusTemplateName 제안 상태 변경 안내 메일 템플릿 이름
const ProposalStatusTemplateName = "proposal-status-changed"

// ProposalUseCase 후보자 제안 관리 유스케이스 구현체
type ProposalUseCase struct {
	logger             *zap.Logger
	proposalRepository repository.ProposalRepository
	jobOrderRepository repository.JobOrderRepository
	templateRepository repository.MailTemplateRepository
	mailRepository     repository.MailRepository
}

// NewProposalUseCase 새 제안 유스케이스 생성
func NewProposalUseCase(
	logger *zap.Logger,
	proposalRepo repository.ProposalRepository,
	jobOrderRepo repository.JobOrderRepository,
	templateRepo repository.MailTemplateRepository,
	mailRepo repository.MailRepository,
) interfaces.ProposalUseCase {
	return &ProposalUseCase{
		logger:             logger,
		proposalRepository: proposalRepo,
		jobOrderRepository: jobOrderRepo,
		templateRepository: templateRepo,
		mailRepository:     mailRepo,
	}
}

// Create 열린 잡오더에 후보자 제안 등록
func (uc *ProposalUseCase) Create(ctx context.Context, proposal *entity.Proposal) (*entity.Proposal, error) {
	if proposal.CandidateName == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "후보자 이름은 필수입니다", nil)
	}

	if proposal.CandidateEmail != "" && !isValidEmail(proposal.CandidateEmail) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 이메일 형식입니다", nil)
	}

	// 잡오더 상태 확인
	jobOrder, err := uc.jobOrderRepository.FindByID(ctx, proposal.JobOrderID)
	if err != nil {
		uc.logger.Error("잡오더 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("잡오더 조회 실패: %w", err)
	}

	if jobOrder == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "잡오더를 찾을 수 없습니다", nil)
	}

	if !jobOrder.IsOpen() {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "열려 있지 않은 잡오더에는 제안할 수 없습니다", nil)
	}

	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}
	proposal.ID = id
	proposal.Status = entity.ProposalStatusSubmitted

	if err := uc.proposalRepository.Create(ctx, proposal); err != nil {
		uc.logger.Error("제안 생성 실패", zap.Error(err))
		return nil, fmt.Errorf("제안 생성 실패: %w", err)
	}

	return proposal, nil
}

// Get ID로 제안 조회
func (uc *ProposalUseCase) Get(ctx context.Context, id string) (*entity.Proposal, error) {
	proposal, err := uc.proposalRepository.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("제안 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("제안 조회 실패: %w", err)
	}

	if proposal == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "제안을 찾을 수 없습니다", nil)
	}

	return proposal, nil
}

// List 잡오더/상태 필터로 제안 목록 조회
func (uc *ProposalUseCase) List(ctx context.Context, jobOrderID, status string, page, limit int) ([]*entity.Proposal, int64, error) {
	return uc.proposalRepository.List(ctx, jobOrderID, status, page, limit)
}

// ChangeStatus 제안 상태 전이. 허용되지 않은 전이는 거부됩니다
func (uc *ProposalUseCase) ChangeStatus(ctx context.Context, id, status string) error {
	proposal, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}

	if proposal.Status == status {
		return nil
	}

	if !proposal.CanTransitionTo(status) {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument,
			fmt.Sprintf("%s 상태에서 %s 상태로 전이할 수 없습니다", proposal.Status, status), nil)
	}

	previousStatus := proposal.Status
	proposal.Status = status

	if err := uc.proposalRepository.Update(ctx, proposal); err != nil {
		uc.logger.Error("제안 상태 변경 실패", zap.Error(err))
		return fmt.Errorf("제안 상태 변경 실패: %w", err)
	}

	// 후보자 안내 메일은 응답을 지연시키지 않도록 비동기로 처리
	if proposal.CandidateEmail != "" {
		go uc.notifyStatusChanged(context.Background(), proposal, previousStatus)
	}

	return nil
}

// Delete 제안 삭제
func (uc *ProposalUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.proposalRepository.Delete(ctx, id); err != nil {
		uc.logger.Error("제안 삭제 실패", zap.Error(err))
		return fmt.Errorf("제안 삭제 실패: %w", err)
	}

	return nil
}

// notifyStatusChanged 등록된 템플릿이 있으면 후보자에게 상태 변경 안내 메일 발송
func (uc *ProposalUseCase) notifyStatusChanged(ctx context.Context, proposal *entity.Proposal, previousStatus string) {
	template, err := uc.templateRepository.FindByName(ctx, ProposalStatusTemplateName)
	if err != nil {
		uc.logger.Warn("메일 템플릿 조회 실패", zap.Error(err))
		return
	}

	if template == nil || !template.IsActive {
		return
	}

	replacer := strings.NewReplacer(
		"{{candidate_name}}", proposal.CandidateName,
		"{{previous_status}}", previousStatus,
		"{{status}}", proposal.Status,
	)
	subject := replacer.Replace(template.Subject)
	body := replacer.Replace(template.Body)

	if err := uc.mailRepository.SendMail(ctx, proposal.CandidateEmail, subject, body); err != nil {
		uc.logger.Warn("제안 상태 안내 메일 발송 실패",
			zap.String("proposal_id", proposal.ID),
			zap.Error(err))
	}
}
