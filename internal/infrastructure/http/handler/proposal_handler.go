package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// ProposalHandler 후보자 제안 엔드포인트 핸들러
type ProposalHandler struct {
	logger          *zap.Logger
	proposalUseCase interfaces.ProposalUseCase
}

// NewProposalHandler 새 제안 핸들러 생성
func NewProposalHandler(logger *zap.Logger, proposalUC interfaces.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{
		logger:          logger,
		proposalUseCase: proposalUC,
	}
}

// ProposalRequest 제안 등록 요청 본문
type ProposalRequest struct {
	JobOrderID     string          `json:"jobOrderId" validate:"required"`
	CandidateName  string          `json:"candidateName" validate:"required"`
	CandidateEmail string          `json:"candidateEmail" validate:"omitempty,email"`
	ExpectedRate   decimal.Decimal `json:"expectedRate"`
	Currency       string          `json:"currency" validate:"omitempty,len=3"`
	Notes          string          `json:"notes"`
}

// proposalResponse 제안 응답
type proposalResponse struct {
	ID             string          `json:"id"`
	JobOrderID     string          `json:"jobOrderId"`
	CandidateName  string          `json:"candidateName"`
	CandidateEmail string          `json:"candidateEmail"`
	ExpectedRate   decimal.Decimal `json:"expectedRate"`
	Currency       string          `json:"currency"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	ProposedByID   string          `json:"proposedById"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func toProposalResponse(proposal *entity.Proposal) proposalResponse {
	return proposalResponse{
		ID:             proposal.ID,
		JobOrderID:     proposal.JobOrderID,
		CandidateName:  proposal.CandidateName,
		CandidateEmail: proposal.CandidateEmail,
		ExpectedRate:   proposal.ExpectedRate,
		Currency:       proposal.Currency,
		Status:         proposal.Status,
		Notes:          proposal.Notes,
		ProposedByID:   proposal.ProposedByID,
		CreatedAt:      proposal.CreatedAt,
	}
}

// Create 제안 등록
func (h *ProposalHandler) Create(c echo.Context) error {
	var req ProposalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "필수 항목을 확인해 주세요"})
	}

	proposerID, _ := c.Get(middleware.UserIDKey).(string)

	proposal := &entity.Proposal{
		JobOrderID:     req.JobOrderID,
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		ExpectedRate:   req.ExpectedRate,
		Currency:       req.Currency,
		Notes:          req.Notes,
		ProposedByID:   proposerID,
	}

	created, err := h.proposalUseCase.Create(c.Request().Context(), proposal)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, toProposalResponse(created))
}

// Get 제안 단건 조회
func (h *ProposalHandler) Get(c echo.Context) error {
	proposal, err := h.proposalUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toProposalResponse(proposal))
}

// List 제안 목록 조회. jobOrderId/status 쿼리 필터를 지원합니다
func (h *ProposalHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	proposals, total, err := h.proposalUseCase.List(
		c.Request().Context(),
		c.QueryParam("jobOrderId"),
		c.QueryParam("status"),
		page, limit,
	)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]proposalResponse, 0, len(proposals))
	for _, proposal := range proposals {
		items = append(items, toProposalResponse(proposal))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// ChangeStatus 제안 상태 전이
func (h *ProposalHandler) ChangeStatus(c echo.Context) error {
	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "상태 값은 필수입니다"})
	}

	if err := h.proposalUseCase.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "제안 상태가 변경되었습니다"})
}

// Delete 제안 삭제
func (h *ProposalHandler) Delete(c echo.Context) error {
	if err := h.proposalUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "제안이 삭제되었습니다"})
}
