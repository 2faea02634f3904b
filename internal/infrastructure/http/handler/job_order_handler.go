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

// JobOrderHandler 잡오더 엔드포인트 핸들러
type JobOrderHandler struct {
	logger          *zap.Logger
	jobOrderUseCase interfaces.JobOrderUseCase
}

// NewJobOrderHandler 새 잡오더 핸들러 생성
func NewJobOrderHandler(logger *zap.Logger, jobOrderUC interfaces.JobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{
		logger:          logger,
		jobOrderUseCase: jobOrderUC,
	}
}

// JobOrderRequest 잡오더 등록/수정 요청 본문
type JobOrderRequest struct {
	ClientID    string          `json:"clientId" validate:"required"`
	CountryCode string          `json:"countryCode" validate:"omitempty,len=2"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description"`
	Positions   int             `json:"positions"`
	MinRate     decimal.Decimal `json:"minRate"`
	MaxRate     decimal.Decimal `json:"maxRate"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	TargetDate  *time.Time      `json:"targetDate"`
}

// jobOrderResponse 잡오더 응답
type jobOrderResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"clientId"`
	CountryCode string          `json:"countryCode"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Positions   int             `json:"positions"`
	MinRate     decimal.Decimal `json:"minRate"`
	MaxRate     decimal.Decimal `json:"maxRate"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	OpenedAt    time.Time       `json:"openedAt"`
	TargetDate  *time.Time      `json:"targetDate,omitempty"`
	CreatedByID string          `json:"createdById"`
}

func toJobOrderResponse(jobOrder *entity.JobOrder) jobOrderResponse {
	return jobOrderResponse{
		ID:          jobOrder.ID,
		ClientID:    jobOrder.ClientID,
		CountryCode: jobOrder.CountryCode,
		Title:       jobOrder.Title,
		Description: jobOrder.Description,
		Positions:   jobOrder.Positions,
		MinRate:     jobOrder.MinRate,
		MaxRate:     jobOrder.MaxRate,
		Currency:    jobOrder.Currency,
		Status:      jobOrder.Status,
		OpenedAt:    jobOrder.OpenedAt,
		TargetDate:  jobOrder.TargetDate,
		CreatedByID: jobOrder.CreatedByID,
	}
}

// Create 잡오더 등록
func (h *JobOrderHandler) Create(c echo.Context) error {
	var req JobOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "필수 항목을 확인해 주세요"})
	}

	creatorID, _ := c.Get(middleware.UserIDKey).(string)

	jobOrder := &entity.JobOrder{
		ClientID:    req.ClientID,
		CountryCode: req.CountryCode,
		Title:       req.Title,
		Description: req.Description,
		Positions:   req.Positions,
		MinRate:     req.MinRate,
		MaxRate:     req.MaxRate,
		Currency:    req.Currency,
		TargetDate:  req.TargetDate,
		CreatedByID: creatorID,
	}

	created, err := h.jobOrderUseCase.Create(c.Request().Context(), jobOrder)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, toJobOrderResponse(created))
}

// Get 잡오더 단건 조회
func (h *JobOrderHandler) Get(c echo.Context) error {
	jobOrder, err := h.jobOrderUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toJobOrderResponse(jobOrder))
}

// List 잡오더 목록 조회. clientId/status 쿼리 필터를 지원합니다
func (h *JobOrderHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	jobOrders, total, err := h.jobOrderUseCase.List(
		c.Request().Context(),
		c.QueryParam("clientId"),
		c.QueryParam("status"),
		page, limit,
	)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]jobOrderResponse, 0, len(jobOrders))
	for _, jobOrder := range jobOrders {
		items = append(items, toJobOrderResponse(jobOrder))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// Update 잡오더 수정
func (h *JobOrderHandler) Update(c echo.Context) error {
	var req JobOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}

	jobOrder := &entity.JobOrder{
		ID:          c.Param("id"),
		Title:       req.Title,
		Description: req.Description,
		Positions:   req.Positions,
		MinRate:     req.MinRate,
		MaxRate:     req.MaxRate,
		Currency:    req.Currency,
		TargetDate:  req.TargetDate,
	}

	updated, err := h.jobOrderUseCase.Update(c.Request().Context(), jobOrder)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toJobOrderResponse(updated))
}

// ChangeStatus 잡오더 상태 변경
func (h *JobOrderHandler) ChangeStatus(c echo.Context) error {
	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "상태 값은 필수입니다"})
	}

	if err := h.jobOrderUseCase.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "잡오더 상태가 변경되었습니다"})
}

// Delete 잡오더 삭제
func (h *JobOrderHandler) Delete(c echo.Context) error {
	if err := h.jobOrderUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "잡오더가 삭제되었습니다"})
}
