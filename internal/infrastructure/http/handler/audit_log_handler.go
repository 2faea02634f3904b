package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// AuditLogHandler 감사 로그 조회 엔드포인트 핸들러
type AuditLogHandler struct {
	logger          *zap.Logger
	auditLogUseCase interfaces.AuditLogUseCase
}

// NewAuditLogHandler 새 감사 로그 핸들러 생성
func NewAuditLogHandler(logger *zap.Logger, auditLogUC interfaces.AuditLogUseCase) *AuditLogHandler {
	return &AuditLogHandler{
		logger:          logger,
		auditLogUseCase: auditLogUC,
	}
}

// auditLogResponse 감사 로그 응답
type auditLogResponse struct {
	ID        uint                   `json:"id"`
	UserID    *string                `json:"userId,omitempty"`
	Type      string                 `json:"type"`
	Content   map[string]interface{} `json:"content"`
	CreatedAt time.Time              `json:"createdAt"`
}

func toAuditLogResponse(log *entity.AuditLog) auditLogResponse {
	return auditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Type:      string(log.Type),
		Content:   log.Content,
		CreatedAt: log.CreatedAt,
	}
}

// Search 검색 조건으로 감사 로그 조회.
// userId/types/from/to 쿼리 파라미터를 지원합니다.
func (h *AuditLogHandler) Search(c echo.Context) error {
	page, limit := pagination(c)

	var userID *string
	if raw := c.QueryParam("userId"); raw != "" {
		userID = &raw
	}

	var logTypes []entity.AuditLogType
	if raw := c.QueryParam("types"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			logTypes = append(logTypes, entity.AuditLogType(strings.TrimSpace(t)))
		}
	}

	var startDate, endDate *time.Time
	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "from 날짜 형식이 올바르지 않습니다"})
		}
		startDate = &parsed
	}
	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "to 날짜 형식이 올바르지 않습니다"})
		}
		endDate = &parsed
	}

	logs, total, err := h.auditLogUseCase.Search(c.Request().Context(), userID, logTypes, startDate, endDate, page, limit)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]auditLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, toAuditLogResponse(log))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// ListByUser 사용자 ID로 감사 로그 조회
func (h *AuditLogHandler) ListByUser(c echo.Context) error {
	page, limit := pagination(c)

	logs, total, err := h.auditLogUseCase.ListByUserID(c.Request().Context(), c.Param("id"), page, limit)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]auditLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, toAuditLogResponse(log))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}
