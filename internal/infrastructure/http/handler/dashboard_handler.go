package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// DashboardHandler 대시보드 엔드포인트 핸들러
type DashboardHandler struct {
	logger           *zap.Logger
	dashboardUseCase interfaces.DashboardUseCase
}

// NewDashboardHandler 새 대시보드 핸들러 생성
func NewDashboardHandler(logger *zap.Logger, dashboardUC interfaces.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		logger:           logger,
		dashboardUseCase: dashboardUC,
	}
}

// StatusSummary 기간별 잡오더/제안 상태 집계 조회.
// from/to 쿼리 파라미터는 RFC3339 날짜이며 생략 시 최근 30일을 조회합니다.
func (h *DashboardHandler) StatusSummary(c echo.Context) error {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "from 날짜 형식이 올바르지 않습니다"})
		}
		from = parsed
	}

	if raw := c.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "to 날짜 형식이 올바르지 않습니다"})
		}
		to = parsed
	}

	summary, err := h.dashboardUseCase.StatusSummary(c.Request().Context(), from, to)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, summary)
}
