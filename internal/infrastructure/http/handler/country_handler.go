package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// CountryHandler 국가 참조 데이터 엔드포인트 핸들러
type CountryHandler struct {
	logger         *zap.Logger
	countryUseCase interfaces.CountryUseCase
}

// NewCountryHandler 새 국가 핸들러 생성
func NewCountryHandler(logger *zap.Logger, countryUC interfaces.CountryUseCase) *CountryHandler {
	return &CountryHandler{
		logger:         logger,
		countryUseCase: countryUC,
	}
}

// CountryRequest 국가 등록/갱신 요청 본문
type CountryRequest struct {
	Code     string `json:"code" validate:"required,len=2"`
	Name     string `json:"name" validate:"required"`
	DialCode string `json:"dialCode"`
}

// countryResponse 국가 응답
type countryResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	DialCode string `json:"dialCode"`
}

// List 전체 국가 목록 조회
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.countryUseCase.List(c.Request().Context())
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]countryResponse, 0, len(countries))
	for _, country := range countries {
		items = append(items, countryResponse{
			Code:     country.Code,
			Name:     country.Name,
			DialCode: country.DialCode,
		})
	}

	return c.JSON(http.StatusOK, items)
}

// Get 코드로 국가 조회
func (h *CountryHandler) Get(c echo.Context) error {
	country, err := h.countryUseCase.Get(c.Request().Context(), c.Param("code"))
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, countryResponse{
		Code:     country.Code,
		Name:     country.Name,
		DialCode: country.DialCode,
	})
}

// Upsert 국가 등록 또는 갱신
func (h *CountryHandler) Upsert(c echo.Context) error {
	var req CountryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "국가 코드와 이름을 확인해 주세요"})
	}

	country := &entity.Country{
		Code:     req.Code,
		Name:     req.Name,
		DialCode: req.DialCode,
	}

	if err := h.countryUseCase.Upsert(c.Request().Context(), country); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "국가 정보가 저장되었습니다"})
}
