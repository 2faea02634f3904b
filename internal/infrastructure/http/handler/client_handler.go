package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// ClientHandler 고객사 엔드포인트 핸들러
type ClientHandler struct {
	logger        *zap.Logger
	clientUseCase interfaces.ClientUseCase
}

// NewClientHandler 새 고객사 핸들러 생성
func NewClientHandler(logger *zap.Logger, clientUC interfaces.ClientUseCase) *ClientHandler {
	return &ClientHandler{
		logger:        logger,
		clientUseCase: clientUC,
	}
}

// ClientRequest 고객사 등록/수정 요청 본문
type ClientRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone  string `json:"contactPhone"`
	CountryCode   string `json:"countryCode" validate:"omitempty,len=2"`
	Address       string `json:"address"`
	IsActive      bool   `json:"isActive"`
}

// clientResponse 고객사 응답
type clientResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	CountryCode   string `json:"countryCode"`
	Address       string `json:"address"`
	IsActive      bool   `json:"isActive"`
}

func toClientResponse(client *entity.Client) clientResponse {
	return clientResponse{
		ID:            client.ID,
		Name:          client.Name,
		ContactPerson: client.ContactPerson,
		ContactEmail:  client.ContactEmail,
		ContactPhone:  client.ContactPhone,
		CountryCode:   client.CountryCode,
		Address:       client.Address,
		IsActive:      client.IsActive,
	}
}

func (req *ClientRequest) toEntity() *entity.Client {
	return &entity.Client{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		CountryCode:   req.CountryCode,
		Address:       req.Address,
		IsActive:      req.IsActive,
	}
}

// Create 고객사 등록
func (h *ClientHandler) Create(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "필수 항목을 확인해 주세요"})
	}

	client, err := h.clientUseCase.Create(c.Request().Context(), req.toEntity())
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, toClientResponse(client))
}

// Get 고객사 단건 조회
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.clientUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toClientResponse(client))
}

// List 고객사 목록 조회
func (h *ClientHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	clients, total, err := h.clientUseCase.List(c.Request().Context(), page, limit)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]clientResponse, 0, len(clients))
	for _, client := range clients {
		items = append(items, toClientResponse(client))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// Update 고객사 수정
func (h *ClientHandler) Update(c echo.Context) error {
	var req ClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "필수 항목을 확인해 주세요"})
	}

	updated := req.toEntity()
	updated.ID = c.Param("id")

	client, err := h.clientUseCase.Update(c.Request().Context(), updated)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Delete 고객사 삭제
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clientUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "고객사가 삭제되었습니다"})
}
