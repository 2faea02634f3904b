package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// MailTemplateHandler 메일 템플릿 엔드포인트 핸들러
type MailTemplateHandler struct {
	logger          *zap.Logger
	templateUseCase interfaces.MailTemplateUseCase
}

// NewMailTemplateHandler 새 메일 템플릿 핸들러 생성
func NewMailTemplateHandler(logger *zap.Logger, templateUC interfaces.MailTemplateUseCase) *MailTemplateHandler {
	return &MailTemplateHandler{
		logger:          logger,
		templateUseCase: templateUC,
	}
}

// MailTemplateRequest 템플릿 등록/수정 요청 본문
type MailTemplateRequest struct {
	Name     string `json:"name" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Body     string `json:"body"`
	IsActive bool   `json:"isActive"`
}

// mailTemplateResponse 템플릿 응답
type mailTemplateResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	IsActive bool   `json:"isActive"`
}

func toMailTemplateResponse(template *entity.MailTemplate) mailTemplateResponse {
	return mailTemplateResponse{
		ID:       template.ID,
		Name:     template.Name,
		Subject:  template.Subject,
		Body:     template.Body,
		IsActive: template.IsActive,
	}
}

// Create 템플릿 등록
func (h *MailTemplateHandler) Create(c echo.Context) error {
	var req MailTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "템플릿 이름과 제목은 필수입니다"})
	}

	template := &entity.MailTemplate{
		Name:     req.Name,
		Subject:  req.Subject,
		Body:     req.Body,
		IsActive: req.IsActive,
	}

	created, err := h.templateUseCase.Create(c.Request().Context(), template)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, toMailTemplateResponse(created))
}

// Get 템플릿 단건 조회
func (h *MailTemplateHandler) Get(c echo.Context) error {
	template, err := h.templateUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toMailTemplateResponse(template))
}

// List 템플릿 목록 조회
func (h *MailTemplateHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	templates, total, err := h.templateUseCase.List(c.Request().Context(), page, limit)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]mailTemplateResponse, 0, len(templates))
	for _, template := range templates {
		items = append(items, toMailTemplateResponse(template))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// Update 템플릿 수정
func (h *MailTemplateHandler) Update(c echo.Context) error {
	var req MailTemplateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}

	template := &entity.MailTemplate{
		ID:       c.Param("id"),
		Subject:  req.Subject,
		Body:     req.Body,
		IsActive: req.IsActive,
	}

	updated, err := h.templateUseCase.Update(c.Request().Context(), template)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toMailTemplateResponse(updated))
}

// Delete 템플릿 삭제
func (h *MailTemplateHandler) Delete(c echo.Context) error {
	if err := h.templateUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "템플릿이 삭제되었습니다"})
}
