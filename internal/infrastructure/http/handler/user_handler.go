package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// UserHandler 사용자 관리 엔드포인트 핸들러
type UserHandler struct {
	logger         *zap.Logger
	userUseCase    interfaces.UserUseCase
	roleRepository repository.RoleRepository
}

// NewUserHandler 새 사용자 핸들러 생성
func NewUserHandler(logger *zap.Logger, userUC interfaces.UserUseCase, roleRepo repository.RoleRepository) *UserHandler {
	return &UserHandler{
		logger:         logger,
		userUseCase:    userUC,
		roleRepository: roleRepo,
	}
}

// CreateUserRequest 사용자 생성 요청 본문
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required"`
}

// UpdateUserRequest 사용자 수정 요청 본문
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

// ChangeRoleRequest 역할 변경 요청 본문
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ChangeStatusRequest 계정 상태 변경 요청 본문
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// userResponse 사용자 응답
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.RoleName,
		Status:   user.Status,
	}
}

// Create 사용자 생성
func (h *UserHandler) Create(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "필수 항목을 확인해 주세요"})
	}

	actorID, _ := c.Get(middleware.UserIDKey).(string)

	user, err := h.userUseCase.Create(c.Request().Context(), dto.CreateUserParams{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		RoleName: req.Role,
		ActorID:  actorID,
	})
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Get 사용자 단건 조회
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.userUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List 사용자 목록 조회
func (h *UserHandler) List(c echo.Context) error {
	page, limit := pagination(c)

	users, total, err := h.userUseCase.List(c.Request().Context(), page, limit)
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	items := make([]userResponse, 0, len(users))
	for _, user := range users {
		items = append(items, toUserResponse(user))
	}

	return c.JSON(http.StatusOK, listResponse{Items: items, Total: total, Page: page, Limit: limit})
}

// Update 사용자 기본 정보 수정
func (h *UserHandler) Update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "이메일 형식을 확인해 주세요"})
	}

	actorID, _ := c.Get(middleware.UserIDKey).(string)

	user, err := h.userUseCase.Update(c.Request().Context(), dto.UpdateUserParams{
		UserID:  c.Param("id"),
		Name:    req.Name,
		Email:   req.Email,
		ActorID: actorID,
	})
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ChangeRole 사용자 역할 변경
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req ChangeRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "역할 이름은 필수입니다"})
	}

	actorID, _ := c.Get(middleware.UserIDKey).(string)

	if err := h.userUseCase.ChangeRole(c.Request().Context(), c.Param("id"), req.Role, actorID); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "역할이 변경되었습니다"})
}

// ChangeStatus 계정 상태 변경
func (h *UserHandler) ChangeStatus(c echo.Context) error {
	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "계정 상태는 필수입니다"})
	}

	actorID, _ := c.Get(middleware.UserIDKey).(string)

	if err := h.userUseCase.ChangeStatus(c.Request().Context(), c.Param("id"), req.Status, actorID); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "계정 상태가 변경되었습니다"})
}

// Delete 사용자 삭제
func (h *UserHandler) Delete(c echo.Context) error {
	actorID, _ := c.Get(middleware.UserIDKey).(string)

	if err := h.userUseCase.Delete(c.Request().Context(), c.Param("id"), actorID); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "사용자가 삭제되었습니다"})
}

// ListRoles 역할 목록 조회
func (h *UserHandler) ListRoles(c echo.Context) error {
	roles, err := h.roleRepository.List(c.Request().Context())
	if err != nil {
		h.logger.Error("역할 목록 조회 실패", zap.Error(err))
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	type roleResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	items := make([]roleResponse, 0, len(roles))
	for _, role := range roles {
		items = append(items, roleResponse{ID: role.ID, Name: role.Name, Description: role.Description})
	}

	return c.JSON(http.StatusOK, items)
}
