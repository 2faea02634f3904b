package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// CookieConfig 리프레시 토큰 쿠키 설정
type CookieConfig struct {
	Name       string // 쿠키 이름
	ExpiryDays int    // 쿠키 수명 (일)
	Secure     bool   // 프로덕션 환경 여부
}

// AuthHandler 인증 엔드포인트 핸들러
type AuthHandler struct {
	logger       *zap.Logger
	authUseCase  interfaces.AuthUseCase
	cookieConfig CookieConfig
}

// NewAuthHandler 새 인증 핸들러 생성
func NewAuthHandler(logger *zap.Logger, authUC interfaces.AuthUseCase, cookieConfig CookieConfig) *AuthHandler {
	return &AuthHandler{
		logger:       logger,
		authUseCase:  authUC,
		cookieConfig: cookieConfig,
	}
}

// LoginRequest 로그인 요청 본문. username 필드는 이메일을 담습니다
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Secret   string `json:"secret" validate:"required"`
}

// ChangePasswordRequest 비밀번호 변경 요청 본문
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ForgotPasswordRequest 비밀번호 재설정 요청 본문
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest 비밀번호 재설정 완료 요청 본문
type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// tokenResponse 로그인/재발급 성공 응답
type tokenResponse struct {
	AuthToken   string          `json:"authToken"`
	UserDetails dto.UserDetails `json:"userdetails"`
}

// Login 로그인 처리
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "아이디와 비밀번호를 입력해 주세요"})
	}

	result, err := h.authUseCase.Login(c.Request().Context(), dto.LoginParams{
		Username:  req.Username,
		Secret:    req.Secret,
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	h.setRefreshCookie(c, result.RefreshSecret)

	return c.JSON(http.StatusOK, tokenResponse{
		AuthToken:   result.AuthToken,
		UserDetails: result.User,
	})
}

// RenewToken 리프레시 토큰 회전으로 액세스 토큰 재발급
func (h *AuthHandler) RenewToken(c echo.Context) error {
	cookie, err := c.Cookie(h.cookieConfig.Name)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "리프레시 토큰이 없습니다"})
	}

	result, err := h.authUseCase.RenewToken(c.Request().Context(), cookie.Value)
	if err != nil {
		// 재발급 실패는 세션 경계 거부와 달리 400으로 응답합니다
		status, body := apperrors.ToHTTPResponse(err)
		if status == http.StatusUnauthorized {
			status = http.StatusBadRequest
		}
		return c.JSON(status, body)
	}

	h.setRefreshCookie(c, result.RefreshSecret)

	return c.JSON(http.StatusOK, tokenResponse{
		AuthToken:   result.AuthToken,
		UserDetails: result.User,
	})
}

// Logout 로그아웃 처리. 토큰이 없어도 성공으로 응답합니다
func (h *AuthHandler) Logout(c echo.Context) error {
	var refreshSecret string
	if cookie, err := c.Cookie(h.cookieConfig.Name); err == nil {
		refreshSecret = cookie.Value
	}

	accessToken := bearerToken(c)

	if err := h.authUseCase.Logout(c.Request().Context(), refreshSecret, accessToken); err != nil {
		h.logger.Warn("로그아웃 처리 실패", zap.Error(err))
	}

	h.clearRefreshCookie(c)

	return c.JSON(http.StatusOK, map[string]string{"message": "로그아웃되었습니다"})
}

// ChangePassword 비밀번호 변경 처리
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "새 비밀번호는 8자 이상이어야 합니다"})
	}

	userID, _ := c.Get(middleware.UserIDKey).(string)

	err := h.authUseCase.ChangePassword(c.Request().Context(), dto.ChangePasswordParams{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "비밀번호가 변경되었습니다"})
}

// ForgotPassword 비밀번호 재설정 요청 처리. 계정 존재 여부는 노출하지 않습니다
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "유효한 이메일을 입력해 주세요"})
	}

	if err := h.authUseCase.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "재설정 안내 메일을 발송했습니다"})
}

// ResetPassword 비밀번호 재설정 완료 처리
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "요청 본문이 올바르지 않습니다"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "새 비밀번호는 8자 이상이어야 합니다"})
	}

	err := h.authUseCase.ResetPassword(c.Request().Context(), dto.ResetPasswordParams{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		status, body := apperrors.ToHTTPResponse(err)
		return c.JSON(status, body)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "비밀번호가 재설정되었습니다"})
}

// setRefreshCookie 리프레시 토큰 쿠키 설정
func (h *AuthHandler) setRefreshCookie(c echo.Context, secret string) {
	cookie := &http.Cookie{
		Name:     h.cookieConfig.Name,
		Value:    secret,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   h.cookieConfig.ExpiryDays * 24 * 60 * 60,
		Expires:  time.Now().AddDate(0, 0, h.cookieConfig.ExpiryDays),
	}

	if h.cookieConfig.Secure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}

	c.SetCookie(cookie)
}

// clearRefreshCookie 리프레시 토큰 쿠키 제거
func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     h.cookieConfig.Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}

	if h.cookieConfig.Secure {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteStrictMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}

	c.SetCookie(cookie)
}

// bearerToken Authorization 헤더에서 액세스 토큰 추출. 없으면 빈 문자열 반환
func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return parts[1]
	}
	return ""
}
