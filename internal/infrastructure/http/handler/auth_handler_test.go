package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/handler"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// stubAuthUseCase scripts each endpoint's outcome per test.
type stubAuthUseCase struct {
	login          func(params dto.LoginParams) (*dto.LoginResult, error)
	renew          func(secret string) (*dto.LoginResult, error)
	logout         func(secret, accessToken string) error
	changePassword func(params dto.ChangePasswordParams) error
	forgotPassword func(email string) error
	resetPassword  func(params dto.ResetPasswordParams) error
}

func (s *stubAuthUseCase) Login(ctx context.Context, params dto.LoginParams) (*dto.LoginResult, error) {
	return s.login(params)
}

func (s *stubAuthUseCase) RenewToken(ctx context.Context, presentedSecret string) (*dto.LoginResult, error) {
	return s.renew(presentedSecret)
}

func (s *stubAuthUseCase) Logout(ctx context.Context, presentedSecret, accessToken string) error {
	return s.logout(presentedSecret, accessToken)
}

func (s *stubAuthUseCase) ChangePassword(ctx context.Context, params dto.ChangePasswordParams) error {
	return s.changePassword(params)
}

func (s *stubAuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	return s.forgotPassword(email)
}

func (s *stubAuthUseCase) ResetPassword(ctx context.Context, params dto.ResetPasswordParams) error {
	return s.resetPassword(params)
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func newEchoContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func refreshCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

var testCookieConfig = handler.CookieConfig{Name: "refreshToken", ExpiryDays: 7, Secure: false}

func loginResult() *dto.LoginResult {
	return &dto.LoginResult{
		AuthToken:     "header.payload.signature",
		RefreshSecret: "a1b2c3d4e5f6",
		User: dto.UserDetails{
			ID:       "usr000000001",
			Name:     "홍길동",
			Username: "hong.gildong",
			Role:     "RECRUITER",
		},
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets the refresh cookie and returns the token pair", func(t *testing.T) {
		stub := &stubAuthUseCase{login: func(params dto.LoginParams) (*dto.LoginResult, error) {
			assert.Equal(t, "hong.gildong", params.Username)
			assert.Equal(t, "secret123", params.Secret)
			return loginResult(), nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/login",
			`{"username":"hong.gildong","secret":"secret123"}`)
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authToken":"header.payload.signature"`)
		assert.Contains(t, rec.Body.String(), `"userdetails"`)
		assert.Contains(t, rec.Body.String(), `"role":"RECRUITER"`)

		cookie := refreshCookie(rec, "refreshToken")
		require.NotNil(t, cookie)
		assert.Equal(t, "a1b2c3d4e5f6", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.Equal(t, "/", cookie.Path)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, 7*24*60*60, cookie.MaxAge)
	})

	t.Run("production cookie is secure and strict", func(t *testing.T) {
		stub := &stubAuthUseCase{login: func(params dto.LoginParams) (*dto.LoginResult, error) {
			return loginResult(), nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub,
			handler.CookieConfig{Name: "refreshToken", ExpiryDays: 7, Secure: true})

		c, rec := newEchoContext(t, http.MethodPost, "/auth/login",
			`{"username":"hong.gildong","secret":"secret123"}`)
		require.NoError(t, h.Login(c))

		cookie := refreshCookie(rec, "refreshToken")
		require.NotNil(t, cookie)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	})

	t.Run("invalid credentials return 400 without a cookie", func(t *testing.T) {
		stub := &stubAuthUseCase{login: func(params dto.LoginParams) (*dto.LoginResult, error) {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidCredentials, "아이디 또는 비밀번호가 올바르지 않습니다", nil)
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/login",
			`{"username":"hong.gildong","secret":"wrong"}`)
		require.NoError(t, h.Login(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrInvalidCredentials)
		assert.Nil(t, refreshCookie(rec, "refreshToken"))
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		stub := &stubAuthUseCase{login: func(params dto.LoginParams) (*dto.LoginResult, error) {
			t.Fatal("usecase must not be called on a validation failure")
			return nil, nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/login", `{"username":"hong.gildong"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_RenewToken(t *testing.T) {
	t.Run("missing cookie returns 400 without touching the store", func(t *testing.T) {
		stub := &stubAuthUseCase{renew: func(secret string) (*dto.LoginResult, error) {
			t.Fatal("renewal must not run without a cookie")
			return nil, nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodGet, "/auth/renew-token", "")
		require.NoError(t, h.RenewToken(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "리프레시 토큰이 없습니다")
	})

	t.Run("success rotates the cookie", func(t *testing.T) {
		stub := &stubAuthUseCase{renew: func(secret string) (*dto.LoginResult, error) {
			assert.Equal(t, "old-secret", secret)
			return loginResult(), nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodGet, "/auth/renew-token", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "old-secret"})
		require.NoError(t, h.RenewToken(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := refreshCookie(rec, "refreshToken")
		require.NotNil(t, cookie)
		assert.Equal(t, "a1b2c3d4e5f6", cookie.Value)
	})

	t.Run("revoked token is downgraded to 400", func(t *testing.T) {
		stub := &stubAuthUseCase{renew: func(secret string) (*dto.LoginResult, error) {
			return nil, apperrors.NewAppError(apperrors.ErrTokenRevoked, "다시 로그인해 주세요", nil)
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodGet, "/auth/renew-token", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "stolen-secret"})
		require.NoError(t, h.RenewToken(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrTokenRevoked)
	})

	t.Run("deactivated account keeps 403", func(t *testing.T) {
		stub := &stubAuthUseCase{renew: func(secret string) (*dto.LoginResult, error) {
			return nil, apperrors.NewAppError(apperrors.ErrAccountDeactivated, "비활성화된 계정입니다", nil)
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodGet, "/auth/renew-token", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "some-secret"})
		require.NoError(t, h.RenewToken(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes both tokens and clears the cookie", func(t *testing.T) {
		var gotSecret, gotAccess string
		stub := &stubAuthUseCase{logout: func(secret, accessToken string) error {
			gotSecret = secret
			gotAccess = accessToken
			return nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/logout", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "live-secret"})
		c.Request().Header.Set(echo.HeaderAuthorization, "Bearer live.access.token")
		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "live-secret", gotSecret)
		assert.Equal(t, "live.access.token", gotAccess)

		cookie := refreshCookie(rec, "refreshToken")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Equal(t, -1, cookie.MaxAge)
	})

	t.Run("no cookie still returns 200", func(t *testing.T) {
		stub := &stubAuthUseCase{logout: func(secret, accessToken string) error {
			assert.Empty(t, secret)
			assert.Empty(t, accessToken)
			return nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/logout", "")
		require.NoError(t, h.Logout(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	t.Run("forwards the session user id", func(t *testing.T) {
		stub := &stubAuthUseCase{changePassword: func(params dto.ChangePasswordParams) error {
			assert.Equal(t, "usr000000001", params.UserID)
			assert.Equal(t, "old password", params.CurrentPassword)
			assert.Equal(t, "new password 123", params.NewPassword)
			return nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/change-password",
			`{"currentPassword":"old password","newPassword":"new password 123"}`)
		c.Set(middleware.UserIDKey, "usr000000001")
		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		stub := &stubAuthUseCase{changePassword: func(params dto.ChangePasswordParams) error {
			t.Fatal("usecase must not be called on a validation failure")
			return nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/change-password",
			`{"currentPassword":"old password","newPassword":"short"}`)
		require.NoError(t, h.ChangePassword(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	stub := &stubAuthUseCase{forgotPassword: func(email string) error {
		assert.Equal(t, "hong@example.com", email)
		return nil
	}}
	h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/forgot-password",
		`{"email":"hong@example.com"}`)
	require.NoError(t, h.ForgotPassword(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	t.Run("invalid token returns 401", func(t *testing.T) {
		stub := &stubAuthUseCase{resetPassword: func(params dto.ResetPasswordParams) error {
			return apperrors.NewAppError(apperrors.ErrMalformedToken, "유효하지 않거나 만료된 재설정 토큰입니다", nil)
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/reset-password",
			`{"token":"bad-token","newPassword":"new password 123"}`)
		require.NoError(t, h.ResetPassword(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		stub := &stubAuthUseCase{resetPassword: func(params dto.ResetPasswordParams) error {
			assert.Equal(t, "good-token", params.Token)
			return nil
		}}
		h := handler.NewAuthHandler(zap.NewNop(), stub, testCookieConfig)

		c, rec := newEchoContext(t, http.MethodPost, "/auth/reset-password",
			`{"token":"good-token","newPassword":"new password 123"}`)
		require.NoError(t, h.ResetPassword(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
