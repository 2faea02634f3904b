package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/http/middleware"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// stubTokenUseCase lets each test script the validation outcome.
type stubTokenUseCase struct {
	validate func(accessToken string) (*entity.User, error)
}

func (s *stubTokenUseCase) GenerateAccessToken(ctx context.Context, user *entity.User) (string, error) {
	return "", nil
}

func (s *stubTokenUseCase) ValidateAccessToken(ctx context.Context, accessToken string) (*entity.User, error) {
	return s.validate(accessToken)
}

func (s *stubTokenUseCase) RevokeAccessToken(ctx context.Context, accessToken string) error {
	return nil
}

func (s *stubTokenUseCase) IssueInitial(ctx context.Context, user *entity.User, accessToken string) (string, error) {
	return "", nil
}

func (s *stubTokenUseCase) Rotate(ctx context.Context, presentedSecret string) (*dto.RotationResult, error) {
	return nil, nil
}

func (s *stubTokenUseCase) ResolveSession(ctx context.Context, presentedSecret string) (*entity.User, error) {
	return nil, nil
}

func (s *stubTokenUseCase) Revoke(ctx context.Context, presentedSecret string) (bool, error) {
	return false, nil
}

func (s *stubTokenUseCase) RevokeAllForUser(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func performRequest(t *testing.T, stub *stubTokenUseCase, authHeader string, extra ...echo.MiddlewareFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	authMiddleware := middleware.NewJWTAuthMiddleware(stub, zap.NewNop())

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	wrapped := handler
	for i := len(extra) - 1; i >= 0; i-- {
		wrapped = extra[i](wrapped)
	}
	wrapped = authMiddleware.Handle()(wrapped)

	require.NoError(t, wrapped(c))
	return rec
}

func TestJWTAuthMiddleware(t *testing.T) {
	activeUser := &entity.User{
		ID:       "usr000000001",
		Username: "hong.gildong",
		Name:     "홍길동",
		RoleName: entity.RoleRecruiter,
		Status:   entity.AccountStatusActive,
	}

	t.Run("missing header", func(t *testing.T) {
		stub := &stubTokenUseCase{validate: func(string) (*entity.User, error) {
			t.Fatal("validation must not run without a header")
			return nil, nil
		}}

		rec := performRequest(t, stub, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrMissingToken)
	})

	t.Run("malformed authorization header", func(t *testing.T) {
		stub := &stubTokenUseCase{validate: func(string) (*entity.User, error) {
			t.Fatal("validation must not run on a malformed header")
			return nil, nil
		}}

		rec := performRequest(t, stub, "Basic abc123")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrMalformedToken)
	})

	t.Run("expired token", func(t *testing.T) {
		stub := &stubTokenUseCase{validate: func(string) (*entity.User, error) {
			return nil, apperrors.NewAppError(apperrors.ErrTokenExpired, "액세스 토큰이 만료되었습니다", nil)
		}}

		rec := performRequest(t, stub, "Bearer some.expired.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrTokenExpired)
	})

	t.Run("deactivated account", func(t *testing.T) {
		stub := &stubTokenUseCase{validate: func(string) (*entity.User, error) {
			return nil, apperrors.NewAppError(apperrors.ErrAccountDeactivated, "비활성화된 계정입니다", nil)
		}}

		rec := performRequest(t, stub, "Bearer some.valid.token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrAccountDeactivated)
	})

	t.Run("valid token enriches the context and passes through", func(t *testing.T) {
		stub := &stubTokenUseCase{validate: func(accessToken string) (*entity.User, error) {
			assert.Equal(t, "good.access.token", accessToken)
			return activeUser, nil
		}}

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good.access.token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		authMiddleware := middleware.NewJWTAuthMiddleware(stub, zap.NewNop())
		handler := authMiddleware.Handle()(func(c echo.Context) error {
			assert.Equal(t, activeUser.ID, c.Get(middleware.UserIDKey))
			assert.Equal(t, activeUser.RoleName, c.Get(middleware.UserRoleKey))
			assert.Equal(t, activeUser, c.Get(middleware.UserKey))
			return c.String(http.StatusOK, "ok")
		})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequireRoles(t *testing.T) {
	user := &entity.User{
		ID:       "usr000000001",
		RoleName: entity.RoleRecruiter,
		Status:   entity.AccountStatusActive,
	}
	stub := &stubTokenUseCase{validate: func(string) (*entity.User, error) {
		return user, nil
	}}

	t.Run("allowed role passes", func(t *testing.T) {
		rec := performRequest(t, stub, "Bearer token", middleware.RequireRoles(entity.RoleRecruiter))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		rec := performRequest(t, stub, "Bearer token", middleware.RequireRoles(entity.RoleAdmin))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apperrors.ErrForbidden)
	})
}
