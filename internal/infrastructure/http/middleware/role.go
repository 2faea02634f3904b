package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// RequireRoles는 허용된 역할 목록에 포함된 사용자만 통과시키는 미들웨어를 반환합니다.
// JWTAuthMiddleware가 먼저 실행되어 컨텍스트에 역할이 저장되어 있어야 합니다.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleName, _ := c.Get(UserRoleKey).(string)
			if _, ok := allowed[roleName]; !ok {
				status, body := apperrors.ToHTTPResponse(
					apperrors.NewAppError(apperrors.ErrForbidden,
						fmt.Sprintf("필요한 역할: %s", strings.Join(roles, ", ")), nil))
				return c.JSON(status, body)
			}

			return next(c)
		}
	}
}
