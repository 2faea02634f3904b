package errors

import "net/http"

// 에러 코드별 HTTP 상태 코드 매핑 테이블
var codeMapping = map[string]int{
	ErrInternal:        http.StatusInternalServerError,
	ErrNotFound:        http.StatusNotFound,
	ErrInvalidArgument: http.StatusBadRequest,
	ErrUnauthenticated: http.StatusUnauthorized,
	ErrUnauthorized:    http.StatusForbidden,
	ErrConflict:        http.StatusConflict,
	ErrTimeout:         http.StatusGatewayTimeout,
	ErrNotImplemented:  http.StatusNotImplemented,

	// 인증 관련 코드: 로그인/재발급 실패는 400, 세션 경계 거부는 401/403
	ErrInvalidCredentials: http.StatusBadRequest,
	ErrMissingToken:       http.StatusUnauthorized,
	ErrMalformedToken:     http.StatusUnauthorized,
	ErrTokenExpired:       http.StatusUnauthorized,
	ErrTokenRevoked:       http.StatusUnauthorized,
	ErrAccountDeactivated: http.StatusForbidden,
	ErrForbidden:          http.StatusForbidden,
}

// GetCodeMapping은 특정 에러 코드에 대한 HTTP 상태 코드를 반환합니다
func GetCodeMapping(code string) int {
	if status, ok := codeMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
