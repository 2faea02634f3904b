package errors

// 공통 에러 코드 정의
const (
	// 일반적인 에러 코드
	ErrInternal        = "INTERNAL"
	ErrNotFound        = "NOT_FOUND"
	ErrInvalidArgument = "INVALID_ARGUMENT"
	ErrUnauthenticated = "UNAUTHENTICATED"
	ErrUnauthorized    = "UNAUTHORIZED"
	ErrConflict        = "CONFLICT"
	ErrTimeout         = "TIMEOUT"
	ErrNotImplemented  = "NOT_IMPLEMENTED"
)

// 인증/세션 관련 에러 코드 정의
const (
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrMissingToken       = "MISSING_TOKEN"
	ErrMalformedToken     = "MALFORMED_TOKEN"
	ErrTokenExpired       = "TOKEN_EXPIRED"
	ErrTokenRevoked       = "TOKEN_REVOKED"
	ErrAccountDeactivated = "ACCOUNT_DEACTIVATED"
	ErrForbidden          = "FORBIDDEN"
)
