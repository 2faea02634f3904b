package constants

// Redis 키 접두사
const (
	// RevokedTokenPrefix 폐기된 액세스 토큰 기록용 키 접두사
	RevokedTokenPrefix = "revoked_token:"
)

// 토큰 관련 기본값
const (
	// AccessTokenExpiry 액세스 토큰 기본 만료 시간 (분)
	AccessTokenExpiry = 5

	// RefreshTokenExpiryDays 리프레시 토큰 기본 만료 기간 (일)
	RefreshTokenExpiryDays = 7

	// RevokedTokenRetentionDays 철회된 토큰의 감사용 보존 기간 (일)
	RevokedTokenRetentionDays = 30

	// ExpiredTokenGraceDays 만료 토큰 삭제 전 유예 기간 (일)
	ExpiredTokenGraceDays = 1
)
