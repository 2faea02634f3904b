package entity

import (
	"time"
)

// RefreshToken 세션 갱신용 리프레시 토큰 도메인 엔티티.
// 회전으로 발급된 토큰은 ParentTokenID가 항상 패밀리 루트를 가리킵니다.
// 루트 토큰은 ParentTokenID가 nil입니다.
type RefreshToken struct {
	ID            uint
	UserID        string
	Token         string // hex 인코딩된 시크릿 값
	AccessToken   string // 함께 발급된 액세스 토큰
	ParentTokenID *uint
	IsRevoked     bool
	RevokedAt     *time.Time
	CreatedAt     time.Time
}

// NewRefreshToken 새 루트 리프레시 토큰 생성
func NewRefreshToken(userID, token, accessToken string) *RefreshToken {
	return &RefreshToken{
		UserID:      userID,
		Token:       token,
		AccessToken: accessToken,
	}
}

// NewChildRefreshToken 회전으로 발급되는 후속 토큰 생성
func NewChildRefreshToken(userID, token, accessToken string, rootID uint) *RefreshToken {
	return &RefreshToken{
		UserID:        userID,
		Token:         token,
		AccessToken:   accessToken,
		ParentTokenID: &rootID,
	}
}

// RootID 이 토큰이 속한 패밀리의 루트 ID를 반환합니다
func (t *RefreshToken) RootID() uint {
	if t.ParentTokenID != nil {
		return *t.ParentTokenID
	}
	return t.ID
}

// IsExpired 생성 시점 기준으로 토큰이 만료되었는지 확인.
// 만료 여부는 철회 상태와 무관하게 판정됩니다.
func (t *RefreshToken) IsExpired(expiryDays int) bool {
	return time.Now().After(t.CreatedAt.AddDate(0, 0, expiryDays))
}

// Revoke 토큰 철회 처리
func (t *RefreshToken) Revoke() {
	now := time.Now()
	t.IsRevoked = true
	t.RevokedAt = &now
}
