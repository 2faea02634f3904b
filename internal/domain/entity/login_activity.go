package entity

import (
	"time"
)

// LoginActivity 사용자 로그인 이력 추적을 위한 도메인 엔티티
type LoginActivity struct {
	ID        uint
	UserID    string
	IP        string
	UserAgent string
	LoginAt   time.Time
}

// NewLoginActivity 새 로그인 이력 생성
func NewLoginActivity(userID, ip, userAgent string) *LoginActivity {
	return &LoginActivity{
		UserID:    userID,
		IP:        ip,
		UserAgent: userAgent,
		LoginAt:   time.Now(),
	}
}
