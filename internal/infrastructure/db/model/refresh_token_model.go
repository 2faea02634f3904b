package model

import (
	"time"
)

// RefreshTokenModel 리프레시 토큰 데이터베이스 모델.
// ParentTokenID는 패밀리 루트를 가리키며 루트 토큰은 nil입니다.
// 보존 기한 경과 시 하드 삭제되므로 소프트 삭제 필드를 두지 않습니다.
type RefreshTokenModel struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string     `gorm:"type:char(12);index;not null" json:"user_id"`
	Token         string     `gorm:"size:64;not null;uniqueIndex" json:"token"` // hex 인코딩된 시크릿
	AccessToken   string     `gorm:"type:text" json:"access_token"`
	ParentTokenID *uint      `gorm:"index" json:"parent_token_id,omitempty"`
	IsRevoked     bool       `gorm:"not null;default:false;index" json:"is_revoked"`
	RevokedAt     *time.Time `json:"revoked_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName 테이블 이름 지정
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
