package model

import (
	"time"
)

// LoginActivityModel 로그인 이력 데이터베이스 모델
type LoginActivityModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:char(12);index;not null" json:"user_id"`
	IP        string    `gorm:"size:50" json:"ip"`
	UserAgent string    `gorm:"size:250" json:"user_agent"`
	LoginAt   time.Time `gorm:"autoCreateTime;index" json:"login_at"`
}

// TableName 테이블 이름 지정
func (LoginActivityModel) TableName() string {
	return "login_activities"
}
