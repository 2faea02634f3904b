package model

import (
	"time"

	"gorm.io/gorm"
)

// MailTemplateModel 메일 템플릿 데이터베이스 모델
type MailTemplateModel struct {
	ID       string `gorm:"type:char(12);primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Subject  string `gorm:"size:250;not null" json:"subject"`
	Body     string `gorm:"type:text" json:"body"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	// 메타데이터 필드
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 테이블 이름 지정
func (MailTemplateModel) TableName() string {
	return "mail_templates"
}
