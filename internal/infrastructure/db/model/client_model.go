package model

import (
	"time"

	"gorm.io/gorm"
)

// ClientModel 고객사 데이터베이스 모델
type ClientModel struct {
	ID            string `gorm:"type:char(12);primaryKey" json:"id"`
	Name          string `gorm:"size:250;not null" json:"name"`
	ContactPerson string `gorm:"size:100" json:"contact_person"`
	ContactEmail  string `gorm:"size:250" json:"contact_email"`
	ContactPhone  string `gorm:"size:50" json:"contact_phone"`
	CountryCode   string `gorm:"type:char(2);index" json:"country_code"`
	Address       string `gorm:"size:500" json:"address"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`

	// 메타데이터 필드
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// 관계 필드
	JobOrders []JobOrderModel `gorm:"foreignKey:ClientID" json:"job_orders,omitempty"`
}

// TableName 테이블 이름 지정
func (ClientModel) TableName() string {
	return "clients"
}
