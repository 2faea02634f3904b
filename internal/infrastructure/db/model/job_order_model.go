package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JobOrderModel 잡오더 데이터베이스 모델
type JobOrderModel struct {
	ID          string          `gorm:"type:char(12);primaryKey" json:"id"`
	ClientID    string          `gorm:"type:char(12);index;not null" json:"client_id"`
	CountryCode string          `gorm:"type:char(2);index" json:"country_code"`
	Title       string          `gorm:"size:250;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Positions   int             `gorm:"not null;default:1" json:"positions"`
	MinRate     decimal.Decimal `gorm:"type:numeric(12,2)" json:"min_rate"`
	MaxRate     decimal.Decimal `gorm:"type:numeric(12,2)" json:"max_rate"`
	Currency    string          `gorm:"type:char(3);default:'USD'" json:"currency"`
	Status      string          `gorm:"size:20;not null;default:'OPEN';index" json:"status"`
	OpenedAt    time.Time       `json:"opened_at"`
	TargetDate  *time.Time      `json:"target_date,omitempty"`
	CreatedByID string          `gorm:"type:char(12);index" json:"created_by_id"`

	// 메타데이터 필드
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// 관계 필드
	Proposals []ProposalModel `gorm:"foreignKey:JobOrderID" json:"proposals,omitempty"`
}

// TableName 테이블 이름 지정
func (JobOrderModel) TableName() string {
	return "job_orders"
}
