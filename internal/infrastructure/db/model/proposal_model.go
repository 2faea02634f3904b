package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProposalModel 제안 데이터베이스 모델
type ProposalModel struct {
	ID             string          `gorm:"type:char(12);primaryKey" json:"id"`
	JobOrderID     string          `gorm:"type:char(12);index;not null" json:"job_order_id"`
	CandidateName  string          `gorm:"size:100;not null" json:"candidate_name"`
	CandidateEmail string          `gorm:"size:250" json:"candidate_email"`
	ExpectedRate   decimal.Decimal `gorm:"type:numeric(12,2)" json:"expected_rate"`
	Currency       string          `gorm:"type:char(3);default:'USD'" json:"currency"`
	Status         string          `gorm:"size:20;not null;default:'SUBMITTED';index" json:"status"`
	Notes          string          `gorm:"type:text" json:"notes"`
	ProposedByID   string          `gorm:"type:char(12);index" json:"proposed_by_id"`

	// 메타데이터 필드
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 테이블 이름 지정
func (ProposalModel) TableName() string {
	return "proposals"
}
