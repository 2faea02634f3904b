package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// 잡오더 상태 값
const (
	JobOrderStatusOpen      = "OPEN"
	JobOrderStatusOnHold    = "ON_HOLD"
	JobOrderStatusFilled    = "FILLED"
	JobOrderStatusCancelled = "CANCELLED"
)

// JobOrder 고객사 채용 의뢰 도메인 엔티티
type JobOrder struct {
	ID          string
	ClientID    string
	CountryCode string
	Title       string
	Description string
	Positions   int
	MinRate     decimal.Decimal
	MaxRate     decimal.Decimal
	Currency    string
	Status      string
	OpenedAt    time.Time
	TargetDate  *time.Time
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOpen 잡오더가 제안 가능한 상태인지 확인
func (j *JobOrder) IsOpen() bool {
	return j.Status == JobOrderStatusOpen
}
