package dto

import (
	"time"
)

// StatusSummaryResult 기간별 잡오더/제안 상태 집계 결과
type StatusSummaryResult struct {
	From      time.Time        `json:"from"`
	To        time.Time        `json:"to"`
	JobOrders map[string]int64 `json:"jobOrders"`
	Proposals map[string]int64 `json:"proposals"`
}
