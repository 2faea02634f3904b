package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// 제안 상태 값
const (
	ProposalStatusSubmitted   = "SUBMITTED"
	ProposalStatusShortlisted = "SHORTLISTED"
	ProposalStatusInterview   = "INTERVIEW"
	ProposalStatusOffered     = "OFFERED"
	ProposalStatusPlaced      = "PLACED"
	ProposalStatusRejected    = "REJECTED"
	ProposalStatusWithdrawn   = "WITHDRAWN"
)

// proposalStatusTransitions 상태별 허용되는 다음 상태
var proposalStatusTransitions = map[string][]string{
	ProposalStatusSubmitted:   {ProposalStatusShortlisted, ProposalStatusRejected, ProposalStatusWithdrawn},
	ProposalStatusShortlisted: {ProposalStatusInterview, ProposalStatusRejected, ProposalStatusWithdrawn},
	ProposalStatusInterview:   {ProposalStatusOffered, ProposalStatusRejected, ProposalStatusWithdrawn},
	ProposalStatusOffered:     {ProposalStatusPlaced, ProposalStatusRejected, ProposalStatusWithdrawn},
}

// Proposal 후보자를 잡오더에 제안한 기록 도메인 엔티티
type Proposal struct {
	ID             string
	JobOrderID     string
	CandidateName  string
	CandidateEmail string
	ExpectedRate   decimal.Decimal
	Currency       string
	Status         string
	Notes          string
	ProposedByID   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanTransitionTo 현재 상태에서 대상 상태로 전이할 수 있는지 확인
func (p *Proposal) CanTransitionTo(status string) bool {
	for _, next := range proposalStatusTransitions[p.Status] {
		if next == status {
			return true
		}
	}
	return false
}
