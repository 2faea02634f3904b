package entity

import (
	"time"
)

// Client 채용 의뢰 고객사 도메인 엔티티
type Client struct {
	ID            string
	Name          string
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
	CountryCode   string
	Address       string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
