package entity

import (
	"time"
)

// MailTemplate 후보자/고객사 안내 메일 템플릿 도메인 엔티티
type MailTemplate struct {
	ID        string
	Name      string
	Subject   string
	Body      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
