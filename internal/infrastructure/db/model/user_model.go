package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel 데이터베이스 ORM 모델
type UserModel struct {
	ID                  string     `gorm:"type:char(12);primaryKey" json:"id"`
	Username            string     `gorm:"size:250;not null;uniqueIndex" json:"username"`
	Name                string     `gorm:"size:100;not null;default:''" json:"name"`
	Email               string     `gorm:"size:250;not null" json:"email"`
	Password            string     `gorm:"size:250;not null" json:"password"`
	Salt                string     `gorm:"size:250;not null" json:"salt"`
	RoleID              uint       `gorm:"index;not null" json:"role_id"`
	Status              string     `gorm:"size:20;not null;default:'ACTIVE'" json:"status"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
	PasswordChangedAt   *time.Time `json:"password_changed_at,omitempty"`
	ResetToken          *string    `gorm:"size:36;index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`

	// 메타데이터 필드
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	// 관계 필드
	Role          RoleModel           `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"refresh_tokens,omitempty"`
}

// TableName 테이블 이름 지정
func (UserModel) TableName() string {
	return "users"
}
