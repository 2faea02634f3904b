package entity

import (
	"errors"
	"time"
)

// 계정 상태 값
const (
	AccountStatusActive   = "ACTIVE"
	AccountStatusInactive = "INACTIVE"
	AccountStatusLocked   = "LOCKED"
)

// User 비즈니스 도메인 엔티티. Username은 로그인 식별자로 사용됩니다.
type User struct {
	ID                  string
	Username            string
	Name                string
	Email               string
	Password            string
	Salt                string
	RoleID              uint
	RoleName            string
	Status              string
	LastLoginAt         *time.Time
	PasswordChangedAt   *time.Time
	ResetToken          *string
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewUser 사용자 생성 팩토리 함수
func NewUser(id, username, name, email, password, salt string, roleID uint) (*User, error) {
	if username == "" {
		return nil, errors.New("사용자 이름은 필수입니다")
	}

	if password == "" || salt == "" {
		return nil, errors.New("비밀번호와 솔트는 필수입니다")
	}

	return &User{
		ID:       id,
		Username: username,
		Name:     name,
		Email:    email,
		Password: password,
		Salt:     salt,
		RoleID:   roleID,
		Status:   AccountStatusActive,
	}, nil
}

// IsActive 계정이 활성 상태인지 확인
func (u *User) IsActive() bool {
	return u.Status == AccountStatusActive
}

// RecordLogin 로그인 성공 기록
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

// ChangePassword 비밀번호 변경
func (u *User) ChangePassword(newPassword, newSalt string) error {
	if newPassword == "" || newSalt == "" {
		return errors.New("새 비밀번호와 솔트는 필수입니다")
	}

	now := time.Now()
	u.Password = newPassword
	u.Salt = newSalt
	u.PasswordChangedAt = &now

	return nil
}

// SetResetToken 비밀번호 재설정 토큰 설정
func (u *User) SetResetToken(token string, expiresAt time.Time) {
	u.ResetToken = &token
	u.ResetTokenExpiresAt = &expiresAt
}

// ClearResetToken 비밀번호 재설정 토큰 제거
func (u *User) ClearResetToken() {
	u.ResetToken = nil
	u.ResetTokenExpiresAt = nil
}

// CanUseResetToken 재설정 토큰이 유효한지 확인
func (u *User) CanUseResetToken(token string) bool {
	if u.ResetToken == nil || u.ResetTokenExpiresAt == nil {
		return false
	}
	if *u.ResetToken != token {
		return false
	}
	return time.Now().Before(*u.ResetTokenExpiresAt)
}
