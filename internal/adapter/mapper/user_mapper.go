package mapper

import (
	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
)

// UserToModel 사용자 엔티티를 DB 모델로 변환
func UserToModel(user *entity.User) *model.UserModel {
	if user == nil {
		return nil
	}

	return &model.UserModel{
		ID:                  user.ID,
		Username:            user.Username,
		Name:                user.Name,
		Email:               user.Email,
		Password:            user.Password,
		Salt:                user.Salt,
		RoleID:              user.RoleID,
		Status:              user.Status,
		LastLoginAt:         user.LastLoginAt,
		PasswordChangedAt:   user.PasswordChangedAt,
		ResetToken:          user.ResetToken,
		ResetTokenExpiresAt: user.ResetTokenExpiresAt,
	}
}

// UserFromModel DB 모델을 사용자 엔티티로 변환.
// Role 관계가 프리로드된 경우 RoleName을 함께 채웁니다.
func UserFromModel(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:                  m.ID,
		Username:            m.Username,
		Name:                m.Name,
		Email:               m.Email,
		Password:            m.Password,
		Salt:                m.Salt,
		RoleID:              m.RoleID,
		RoleName:            m.Role.Name,
		Status:              m.Status,
		LastLoginAt:         m.LastLoginAt,
		PasswordChangedAt:   m.PasswordChangedAt,
		ResetToken:          m.ResetToken,
		ResetTokenExpiresAt: m.ResetTokenExpiresAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

// UsersFromModels DB 모델 슬라이스를 사용자 엔티티 슬라이스로 변환
func UsersFromModels(models []model.UserModel) []*entity.User {
	users := make([]*entity.User, len(models))
	for i := range models {
		users[i] = UserFromModel(&models[i])
	}
	return users
}
