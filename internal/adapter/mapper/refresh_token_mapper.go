package mapper

import (
	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
)

// RefreshTokenToModel 리프레시 토큰 엔티티를 DB 모델로 변환
func RefreshTokenToModel(token *entity.RefreshToken) *model.RefreshTokenModel {
	if token == nil {
		return nil
	}

	return &model.RefreshTokenModel{
		ID:            token.ID,
		UserID:        token.UserID,
		Token:         token.Token,
		AccessToken:   token.AccessToken,
		ParentTokenID: token.ParentTokenID,
		IsRevoked:     token.IsRevoked,
		RevokedAt:     token.RevokedAt,
		CreatedAt:     token.CreatedAt,
	}
}

// RefreshTokenFromModel DB 모델을 리프레시 토큰 엔티티로 변환
func RefreshTokenFromModel(m *model.RefreshTokenModel) *entity.RefreshToken {
	if m == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:            m.ID,
		UserID:        m.UserID,
		Token:         m.Token,
		AccessToken:   m.AccessToken,
		ParentTokenID: m.ParentTokenID,
		IsRevoked:     m.IsRevoked,
		RevokedAt:     m.RevokedAt,
		CreatedAt:     m.CreatedAt,
	}
}
