package dto

import (
	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// RotationResult 리프레시 토큰 회전 성공 결과
type RotationResult struct {
	User          *entity.User // 세션 소유 사용자
	AccessToken   string       // 새로 발급된 액세스 토큰
	RefreshSecret string       // 새로 발급된 리프레시 시크릿
}
