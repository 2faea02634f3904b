package interfaces

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
)

// TokenUseCase 액세스 토큰 발급과 리프레시 토큰 회전을 담당하는 유스케이스 인터페이스
type TokenUseCase interface {
	// GenerateAccessToken 사용자 정보로 액세스 토큰 생성
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken 액세스 토큰 검증 후 사용자 조회
	ValidateAccessToken(ctx context.Context, accessToken string) (*entity.User, error)

	// RevokeAccessToken 액세스 토큰을 폐기 목록에 추가
	RevokeAccessToken(ctx context.Context, accessToken string) error

	// IssueInitial 로그인 시점에 패밀리 루트가 되는 리프레시 토큰 발급
	IssueInitial(ctx context.Context, user *entity.User, accessToken string) (string, error)

	// Rotate 제시된 리프레시 토큰을 철회하고 같은 패밀리의 새 토큰과 새 액세스 토큰 발급.
	// 이미 철회된 토큰이 제시되면 재사용 감지로 처리합니다.
	Rotate(ctx context.Context, presentedSecret string) (*dto.RotationResult, error)

	// ResolveSession 상태 변경 없이 리프레시 토큰으로 세션 소유자 조회
	ResolveSession(ctx context.Context, presentedSecret string) (*entity.User, error)

	// Revoke 리프레시 토큰 한 건을 철회. 이미 철회되었거나 없으면 false 반환
	Revoke(ctx context.Context, presentedSecret string) (bool, error)

	// RevokeAllForUser 사용자의 활성 리프레시 토큰 전체 철회. 철회 개수 반환
	RevokeAllForUser(ctx context.Context, userID string) (int64, error)
}
