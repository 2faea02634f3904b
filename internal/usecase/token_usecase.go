package usecase

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/constants"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// TokenConfig 토큰 관련 설정
type TokenConfig struct {
	Issuer             string // 토큰 발급자 이름
	JwtPrivateKey      string // ECDSA 개인키 (PEM 형식)
	JwtPublicKey       string // ECDSA 공개키 (PEM 형식)
	AccessTokenExpiry  int    // 액세스 토큰 만료 시간 (분)
	RefreshExpiryDays  int    // 리프레시 토큰 만료 기간 (일)
	RefreshTokenLength int    // 리프레시 시크릿 바이트 길이
}

// TokenUseCase 토큰 유스케이스 구현체.
// ECDSA 키는 생성 시점에 한 번만 파싱하여 보관합니다.
type TokenUseCase struct {
	logger          *zap.Logger
	config          TokenConfig
	privateKey      *ecdsa.PrivateKey
	publicKey       *ecdsa.PublicKey
	tokenRepository repository.RefreshTokenRepository
	userRepository  repository.UserRepository
	cacheRepository repository.CacheRepository
	auditRepository repository.AuditLogRepository
}

// NewTokenUseCase 새 토큰 유스케이스 생성. PEM 키 파싱에 실패하면 에러를 반환합니다.
func NewTokenUseCase(
	logger *zap.Logger,
	config TokenConfig,
	tokenRepo repository.RefreshTokenRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
	auditRepo repository.AuditLogRepository,
) (interfaces.TokenUseCase, error) {
	privateKey, err := parseECPrivateKey(config.JwtPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("JWT 개인키 파싱 실패: %w", err)
	}

	publicKey, err := parseECPublicKey(config.JwtPublicKey)
	if err != nil {
		return nil, fmt.Errorf("JWT 공개키 파싱 실패: %w", err)
	}

	return &TokenUseCase{
		logger:          logger,
		config:          config,
		privateKey:      privateKey,
		publicKey:       publicKey,
		tokenRepository: tokenRepo,
		userRepository:  userRepo,
		cacheRepository: cacheRepo,
		auditRepository: auditRepo,
	}, nil
}

// parseECPrivateKey PEM 형식의 EC 개인키 파싱
func parseECPrivateKey(pemStr string) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil || block.Type != "EC PRIVATE KEY" {
		return nil, fmt.Errorf("EC 개인키 디코딩 실패")
	}
	return x509.ParseECPrivateKey(block.Bytes)
}

// parseECPublicKey PEM 형식의 EC 공개키 파싱
func parseECPublicKey(pemStr string) (*ecdsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(pemStr))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("EC 공개키 디코딩 실패")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, err
	}

	publicKey, ok := key.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("EC 공개키가 아님")
	}
	return publicKey, nil
}

// GenerateAccessToken 사용자 정보로부터 액세스 토큰 생성
func (uc *TokenUseCase) GenerateAccessToken(ctx context.Context, user *entity.User) (string, error) {
	// 토큰 만료 시간 설정
	now := time.Now()
	expiry := uc.config.AccessTokenExpiry
	if expiry <= 0 {
		expiry = constants.AccessTokenExpiry // 기본값 사용
	}
	expiresAt := now.Add(time.Duration(expiry) * time.Minute)

	// JWT 클레임 설정
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"name": user.Name,
		"role": user.RoleName,
		"iss":  uc.config.Issuer,
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
		"type": "access",
	}

	// 토큰 생성 및 서명
	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	signedToken, err := token.SignedString(uc.privateKey)
	if err != nil {
		uc.logger.Error("액세스 토큰 서명 실패", zap.Error(err))
		return "", fmt.Errorf("액세스 토큰 서명 실패: %w", err)
	}

	return signedToken, nil
}

// ValidateAccessToken 액세스 토큰 검증
func (uc *TokenUseCase) ValidateAccessToken(ctx context.Context, accessToken string) (*entity.User, error) {
	// 1. 토큰 폐기 여부 확인
	revoked, err := uc.cacheRepository.Get(ctx, revokedTokenKey(accessToken))
	if err == nil && revoked == "true" {
		return nil, apperrors.NewAppError(apperrors.ErrTokenRevoked, "폐기된 액세스 토큰입니다", nil)
	}

	// 2. 토큰 파싱 및 서명 검증
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		// 서명 알고리즘 확인
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("잘못된 서명 알고리즘: %v", token.Header["alg"])
		}
		return uc.publicKey, nil
	})

	// 3. 토큰 검증 오류 처리
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewAppError(apperrors.ErrTokenExpired, "액세스 토큰이 만료되었습니다", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrMalformedToken, "유효하지 않은 액세스 토큰입니다", err)
	}

	// 4. 클레임 정보 추출
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.NewAppError(apperrors.ErrMalformedToken, "유효하지 않은 액세스 토큰입니다", nil)
	}

	tokenType, _ := claims["type"].(string)
	if tokenType != "access" {
		return nil, apperrors.NewAppError(apperrors.ErrMalformedToken, "액세스 토큰이 아닙니다", nil)
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, apperrors.NewAppError(apperrors.ErrMalformedToken, "토큰에 사용자 ID가 없습니다", nil)
	}

	// 5. 사용자 조회 및 상태 확인
	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "사용자를 찾을 수 없습니다", nil)
	}

	if !user.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrAccountDeactivated, "비활성화된 계정입니다", nil)
	}

	return user, nil
}

// RevokeAccessToken 액세스 토큰 폐기
func (uc *TokenUseCase) RevokeAccessToken(ctx context.Context, accessToken string) error {
	// 폐기 토큰 목록에 추가 (액세스 토큰 만료 시간까지)
	expiry := uc.config.AccessTokenExpiry
	if expiry <= 0 {
		expiry = constants.AccessTokenExpiry // 기본값 사용
	}
	expiryDuration := time.Duration(expiry) * time.Minute

	if err := uc.cacheRepository.Set(ctx, revokedTokenKey(accessToken), "true", expiryDuration); err != nil {
		uc.logger.Error("액세스 토큰 폐기 실패", zap.Error(err))
		return fmt.Errorf("액세스 토큰 폐기 실패: %w", err)
	}

	return nil
}

// revokedTokenKey 액세스 토큰 폐기 기록용 Redis 키 생성
func revokedTokenKey(accessToken string) string {
	hashValue := sha256.Sum256([]byte(accessToken))
	return constants.RevokedTokenPrefix + hex.EncodeToString(hashValue[:])
}

// IssueInitial 로그인 시점에 패밀리 루트가 되는 리프레시 토큰 발급
func (uc *TokenUseCase) IssueInitial(ctx context.Context, user *entity.User, accessToken string) (string, error) {
	secret, err := GenerateTokenSecret(uc.config.RefreshTokenLength)
	if err != nil {
		return "", err
	}

	token := entity.NewRefreshToken(user.ID, secret, accessToken)
	if err := uc.tokenRepository.Create(ctx, token); err != nil {
		uc.logger.Error("리프레시 토큰 저장 실패", zap.Error(err))
		return "", fmt.Errorf("리프레시 토큰 저장 실패: %w", err)
	}

	return secret, nil
}

// Rotate 제시된 리프레시 토큰을 철회하고 새 토큰 쌍을 발급합니다.
// 이미 철회된 토큰이 제시되면 재사용으로 판단하고 패밀리 전체를 철회합니다.
func (uc *TokenUseCase) Rotate(ctx context.Context, presentedSecret string) (*dto.RotationResult, error) {
	// 1. 제시된 토큰 조회
	presented, err := uc.tokenRepository.FindByToken(ctx, presentedSecret)
	if err != nil {
		uc.logger.Error("리프레시 토큰 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("리프레시 토큰 조회 실패: %w", err)
	}

	if presented == nil {
		return nil, apperrors.NewAppError(apperrors.ErrMalformedToken, "유효하지 않은 리프레시 토큰입니다", nil)
	}

	// 2. 철회된 토큰 재사용 감지
	if presented.IsRevoked {
		uc.onReuseDetected(ctx, presented)
		return nil, apperrors.NewAppError(apperrors.ErrTokenRevoked, "다시 로그인해 주세요", nil)
	}

	// 3. 만료 확인. 철회 여부와 무관하게 생성 시점 기준으로 판정
	if presented.IsExpired(uc.refreshExpiryDays()) {
		return nil, apperrors.NewAppError(apperrors.ErrTokenExpired, "다시 로그인해 주세요", nil)
	}

	// 4. 조건부 철회. 동시 회전 경합에서 밀린 요청은 재사용으로 처리
	won, err := uc.tokenRepository.RevokeIfActive(ctx, presented.ID)
	if err != nil {
		uc.logger.Error("리프레시 토큰 철회 실패", zap.Error(err))
		return nil, fmt.Errorf("리프레시 토큰 철회 실패: %w", err)
	}

	if !won {
		uc.onReuseDetected(ctx, presented)
		return nil, apperrors.NewAppError(apperrors.ErrTokenRevoked, "다시 로그인해 주세요", nil)
	}

	// 5. 세션 소유자 조회 및 상태 확인
	user, err := uc.resolveOwner(ctx, presented)
	if err != nil {
		return nil, err
	}

	// 6. 새 액세스 토큰 발급
	accessToken, err := uc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}

	// 7. 같은 패밀리 루트를 가리키는 새 리프레시 토큰 발급
	newSecret, err := GenerateTokenSecret(uc.config.RefreshTokenLength)
	if err != nil {
		return nil, err
	}

	child := entity.NewChildRefreshToken(user.ID, newSecret, accessToken, presented.RootID())
	if err := uc.tokenRepository.Create(ctx, child); err != nil {
		uc.logger.Error("새 리프레시 토큰 저장 실패", zap.Error(err))
		return nil, fmt.Errorf("새 리프레시 토큰 저장 실패: %w", err)
	}

	// 8. 감사 로그 기록
	uc.recordAudit(ctx, user.ID, entity.AuditLogTypeTokenRotated, map[string]interface{}{
		"token_id":     presented.ID,
		"family_root":  presented.RootID(),
		"new_token_id": child.ID,
	})

	return &dto.RotationResult{
		User:          user,
		AccessToken:   accessToken,
		RefreshSecret: newSecret,
	}, nil
}

// ResolveSession 상태 변경 없이 리프레시 토큰으로 세션 소유자를 조회합니다
func (uc *TokenUseCase) ResolveSession(ctx context.Context, presentedSecret string) (*entity.User, error) {
	presented, err := uc.tokenRepository.FindByToken(ctx, presentedSecret)
	if err != nil {
		uc.logger.Error("리프레시 토큰 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("리프레시 토큰 조회 실패: %w", err)
	}

	if presented == nil {
		return nil, apperrors.NewAppError(apperrors.ErrMalformedToken, "유효하지 않은 리프레시 토큰입니다", nil)
	}

	if presented.IsRevoked {
		return nil, apperrors.NewAppError(apperrors.ErrTokenRevoked, "다시 로그인해 주세요", nil)
	}

	if presented.IsExpired(uc.refreshExpiryDays()) {
		return nil, apperrors.NewAppError(apperrors.ErrTokenExpired, "다시 로그인해 주세요", nil)
	}

	return uc.resolveOwner(ctx, presented)
}

// Revoke 리프레시 토큰 한 건을 철회합니다. 중복 호출에도 에러를 반환하지 않습니다
func (uc *TokenUseCase) Revoke(ctx context.Context, presentedSecret string) (bool, error) {
	presented, err := uc.tokenRepository.FindByToken(ctx, presentedSecret)
	if err != nil {
		uc.logger.Error("리프레시 토큰 조회 실패", zap.Error(err))
		return false, fmt.Errorf("리프레시 토큰 조회 실패: %w", err)
	}

	if presented == nil || presented.IsRevoked {
		return false, nil
	}

	won, err := uc.tokenRepository.RevokeIfActive(ctx, presented.ID)
	if err != nil {
		uc.logger.Error("리프레시 토큰 철회 실패", zap.Error(err))
		return false, fmt.Errorf("리프레시 토큰 철회 실패: %w", err)
	}

	return won, nil
}

// RevokeAllForUser 사용자의 활성 리프레시 토큰을 모두 철회합니다
func (uc *TokenUseCase) RevokeAllForUser(ctx context.Context, userID string) (int64, error) {
	count, err := uc.tokenRepository.RevokeAllByUserID(ctx, userID)
	if err != nil {
		uc.logger.Error("사용자 토큰 전체 철회 실패",
			zap.String("user_id", userID),
			zap.Error(err))
		return 0, fmt.Errorf("사용자 토큰 전체 철회 실패: %w", err)
	}

	uc.logger.Info("사용자 토큰 전체 철회",
		zap.String("user_id", userID),
		zap.Int64("revoked_count", count))

	return count, nil
}

// onReuseDetected 철회된 토큰 재사용 감지 처리.
// 패밀리 전체 철회 후 사용자의 나머지 활성 토큰까지 모두 철회합니다.
func (uc *TokenUseCase) onReuseDetected(ctx context.Context, presented *entity.RefreshToken) {
	rootID := presented.RootID()

	familyCount, err := uc.tokenRepository.RevokeFamily(ctx, rootID)
	if err != nil {
		uc.logger.Error("토큰 패밀리 철회 실패",
			zap.Uint("family_root", rootID),
			zap.Error(err))
	}

	userCount, err := uc.tokenRepository.RevokeAllByUserID(ctx, presented.UserID)
	if err != nil {
		uc.logger.Error("사용자 토큰 전체 철회 실패",
			zap.String("user_id", presented.UserID),
			zap.Error(err))
	}

	// 보안 이벤트는 일반 만료/조회 실패와 구분해 높은 수준으로 기록
	uc.logger.Warn("리프레시 토큰 재사용 감지",
		zap.Uint("token_id", presented.ID),
		zap.Uint("family_root", rootID),
		zap.String("user_id", presented.UserID),
		zap.Int64("family_revoked", familyCount),
		zap.Int64("user_revoked", userCount))

	uc.recordAudit(ctx, presented.UserID, entity.AuditLogTypeTokenReuseDetected, map[string]interface{}{
		"token_id":       presented.ID,
		"family_root":    rootID,
		"family_revoked": familyCount,
		"user_revoked":   userCount,
	})
}

// resolveOwner 토큰 소유 사용자 조회. 역할 정보가 없으면 구분 가능한 에러를 반환합니다
func (uc *TokenUseCase) resolveOwner(ctx context.Context, token *entity.RefreshToken) (*entity.User, error) {
	user, err := uc.userRepository.FindByID(ctx, token.UserID)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "사용자를 찾을 수 없습니다", nil)
	}

	if user.RoleName == "" {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "사용자 역할을 찾을 수 없습니다", nil)
	}

	if !user.IsActive() {
		return nil, apperrors.NewAppError(apperrors.ErrAccountDeactivated, "비활성화된 계정입니다", nil)
	}

	return user, nil
}

// refreshExpiryDays 설정된 리프레시 토큰 만료 기간 반환
func (uc *TokenUseCase) refreshExpiryDays() int {
	if uc.config.RefreshExpiryDays <= 0 {
		return constants.RefreshTokenExpiryDays
	}
	return uc.config.RefreshExpiryDays
}

// recordAudit 감사 로그 기록. 실패해도 본 처리에는 영향을 주지 않습니다
func (uc *TokenUseCase) recordAudit(ctx context.Context, userID string, logType entity.AuditLogType, content map[string]interface{}) {
	auditLog := entity.NewAuditLog(&userID, logType, content)
	if err := uc.auditRepository.Create(ctx, auditLog); err != nil {
		uc.logger.Warn("감사 로그 저장 실패",
			zap.String("type", string(logType)),
			zap.Error(err))
	}
}
