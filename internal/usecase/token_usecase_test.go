package usecase_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// fakeRefreshTokenRepository is an in-memory stand-in that preserves the
// conditional-revoke semantics of the SQL implementation.
type fakeRefreshTokenRepository struct {
	mu     sync.Mutex
	nextID uint
	tokens map[uint]*entity.RefreshToken
}

func newFakeRefreshTokenRepository() *fakeRefreshTokenRepository {
	return &fakeRefreshTokenRepository{tokens: make(map[uint]*entity.RefreshToken)}
}

func (r *fakeRefreshTokenRepository) FindByID(ctx context.Context, id uint) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[id]
	if !ok {
		return nil, nil
	}
	copied := *token
	return &copied, nil
}

func (r *fakeRefreshTokenRepository) FindByToken(ctx context.Context, secret string) (*entity.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, token := range r.tokens {
		if token.Token == secret {
			copied := *token
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	token.ID = r.nextID
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	copied := *token
	r.tokens[token.ID] = &copied
	return nil
}

func (r *fakeRefreshTokenRepository) RevokeIfActive(ctx context.Context, id uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	token, ok := r.tokens[id]
	if !ok || token.IsRevoked {
		return false, nil
	}
	token.Revoke()
	return true, nil
}

func (r *fakeRefreshTokenRepository) RevokeFamily(ctx context.Context, rootID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, token := range r.tokens {
		if token.IsRevoked {
			continue
		}
		if token.ID == rootID || (token.ParentTokenID != nil && *token.ParentTokenID == rootID) {
			token.Revoke()
			count++
		}
	}
	return count, nil
}

func (r *fakeRefreshTokenRepository) RevokeAllByUserID(ctx context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, token := range r.tokens {
		if token.UserID == userID && !token.IsRevoked {
			token.Revoke()
			count++
		}
	}
	return count, nil
}

func (r *fakeRefreshTokenRepository) DeleteExpired(ctx context.Context, activeBefore, revokedBefore time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for id, token := range r.tokens {
		if (!token.IsRevoked && token.CreatedAt.Before(activeBefore)) ||
			(token.IsRevoked && token.RevokedAt != nil && token.RevokedAt.Before(revokedBefore)) {
			delete(r.tokens, id)
			count++
		}
	}
	return count, nil
}

// seed inserts a token directly, bypassing the usecase, for fixture setup.
func (r *fakeRefreshTokenRepository) seed(token *entity.RefreshToken) *entity.RefreshToken {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	token.ID = r.nextID
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	copied := *token
	r.tokens[token.ID] = &copied
	return r.tokens[token.ID]
}

func (r *fakeRefreshTokenRepository) get(id uint) *entity.RefreshToken {
	r.mu.Lock()
	defer r.mu.Unlock()
	token := r.tokens[id]
	if token == nil {
		return nil
	}
	copied := *token
	return &copied
}

func (r *fakeRefreshTokenRepository) activeCount(userID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, token := range r.tokens {
		if token.UserID == userID && !token.IsRevoked {
			count++
		}
	}
	return count
}

type fakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepository(users ...*entity.User) *fakeUserRepository {
	repo := &fakeUserRepository{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByResetToken(ctx context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ResetToken != nil && *user.ResetToken == token {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) List(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		result = append(result, &copied)
	}
	return result, int64(len(result)), nil
}

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

var errCacheMiss = errors.New("cache: key not found")

type fakeCacheRepository struct {
	mu    sync.Mutex
	items map[string]string
}

func newFakeCacheRepository() *fakeCacheRepository {
	return &fakeCacheRepository{items: make(map[string]string)}
}

func (r *fakeCacheRepository) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = value
	return nil
}

func (r *fakeCacheRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.items[key]
	if !ok {
		return "", errCacheMiss
	}
	return value, nil
}

func (r *fakeCacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, key)
	return nil
}

func (r *fakeCacheRepository) SetMulti(ctx context.Context, items map[string]string, expiration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, value := range items {
		r.items[key] = value
	}
	return nil
}

func (r *fakeCacheRepository) DeleteMulti(ctx context.Context, keys []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		delete(r.items, key)
	}
	return nil
}

func (r *fakeCacheRepository) IsNotFound(err error) bool {
	return errors.Is(err, errCacheMiss)
}

type fakeAuditLogRepository struct {
	mu   sync.Mutex
	logs []*entity.AuditLog
}

func (r *fakeAuditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeAuditLogRepository) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.AuditLog
	for _, log := range r.logs {
		if log.UserID != nil && *log.UserID == userID {
			result = append(result, log)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeAuditLogRepository) ListByType(ctx context.Context, logType entity.AuditLogType, page, limit int) ([]*entity.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.AuditLog
	for _, log := range r.logs {
		if log.Type == logType {
			result = append(result, log)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeAuditLogRepository) Search(
	ctx context.Context,
	userID *string,
	logTypes []entity.AuditLogType,
	startDate, endDate *time.Time,
	page, limit int,
) ([]*entity.AuditLog, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.logs, int64(len(r.logs)), nil
}

func (r *fakeAuditLogRepository) hasType(logType entity.AuditLogType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, log := range r.logs {
		if log.Type == logType {
			return true
		}
	}
	return false
}

// newTestKeyPair generates an ephemeral ES256 key pair in PEM form.
func newTestKeyPair(t *testing.T) (string, string, *ecdsa.PrivateKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	privateDER, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)
	privatePEM := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: privateDER})

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: publicDER})

	return string(privatePEM), string(publicPEM), key
}

func testUser() *entity.User {
	return &entity.User{
		ID:       "usr000000001",
		Username: "hong.gildong",
		Name:     "홍길동",
		RoleName: "RECRUITER",
		Status:   entity.AccountStatusActive,
	}
}

func newTokenTestEnv(t *testing.T, users ...*entity.User) (*fakeRefreshTokenRepository, *fakeUserRepository, *fakeCacheRepository, *fakeAuditLogRepository, *ecdsa.PrivateKey, interfaces.TokenUseCase) {
	t.Helper()

	privatePEM, publicPEM, key := newTestKeyPair(t)

	tokenRepo := newFakeRefreshTokenRepository()
	userRepo := newFakeUserRepository(users...)
	cacheRepo := newFakeCacheRepository()
	auditRepo := &fakeAuditLogRepository{}

	uc, err := usecase.NewTokenUseCase(
		zap.NewNop(),
		usecase.TokenConfig{
			Issuer:             "pms-auth",
			JwtPrivateKey:      privatePEM,
			JwtPublicKey:       publicPEM,
			AccessTokenExpiry:  5,
			RefreshExpiryDays:  7,
			RefreshTokenLength: 32,
		},
		tokenRepo,
		userRepo,
		cacheRepo,
		auditRepo,
	)
	require.NoError(t, err)

	return tokenRepo, userRepo, cacheRepo, auditRepo, key, uc
}

func TestTokenUseCase_IssueInitialAndRotate(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, auditRepo, _, uc := newTokenTestEnv(t, user)

	accessToken, err := uc.GenerateAccessToken(ctx, user)
	require.NoError(t, err)

	secret, err := uc.IssueInitial(ctx, user, accessToken)
	require.NoError(t, err)
	assert.NotEmpty(t, secret)

	root, err := tokenRepo.FindByToken(ctx, secret)
	require.NoError(t, err)
	require.NotNil(t, root)
	assert.Nil(t, root.ParentTokenID)
	assert.Equal(t, accessToken, root.AccessToken)

	t.Run("rotation revokes the presented token and issues a sibling of the root", func(t *testing.T) {
		result, err := uc.Rotate(ctx, secret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.User.ID)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEqual(t, secret, result.RefreshSecret)

		// The presented token must no longer be usable.
		previous := tokenRepo.get(root.ID)
		assert.True(t, previous.IsRevoked)

		child, err := tokenRepo.FindByToken(ctx, result.RefreshSecret)
		require.NoError(t, err)
		require.NotNil(t, child)
		require.NotNil(t, child.ParentTokenID)
		assert.Equal(t, root.ID, *child.ParentTokenID)
		assert.False(t, child.IsRevoked)

		assert.True(t, auditRepo.hasType(entity.AuditLogTypeTokenRotated))
	})
}

func TestTokenUseCase_FamilyStaysFlat(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, _, _, uc := newTokenTestEnv(t, user)

	secret, err := uc.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	root, err := tokenRepo.FindByToken(ctx, secret)
	require.NoError(t, err)

	// Three consecutive renewals: every descendant must point at the root,
	// never at its immediate predecessor.
	current := secret
	for i := 0; i < 3; i++ {
		result, err := uc.Rotate(ctx, current)
		require.NoError(t, err)

		child, err := tokenRepo.FindByToken(ctx, result.RefreshSecret)
		require.NoError(t, err)
		require.NotNil(t, child.ParentTokenID)
		assert.Equal(t, root.ID, *child.ParentTokenID)
		assert.Equal(t, root.ID, child.RootID())

		current = result.RefreshSecret
	}
}

func TestTokenUseCase_ReuseDetection(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, auditRepo, _, uc := newTokenTestEnv(t, user)

	firstSecret, err := uc.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	// A second, unrelated session for the same user.
	otherSession := tokenRepo.seed(entity.NewRefreshToken(user.ID, "other-session-secret", "access-x"))

	result, err := uc.Rotate(ctx, firstSecret)
	require.NoError(t, err)

	// Presenting the already-rotated secret is treated as theft.
	_, err = uc.Rotate(ctx, firstSecret)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenRevoked))

	// The cascade must take down the whole family, including the freshly
	// issued successor, and every other active session of the user.
	successor, err := tokenRepo.FindByToken(ctx, result.RefreshSecret)
	require.NoError(t, err)
	assert.True(t, successor.IsRevoked)
	assert.True(t, tokenRepo.get(otherSession.ID).IsRevoked)
	assert.Equal(t, 0, tokenRepo.activeCount(user.ID))

	assert.True(t, auditRepo.hasType(entity.AuditLogTypeTokenReuseDetected))

	// The revoked successor no longer rotates either.
	_, err = uc.Rotate(ctx, result.RefreshSecret)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenRevoked))
}

func TestTokenUseCase_RotateUnknownSecret(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, _, _, uc := newTokenTestEnv(t, user)

	_, err := uc.Rotate(ctx, "no-such-secret")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrMalformedToken))
	assert.Equal(t, 0, tokenRepo.activeCount(user.ID))
}

func TestTokenUseCase_RotateExpiredToken(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, _, _, uc := newTokenTestEnv(t, user)

	expired := entity.NewRefreshToken(user.ID, "expired-secret", "access-old")
	expired.CreatedAt = time.Now().AddDate(0, 0, -8)
	tokenRepo.seed(expired)

	_, err := uc.Rotate(ctx, "expired-secret")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenExpired))
}

func TestTokenUseCase_RotateInactiveOwner(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	user.Status = entity.AccountStatusLocked
	_, _, _, _, _, uc := newTokenTestEnv(t, user)

	secret, err := uc.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	_, err = uc.Rotate(ctx, secret)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrAccountDeactivated))
}

func TestTokenUseCase_ResolveSessionDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, _, _, uc := newTokenTestEnv(t, user)

	secret, err := uc.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	resolved, err := uc.ResolveSession(ctx, secret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)

	// Resolving a session must not consume the token.
	stillActive, err := tokenRepo.FindByToken(ctx, secret)
	require.NoError(t, err)
	assert.False(t, stillActive.IsRevoked)

	t.Run("revoked token resolves to an error without a cascade", func(t *testing.T) {
		other := tokenRepo.seed(entity.NewRefreshToken(user.ID, "second-secret", "access-1"))
		revoked := entity.NewRefreshToken(user.ID, "revoked-secret", "access-2")
		revoked.Revoke()
		tokenRepo.seed(revoked)

		_, err := uc.ResolveSession(ctx, "revoked-secret")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenRevoked))

		// Unlike rotation, resolution never punishes the rest of the family.
		assert.False(t, tokenRepo.get(other.ID).IsRevoked)
		assert.False(t, tokenRepo.get(stillActive.ID).IsRevoked)
	})
}

func TestTokenUseCase_RevokeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	_, _, _, _, _, uc := newTokenTestEnv(t, user)

	secret, err := uc.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	revoked, err := uc.Revoke(ctx, secret)
	require.NoError(t, err)
	assert.True(t, revoked)

	// Second call is a no-op, not an error.
	revoked, err = uc.Revoke(ctx, secret)
	require.NoError(t, err)
	assert.False(t, revoked)

	// Unknown secrets behave the same way.
	revoked, err = uc.Revoke(ctx, "no-such-secret")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenUseCase_RevokeAllForUser(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	tokenRepo, _, _, _, _, uc := newTokenTestEnv(t, user)

	for i := 0; i < 3; i++ {
		_, err := uc.IssueInitial(ctx, user, "access")
		require.NoError(t, err)
	}
	tokenRepo.seed(entity.NewRefreshToken("someone-else", "their-secret", "access"))

	count, err := uc.RevokeAllForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, 0, tokenRepo.activeCount(user.ID))
	assert.Equal(t, 1, tokenRepo.activeCount("someone-else"))
}

func TestTokenUseCase_ValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	_, userRepo, _, _, key, uc := newTokenTestEnv(t, user)

	accessToken, err := uc.GenerateAccessToken(ctx, user)
	require.NoError(t, err)
	assert.Len(t, splitJWT(accessToken), 3)

	t.Run("valid token resolves the active owner", func(t *testing.T) {
		resolved, err := uc.ValidateAccessToken(ctx, accessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, resolved.ID)
		assert.Equal(t, user.RoleName, resolved.RoleName)
	})

	t.Run("denylisted token is rejected", func(t *testing.T) {
		require.NoError(t, uc.RevokeAccessToken(ctx, accessToken))

		_, err := uc.ValidateAccessToken(ctx, accessToken)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenRevoked))
	})

	t.Run("expired token is distinguished from a malformed one", func(t *testing.T) {
		expired := signTestToken(t, key, jwt.MapClaims{
			"sub":  user.ID,
			"iss":  "pms-auth",
			"iat":  time.Now().Add(-10 * time.Minute).Unix(),
			"exp":  time.Now().Add(-5 * time.Minute).Unix(),
			"type": "access",
		})

		_, err := uc.ValidateAccessToken(ctx, expired)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenExpired))
	})

	t.Run("tampered token is malformed", func(t *testing.T) {
		_, err := uc.ValidateAccessToken(ctx, accessToken+"x")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrMalformedToken))
	})

	t.Run("non-access token type is rejected", func(t *testing.T) {
		wrongType := signTestToken(t, key, jwt.MapClaims{
			"sub":  user.ID,
			"iss":  "pms-auth",
			"iat":  time.Now().Unix(),
			"exp":  time.Now().Add(5 * time.Minute).Unix(),
			"type": "refresh",
		})

		_, err := uc.ValidateAccessToken(ctx, wrongType)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrMalformedToken))
	})

	t.Run("deactivated owner is rejected", func(t *testing.T) {
		fresh, err := uc.GenerateAccessToken(ctx, user)
		require.NoError(t, err)

		locked := *user
		locked.Status = entity.AccountStatusInactive
		require.NoError(t, userRepo.Update(ctx, &locked))

		_, err = uc.ValidateAccessToken(ctx, fresh)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrAccountDeactivated))
	})
}

func signTestToken(t *testing.T, key *ecdsa.PrivateKey, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodES256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func splitJWT(token string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			parts = append(parts, token[start:i])
			start = i + 1
		}
	}
	return append(parts, token[start:])
}
