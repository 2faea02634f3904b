package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/usecase"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

type fakeLoginActivityRepository struct {
	mu         sync.Mutex
	activities []*entity.LoginActivity
}

func (r *fakeLoginActivityRepository) Create(ctx context.Context, activity *entity.LoginActivity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.activities = append(r.activities, activity)
	return nil
}

func (r *fakeLoginActivityRepository) ListByUserID(ctx context.Context, userID string, page, limit int) ([]*entity.LoginActivity, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.LoginActivity
	for _, activity := range r.activities {
		if activity.UserID == userID {
			result = append(result, activity)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeLoginActivityRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.activities)
}

type fakeEmailUseCase struct {
	mu          sync.Mutex
	resetSent   []string
	welcomeSent []string
}

func (e *fakeEmailUseCase) SendPasswordResetEmail(ctx context.Context, email, name, resetToken string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetSent = append(e.resetSent, email)
	return nil
}

func (e *fakeEmailUseCase) SendWelcomeEmail(ctx context.Context, email, name, username, tempPassword string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.welcomeSent = append(e.welcomeSent, email)
	return nil
}

func (e *fakeEmailUseCase) resetCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.resetSent)
}

func (e *fakeEmailUseCase) welcomeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.welcomeSent)
}

type authTestEnv struct {
	tokenRepo    *fakeRefreshTokenRepository
	userRepo     *fakeUserRepository
	activityRepo *fakeLoginActivityRepository
	auditRepo    *fakeAuditLogRepository
	email        *fakeEmailUseCase
	tokens       interfaces.TokenUseCase
	auth         interfaces.AuthUseCase
}

func newAuthTestEnv(t *testing.T, users ...*entity.User) *authTestEnv {
	t.Helper()

	tokenRepo, userRepo, _, auditRepo, _, tokens := newTokenTestEnv(t, users...)
	activityRepo := &fakeLoginActivityRepository{}
	email := &fakeEmailUseCase{}

	auth := usecase.NewAuthUseCase(
		zap.NewNop(),
		usecase.AuthConfig{HashCost: 4, ResetTokenExpiry: 3600},
		userRepo,
		activityRepo,
		auditRepo,
		tokens,
		email,
	)

	return &authTestEnv{
		tokenRepo:    tokenRepo,
		userRepo:     userRepo,
		activityRepo: activityRepo,
		auditRepo:    auditRepo,
		email:        email,
		tokens:       tokens,
		auth:         auth,
	}
}

// credentialedUser builds an active user whose password is hashed the same
// way the login path verifies it.
func credentialedUser(t *testing.T, password string) *entity.User {
	t.Helper()

	hashed, salt, err := usecase.HashPassword(password, 4)
	require.NoError(t, err)

	user := testUser()
	user.Email = "hong@example.com"
	user.Password = hashed
	user.Salt = salt
	return user
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token pair", func(t *testing.T) {
		user := credentialedUser(t, "correct horse battery")
		env := newAuthTestEnv(t, user)

		result, err := env.auth.Login(ctx, dto.LoginParams{
			Username:  user.Username,
			Secret:    "correct horse battery",
			IP:        "203.0.113.7",
			UserAgent: "test-agent",
		})
		require.NoError(t, err)

		assert.Len(t, splitJWT(result.AuthToken), 3)
		assert.NotEmpty(t, result.RefreshSecret)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, user.Name, result.User.Name)
		assert.Equal(t, user.Username, result.User.Username)
		assert.Equal(t, user.RoleName, result.User.Role)

		// The refresh secret must be a stored family root.
		root, err := env.tokenRepo.FindByToken(ctx, result.RefreshSecret)
		require.NoError(t, err)
		require.NotNil(t, root)
		assert.Nil(t, root.ParentTokenID)
		assert.Equal(t, result.AuthToken, root.AccessToken)

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotNil(t, updated.LastLoginAt)

		assert.Equal(t, 1, env.activityRepo.count())
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypeLoginSuccess))
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		user := credentialedUser(t, "correct horse battery")
		env := newAuthTestEnv(t, user)

		_, err := env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "wrong"})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidCredentials))

		_, err = env.auth.Login(ctx, dto.LoginParams{Username: "nobody", Secret: "wrong"})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidCredentials))

		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypeLoginFailed))
		assert.Equal(t, 0, env.tokenRepo.activeCount(user.ID))
	})

	t.Run("deactivated account is rejected after credential check", func(t *testing.T) {
		user := credentialedUser(t, "correct horse battery")
		user.Status = entity.AccountStatusInactive
		env := newAuthTestEnv(t, user)

		_, err := env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "correct horse battery"})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrAccountDeactivated))
	})
}

func TestAuthUseCase_RenewToken(t *testing.T) {
	ctx := context.Background()
	user := credentialedUser(t, "pw")
	env := newAuthTestEnv(t, user)

	login, err := env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "pw"})
	require.NoError(t, err)

	renewed, err := env.auth.RenewToken(ctx, login.RefreshSecret)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshSecret, renewed.RefreshSecret)
	assert.Equal(t, user.ID, renewed.User.ID)

	// The presented secret is consumed by the rotation.
	previous, err := env.tokenRepo.FindByToken(ctx, login.RefreshSecret)
	require.NoError(t, err)
	assert.True(t, previous.IsRevoked)
}

func TestAuthUseCase_Logout(t *testing.T) {
	ctx := context.Background()
	user := credentialedUser(t, "pw")
	env := newAuthTestEnv(t, user)

	login, err := env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "pw"})
	require.NoError(t, err)

	require.NoError(t, env.auth.Logout(ctx, login.RefreshSecret, login.AuthToken))

	// The refresh token is revoked and the access token is denylisted.
	revoked, err := env.tokenRepo.FindByToken(ctx, login.RefreshSecret)
	require.NoError(t, err)
	assert.True(t, revoked.IsRevoked)

	_, err = env.tokens.ValidateAccessToken(ctx, login.AuthToken)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenRevoked))

	t.Run("repeated and empty logouts succeed", func(t *testing.T) {
		assert.NoError(t, env.auth.Logout(ctx, login.RefreshSecret, login.AuthToken))
		assert.NoError(t, env.auth.Logout(ctx, "", ""))
		assert.NoError(t, env.auth.Logout(ctx, "unknown-secret", ""))
	})
}

func TestAuthUseCase_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success revokes every existing session", func(t *testing.T) {
		user := credentialedUser(t, "old password")
		env := newAuthTestEnv(t, user)

		login, err := env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "old password"})
		require.NoError(t, err)
		require.Equal(t, 1, env.tokenRepo.activeCount(user.ID))

		err = env.auth.ChangePassword(ctx, dto.ChangePasswordParams{
			UserID:          user.ID,
			CurrentPassword: "old password",
			NewPassword:     "new password 123",
		})
		require.NoError(t, err)

		assert.Equal(t, 0, env.tokenRepo.activeCount(user.ID))
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypePasswordChanged))

		// The rotated-out session cannot be renewed afterwards.
		_, err = env.auth.RenewToken(ctx, login.RefreshSecret)
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrTokenRevoked))

		// Only the new password logs in.
		_, err = env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "old password"})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidCredentials))
		_, err = env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "new password 123"})
		assert.NoError(t, err)
	})

	t.Run("wrong current password is rejected", func(t *testing.T) {
		user := credentialedUser(t, "old password")
		env := newAuthTestEnv(t, user)

		err := env.auth.ChangePassword(ctx, dto.ChangePasswordParams{
			UserID:          user.ID,
			CurrentPassword: "not the password",
			NewPassword:     "new password 123",
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidCredentials))
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newAuthTestEnv(t)

		err := env.auth.ChangePassword(ctx, dto.ChangePasswordParams{
			UserID:          "missing",
			CurrentPassword: "a",
			NewPassword:     "b",
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrNotFound))
	})
}

func TestAuthUseCase_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("known account receives a reset token and an email", func(t *testing.T) {
		user := credentialedUser(t, "pw")
		user.Username = "hong@example.com"
		env := newAuthTestEnv(t, user)

		require.NoError(t, env.auth.ForgotPassword(ctx, "hong@example.com"))

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.ResetToken)
		assert.NotEmpty(t, *updated.ResetToken)
		require.NotNil(t, updated.ResetTokenExpiresAt)
		assert.True(t, updated.ResetTokenExpiresAt.After(time.Now()))

		assert.Eventually(t, func() bool {
			return env.email.resetCount() == 1
		}, time.Second, 10*time.Millisecond)
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypePasswordResetRequested))
	})

	t.Run("unknown account does not leak existence", func(t *testing.T) {
		env := newAuthTestEnv(t)

		assert.NoError(t, env.auth.ForgotPassword(ctx, "unknown@example.com"))
		assert.Equal(t, 0, env.email.resetCount())
	})

	t.Run("malformed email is rejected", func(t *testing.T) {
		env := newAuthTestEnv(t)

		err := env.auth.ForgotPassword(ctx, "not-an-email")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}

func TestAuthUseCase_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token resets the password and revokes sessions", func(t *testing.T) {
		user := credentialedUser(t, "pw")
		user.SetResetToken("reset-token-1", time.Now().Add(time.Hour))
		env := newAuthTestEnv(t, user)

		_, err := env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "pw"})
		require.NoError(t, err)

		err = env.auth.ResetPassword(ctx, dto.ResetPasswordParams{
			Token:       "reset-token-1",
			NewPassword: "brand new password",
		})
		require.NoError(t, err)

		assert.Equal(t, 0, env.tokenRepo.activeCount(user.ID))
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypePasswordReset))

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Nil(t, updated.ResetToken)

		_, err = env.auth.Login(ctx, dto.LoginParams{Username: user.Username, Secret: "brand new password"})
		assert.NoError(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		user := credentialedUser(t, "pw")
		user.SetResetToken("reset-token-2", time.Now().Add(-time.Minute))
		env := newAuthTestEnv(t, user)

		err := env.auth.ResetPassword(ctx, dto.ResetPasswordParams{
			Token:       "reset-token-2",
			NewPassword: "whatever",
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrMalformedToken))
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		env := newAuthTestEnv(t)

		err := env.auth.ResetPassword(ctx, dto.ResetPasswordParams{
			Token:       "no-such-token",
			NewPassword: "whatever",
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrMalformedToken))
	})
}
