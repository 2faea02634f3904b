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

type fakeRoleRepository struct {
	mu    sync.Mutex
	roles []*entity.Role
}

func (r *fakeRoleRepository) FindByID(ctx context.Context, id uint) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.roles {
		if role.ID == id {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, role := range r.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return nil, nil
}

func (r *fakeRoleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roles, nil
}

func (r *fakeRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.roles = append(r.roles, role)
	return nil
}

type userTestEnv struct {
	tokenRepo *fakeRefreshTokenRepository
	userRepo  *fakeUserRepository
	auditRepo *fakeAuditLogRepository
	email     *fakeEmailUseCase
	tokens    interfaces.TokenUseCase
	users     interfaces.UserUseCase
}

func newUserTestEnv(t *testing.T, existing ...*entity.User) *userTestEnv {
	t.Helper()

	tokenRepo, userRepo, _, auditRepo, _, tokens := newTokenTestEnv(t, existing...)
	roleRepo := &fakeRoleRepository{roles: []*entity.Role{
		{ID: 1, Name: entity.RoleAdmin},
		{ID: 2, Name: entity.RoleRecruiter},
		{ID: 3, Name: entity.RoleSales},
	}}
	email := &fakeEmailUseCase{}

	users := usecase.NewUserUseCase(zap.NewNop(), 4, userRepo, roleRepo, auditRepo, tokens, email)

	return &userTestEnv{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		auditRepo: auditRepo,
		email:     email,
		tokens:    tokens,
		users:     users,
	}
}

func TestUserUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active user and mails a temporary password", func(t *testing.T) {
		env := newUserTestEnv(t)

		created, err := env.users.Create(ctx, dto.CreateUserParams{
			Username: "kim@example.com",
			Name:     "김영희",
			RoleName: entity.RoleRecruiter,
			ActorID:  "admin-1",
		})
		require.NoError(t, err)
		assert.Len(t, created.ID, 12)
		assert.Equal(t, entity.AccountStatusActive, created.Status)
		assert.Equal(t, entity.RoleRecruiter, created.RoleName)
		assert.NotEmpty(t, created.Password)
		assert.NotEmpty(t, created.Salt)

		assert.Eventually(t, func() bool {
			return env.email.welcomeCount() == 1
		}, time.Second, 10*time.Millisecond)
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypeUserCreated))
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		existing := testUser()
		existing.Username = "kim@example.com"
		env := newUserTestEnv(t, existing)

		_, err := env.users.Create(ctx, dto.CreateUserParams{
			Username: "kim@example.com",
			Name:     "김영희",
			RoleName: entity.RoleRecruiter,
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrConflict))
	})

	t.Run("unknown role", func(t *testing.T) {
		env := newUserTestEnv(t)

		_, err := env.users.Create(ctx, dto.CreateUserParams{
			Username: "kim@example.com",
			Name:     "김영희",
			RoleName: "INTERN",
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrNotFound))
	})

	t.Run("username must be an email", func(t *testing.T) {
		env := newUserTestEnv(t)

		_, err := env.users.Create(ctx, dto.CreateUserParams{
			Username: "not-an-email",
			Name:     "김영희",
			RoleName: entity.RoleRecruiter,
		})
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}

func TestUserUseCase_ChangeRole(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	user.RoleID = 2
	env := newUserTestEnv(t, user)

	_, err := env.tokens.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	t.Run("role change revokes existing sessions", func(t *testing.T) {
		require.NoError(t, env.users.ChangeRole(ctx, user.ID, entity.RoleAdmin, "admin-1"))

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, updated.RoleName)
		assert.Equal(t, 0, env.tokenRepo.activeCount(user.ID))
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypeUserRoleChanged))
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		_, err := env.tokens.IssueInitial(ctx, user, "access-1")
		require.NoError(t, err)

		require.NoError(t, env.users.ChangeRole(ctx, user.ID, entity.RoleAdmin, "admin-1"))
		assert.Equal(t, 1, env.tokenRepo.activeCount(user.ID))
	})
}

func TestUserUseCase_ChangeStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("deactivation revokes sessions", func(t *testing.T) {
		user := testUser()
		env := newUserTestEnv(t, user)

		_, err := env.tokens.IssueInitial(ctx, user, "access-0")
		require.NoError(t, err)

		require.NoError(t, env.users.ChangeStatus(ctx, user.ID, entity.AccountStatusLocked, "admin-1"))

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.AccountStatusLocked, updated.Status)
		assert.Equal(t, 0, env.tokenRepo.activeCount(user.ID))
		assert.True(t, env.auditRepo.hasType(entity.AuditLogTypeUserStatusChanged))
	})

	t.Run("reactivation keeps sessions intact", func(t *testing.T) {
		user := testUser()
		user.Status = entity.AccountStatusLocked
		env := newUserTestEnv(t, user)

		require.NoError(t, env.users.ChangeStatus(ctx, user.ID, entity.AccountStatusActive, "admin-1"))

		updated, err := env.userRepo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.AccountStatusActive, updated.Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		user := testUser()
		env := newUserTestEnv(t, user)

		err := env.users.ChangeStatus(ctx, user.ID, "SUSPENDED", "admin-1")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrInvalidArgument))
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	user := testUser()
	env := newUserTestEnv(t, user)

	_, err := env.tokens.IssueInitial(ctx, user, "access-0")
	require.NoError(t, err)

	require.NoError(t, env.users.Delete(ctx, user.ID, "admin-1"))

	deleted, err := env.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, deleted)
	assert.Equal(t, 0, env.tokenRepo.activeCount(user.ID))
}
