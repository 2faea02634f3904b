package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/dto"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// UserUseCase 사용자 관리 유스케이스 구현체
type UserUseCase struct {
	logger          *zap.Logger
	hashCost        int
	userRepository  repository.UserRepository
	roleRepository  repository.RoleRepository
	auditRepository repository.AuditLogRepository
	tokenUseCase    interfaces.TokenUseCase
	emailUseCase    interfaces.EmailUseCase
}

// NewUserUseCase 새 사용자 관리 유스케이스 생성
func NewUserUseCase(
	logger *zap.Logger,
	hashCost int,
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	auditRepo repository.AuditLogRepository,
	tokenUC interfaces.TokenUseCase,
	emailUC interfaces.EmailUseCase,
) interfaces.UserUseCase {
	return &UserUseCase{
		logger:          logger,
		hashCost:        hashCost,
		userRepository:  userRepo,
		roleRepository:  roleRepo,
		auditRepository: auditRepo,
		tokenUseCase:    tokenUC,
		emailUseCase:    emailUC,
	}
}

// Create 새 사용자를 생성하고 임시 비밀번호를 이메일로 안내합니다
func (uc *UserUseCase) Create(ctx context.Context, params dto.CreateUserParams) (*entity.User, error) {
	// 1. 입력 검증
	if !isValidEmail(params.Username) {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 이메일 형식입니다", nil)
	}

	// 2. 중복 확인
	existing, err := uc.userRepository.FindByUsername(ctx, params.Username)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if existing != nil {
		return nil, apperrors.NewAppError(apperrors.ErrConflict, "이미 등록된 사용자입니다", nil)
	}

	// 3. 역할 조회
	role, err := uc.roleRepository.FindByName(ctx, params.RoleName)
	if err != nil {
		uc.logger.Error("역할 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("역할 조회 실패: %w", err)
	}

	if role == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "역할을 찾을 수 없습니다", nil)
	}

	// 4. 임시 비밀번호 생성 및 해싱
	tempPassword := GenerateRandomString(12)
	hashedPassword, salt, err := HashPassword(tempPassword, uc.hashCost)
	if err != nil {
		return nil, fmt.Errorf("비밀번호 해싱 실패: %w", err)
	}

	// 5. 사용자 생성
	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}

	email := params.Email
	if email == "" {
		email = params.Username
	}

	user, err := entity.NewUser(id, params.Username, params.Name, email, hashedPassword, salt, role.ID)
	if err != nil {
		return nil, err
	}
	user.RoleName = role.Name

	if err := uc.userRepository.Create(ctx, user); err != nil {
		uc.logger.Error("사용자 생성 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 생성 실패: %w", err)
	}

	// 6. 임시 비밀번호 안내 메일 발송
	go func() {
		bgCtx := context.Background()
		if err := uc.emailUseCase.SendWelcomeEmail(bgCtx, user.Email, user.Name, user.Username, tempPassword); err != nil {
			uc.logger.Error("환영 이메일 발송 실패", zap.Error(err))
		}
	}()

	uc.recordAudit(ctx, &params.ActorID, entity.AuditLogTypeUserCreated, map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     role.Name,
	})

	return user, nil
}

// Get ID로 사용자 조회
func (uc *UserUseCase) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepository.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("사용자 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}

	if user == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "사용자를 찾을 수 없습니다", nil)
	}

	return user, nil
}

// List 사용자 목록 조회
func (uc *UserUseCase) List(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	return uc.userRepository.List(ctx, page, limit)
}

// Update 사용자 기본 정보 수정
func (uc *UserUseCase) Update(ctx context.Context, params dto.UpdateUserParams) (*entity.User, error) {
	user, err := uc.Get(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	if params.Name != "" {
		user.Name = params.Name
	}
	if params.Email != "" {
		if !isValidEmail(params.Email) {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 이메일 형식입니다", nil)
		}
		user.Email = params.Email
	}

	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Error("사용자 수정 실패", zap.Error(err))
		return nil, fmt.Errorf("사용자 수정 실패: %w", err)
	}

	return user, nil
}

// ChangeRole 사용자 역할 변경. 변경 후 기존 세션을 모두 철회합니다
func (uc *UserUseCase) ChangeRole(ctx context.Context, userID, roleName, actorID string) error {
	user, err := uc.Get(ctx, userID)
	if err != nil {
		return err
	}

	role, err := uc.roleRepository.FindByName(ctx, roleName)
	if err != nil {
		uc.logger.Error("역할 조회 실패", zap.Error(err))
		return fmt.Errorf("역할 조회 실패: %w", err)
	}

	if role == nil {
		return apperrors.NewAppError(apperrors.ErrNotFound, "역할을 찾을 수 없습니다", nil)
	}

	if user.RoleID == role.ID {
		return nil
	}

	previousRole := user.RoleName
	user.RoleID = role.ID
	user.RoleName = role.Name

	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Error("역할 변경 저장 실패", zap.Error(err))
		return fmt.Errorf("역할 변경 저장 실패: %w", err)
	}

	// 권한이 달라졌으므로 기존 세션 전체 철회. 실패해도 변경 자체는 유지
	if _, err := uc.tokenUseCase.RevokeAllForUser(ctx, user.ID); err != nil {
		uc.logger.Warn("역할 변경 후 세션 철회 실패",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	uc.recordAudit(ctx, &actorID, entity.AuditLogTypeUserRoleChanged, map[string]interface{}{
		"user_id":       user.ID,
		"previous_role": previousRole,
		"new_role":      role.Name,
	})

	return nil
}

// ChangeStatus 계정 상태 변경. 비활성화 시 기존 세션을 모두 철회합니다
func (uc *UserUseCase) ChangeStatus(ctx context.Context, userID, status, actorID string) error {
	switch status {
	case entity.AccountStatusActive, entity.AccountStatusInactive, entity.AccountStatusLocked:
	default:
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 계정 상태입니다", nil)
	}

	user, err := uc.Get(ctx, userID)
	if err != nil {
		return err
	}

	if user.Status == status {
		return nil
	}

	previousStatus := user.Status
	user.Status = status

	if err := uc.userRepository.Update(ctx, user); err != nil {
		uc.logger.Error("계정 상태 변경 저장 실패", zap.Error(err))
		return fmt.Errorf("계정 상태 변경 저장 실패: %w", err)
	}

	// 비활성 상태로 전환되면 기존 세션 전체 철회
	if status != entity.AccountStatusActive {
		if _, err := uc.tokenUseCase.RevokeAllForUser(ctx, user.ID); err != nil {
			uc.logger.Warn("계정 상태 변경 후 세션 철회 실패",
				zap.String("user_id", user.ID),
				zap.Error(err))
		}
	}

	uc.recordAudit(ctx, &actorID, entity.AuditLogTypeUserStatusChanged, map[string]interface{}{
		"user_id":         user.ID,
		"previous_status": previousStatus,
		"new_status":      status,
	})

	return nil
}

// Delete 사용자 삭제. 삭제 전 모든 세션을 철회합니다
func (uc *UserUseCase) Delete(ctx context.Context, userID, actorID string) error {
	user, err := uc.Get(ctx, userID)
	if err != nil {
		return err
	}

	if _, err := uc.tokenUseCase.RevokeAllForUser(ctx, user.ID); err != nil {
		uc.logger.Warn("사용자 삭제 전 세션 철회 실패",
			zap.String("user_id", user.ID),
			zap.Error(err))
	}

	if err := uc.userRepository.Delete(ctx, user.ID); err != nil {
		uc.logger.Error("사용자 삭제 실패", zap.Error(err))
		return fmt.Errorf("사용자 삭제 실패: %w", err)
	}

	uc.recordAudit(ctx, &actorID, entity.AuditLogTypeUserStatusChanged, map[string]interface{}{
		"user_id": user.ID,
		"deleted": true,
	})

	return nil
}

// recordAudit 감사 로그 기록. 실패해도 본 처리에는 영향을 주지 않습니다
func (uc *UserUseCase) recordAudit(ctx context.Context, actorID *string, logType entity.AuditLogType, content map[string]interface{}) {
	auditLog := entity.NewAuditLog(actorID, logType, content)
	if err := uc.auditRepository.Create(ctx, auditLog); err != nil {
		uc.logger.Warn("감사 로그 저장 실패",
			zap.String("type", string(logType)),
			zap.Error(err))
	}
}
