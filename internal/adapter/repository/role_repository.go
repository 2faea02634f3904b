package repository

import (
	"context"
	"errors"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/infrastructure/db/model"
	"gorm.io/gorm"
)

type RoleRepositoryImpl struct {
	db *gorm.DB
}

// NewRoleRepository 역할 레포지토리 구현체 생성
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

func toRoleEntity(m *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
	}
}

// FindByID ID로 역할 조회
func (r *RoleRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Role, error) {
	var roleModel model.RoleModel

	if err := r.db.WithContext(ctx).First(&roleModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toRoleEntity(&roleModel), nil
}

// FindByName 이름으로 역할 조회
func (r *RoleRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var roleModel model.RoleModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&roleModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toRoleEntity(&roleModel), nil
}

// List 모든 역할 조회
func (r *RoleRepositoryImpl) List(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []model.RoleModel

	if err := r.db.WithContext(ctx).Order("id").Find(&roleModels).Error; err != nil {
		return nil, err
	}

	roles := make([]*entity.Role, len(roleModels))
	for i := range roleModels {
		roles[i] = toRoleEntity(&roleModels[i])
	}
	return roles, nil
}

// Create 새 역할 생성
func (r *RoleRepositoryImpl) Create(ctx context.Context, role *entity.Role) error {
	roleModel := &model.RoleModel{
		Name:        role.Name,
		Description: role.Description,
	}

	if err := r.db.WithContext(ctx).Create(roleModel).Error; err != nil {
		return err
	}

	role.ID = roleModel.ID
	return nil
}
