package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// ClientUseCase 고객사 관리 유스케이스 구현체
type ClientUseCase struct {
	logger            *zap.Logger
	clientRepository  repository.ClientRepository
	countryRepository repository.CountryRepository
}

// NewClientUseCase 새 고객사 유스케이스 생성
func NewClientUseCase(
	logger *zap.Logger,
	clientRepo repository.ClientRepository,
	countryRepo repository.CountryRepository,
) interfaces.ClientUseCase {
	return &ClientUseCase{
		logger:            logger,
		clientRepository:  clientRepo,
		countryRepository: countryRepo,
	}
}

// Create 새 고객사 등록
func (uc *ClientUseCase) Create(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	if client.Name == "" {
		return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "고객사 이름은 필수입니다", nil)
	}

	// 국가 코드 참조 확인
	if client.CountryCode != "" {
		country, err := uc.countryRepository.FindByCode(ctx, client.CountryCode)
		if err != nil {
			uc.logger.Error("국가 조회 실패", zap.Error(err))
			return nil, fmt.Errorf("국가 조회 실패: %w", err)
		}
		if country == nil {
			return nil, apperrors.NewAppError(apperrors.ErrInvalidArgument, "유효하지 않은 국가 코드입니다", nil)
		}
	}

	id, err := NewEntityID()
	if err != nil {
		return nil, err
	}
	client.ID = id
	client.IsActive = true

	if err := uc.clientRepository.Create(ctx, client); err != nil {
		uc.logger.Error("고객사 생성 실패", zap.Error(err))
		return nil, fmt.Errorf("고객사 생성 실패: %w", err)
	}

	return client, nil
}

// Get ID로 고객사 조회
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*entity.Client, error) {
	client, err := uc.clientRepository.FindByID(ctx, id)
	if err != nil {
		uc.logger.Error("고객사 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("고객사 조회 실패: %w", err)
	}

	if client == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "고객사를 찾을 수 없습니다", nil)
	}

	return client, nil
}

// List 고객사 목록 조회
func (uc *ClientUseCase) List(ctx context.Context, page, limit int) ([]*entity.Client, int64, error) {
	return uc.clientRepository.List(ctx, page, limit)
}

// Update 고객사 정보 수정
func (uc *ClientUseCase) Update(ctx context.Context, client *entity.Client) (*entity.Client, error) {
	existing, err := uc.Get(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	if client.Name != "" {
		existing.Name = client.Name
	}
	if client.ContactPerson != "" {
		existing.ContactPerson = client.ContactPerson
	}
	if client.ContactEmail != "" {
		existing.ContactEmail = client.ContactEmail
	}
	if client.ContactPhone != "" {
		existing.ContactPhone = client.ContactPhone
	}
	if client.CountryCode != "" {
		existing.CountryCode = client.CountryCode
	}
	if client.Address != "" {
		existing.Address = client.Address
	}
	existing.IsActive = client.IsActive

	if err := uc.clientRepository.Update(ctx, existing); err != nil {
		uc.logger.Error("고객사 수정 실패", zap.Error(err))
		return nil, fmt.Errorf("고객사 수정 실패: %w", err)
	}

	return existing, nil
}

// Delete 고객사 삭제
func (uc *ClientUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}

	if err := uc.clientRepository.Delete(ctx, id); err != nil {
		uc.logger.Error("고객사 삭제 실패", zap.Error(err))
		return fmt.Errorf("고객사 삭제 실패: %w", err)
	}

	return nil
}
