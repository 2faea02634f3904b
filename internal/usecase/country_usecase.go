package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
	"github.com/shri210404/pmsnew-sub000/internal/domain/repository"
	"github.com/shri210404/pmsnew-sub000/internal/usecase/interfaces"
	apperrors "github.com/shri210404/pmsnew-sub000/pkg/errors"
)

// CountryUseCase 국가 참조 데이터 유스케이스 구현체
type CountryUseCase struct {
	logger            *zap.Logger
	countryRepository repository.CountryRepository
}

// NewCountryUseCase 새 국가 유스케이스 생성
func NewCountryUseCase(
	logger *zap.Logger,
	countryRepo repository.CountryRepository,
) interfaces.CountryUseCase {
	return &CountryUseCase{
		logger:            logger,
		countryRepository: countryRepo,
	}
}

// Get 코드로 국가 조회
func (uc *CountryUseCase) Get(ctx context.Context, code string) (*entity.Country, error) {
	country, err := uc.countryRepository.FindByCode(ctx, strings.ToUpper(code))
	if err != nil {
		uc.logger.Error("국가 조회 실패", zap.Error(err))
		return nil, fmt.Errorf("국가 조회 실패: %w", err)
	}

	if country == nil {
		return nil, apperrors.NewAppError(apperrors.ErrNotFound, "국가를 찾을 수 없습니다", nil)
	}

	return country, nil
}

// List 전체 국가 목록 조회
func (uc *CountryUseCase) List(ctx context.Context) ([]*entity.Country, error) {
	return uc.countryRepository.List(ctx)
}

// Upsert 국가 정보 등록 또는 갱신
func (uc *CountryUseCase) Upsert(ctx context.Context, country *entity.Country) error {
	country.Code = strings.ToUpper(country.Code)
	if len(country.Code) != 2 {
		return apperrors.NewAppError(apperrors.ErrInvalidArgument, "국가 코드는 2자리여야 합니다", nil)
	}

	if err := uc.countryRepository.Upsert(ctx, country); err != nil {
		uc.logger.Error("국가 저장 실패", zap.Error(err))
		return fmt.Errorf("국가 저장 실패: %w", err)
	}

	return nil
}
