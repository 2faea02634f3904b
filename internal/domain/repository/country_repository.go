package repository

import (
	"context"

	"github.com/shri210404/pmsnew-sub000/internal/domain/entity"
)

// CountryRepository 국가 참조 데이터 저장소 인터페이스
type CountryRepository interface {
	// FindByCode 국가 코드로 조회
	FindByCode(ctx context.Context, code string) (*entity.Country, error)

	// List 모든 국가 조회
	List(ctx context.Context) ([]*entity.Country, error)

	// Upsert 국가 생성 또는 갱신
	Upsert(ctx context.Context, country *entity.Country) error
}
