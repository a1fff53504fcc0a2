package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

type CountryRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCountryRepository(writerDB, readerDB *gorm.DB) *CountryRepository {
	return &CountryRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CountryRepository) ListActive(ctx context.Context) ([]domain.Country, error) {
	var countries []domain.Country
	if err := r.readerDB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name").
		Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountryRepository) GetActiveBySlug(ctx context.Context, slug string) (*domain.Country, error) {
	var country domain.Country
	if err := r.readerDB.WithContext(ctx).
		First(&country, "slug = ? AND is_active = ?", slug, true).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// GetActiveByID treats an id that is not a UUID as missing rather than
// letting postgres reject the cast.
func (r *CountryRepository) GetActiveByID(ctx context.Context, id string) (*domain.Country, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, gorm.ErrRecordNotFound
	}

	var country domain.Country
	if err := r.readerDB.WithContext(ctx).
		First(&country, "id = ? AND is_active = ?", id, true).Error; err != nil {
		return nil, err
	}
	return &country, nil
}
