package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/repository"
)

type AccessCodeRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAccessCodeRepository(writerDB, readerDB *gorm.DB) *AccessCodeRepository {
	return &AccessCodeRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AccessCodeRepository) Create(ctx context.Context, code *domain.AccessCode) error {
	return r.writerDB.WithContext(ctx).Create(code).Error
}

// ListByCountry reads from the writer so a validation that precedes an
// upload never sees a stale used_count from a lagging replica.
func (r *AccessCodeRepository) ListByCountry(ctx context.Context, countryID string) ([]domain.AccessCode, error) {
	var codes []domain.AccessCode
	if err := r.writerDB.WithContext(ctx).
		Where("country_id = ?", countryID).
		Order("created_at ASC, id ASC").
		Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

// IncrementUsage adds one use only while the code is still within its cap and
// expiry, so two concurrent submissions cannot both spend the last use.
func (r *AccessCodeRepository) IncrementUsage(ctx context.Context, id string, now time.Time) error {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.AccessCode{}).
		Where("id = ?", id).
		Where("max_uses IS NULL OR used_count < max_uses").
		Where("expires_at IS NULL OR expires_at > ?", now).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrCodeExhausted
	}
	return nil
}
