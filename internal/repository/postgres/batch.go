package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

type BatchRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBatchRepository(writerDB, readerDB *gorm.DB) *BatchRepository {
	return &BatchRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BatchRepository) Create(ctx context.Context, batch *domain.Batch) error {
	return r.writerDB.WithContext(ctx).Create(batch).Error
}

func (r *BatchRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Batch, error) {
	if len(ids) == 0 {
		return []domain.Batch{}, nil
	}
	var batches []domain.Batch
	if err := r.readerDB.WithContext(ctx).Where("id IN ?", ids).Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *BatchRepository) Delete(ctx context.Context, countryID, id string) error {
	return r.writerDB.WithContext(ctx).
		Delete(&domain.Batch{}, "country_id = ? AND id = ?", countryID, id).Error
}

// DeleteIfEmpty removes the batch once no submission references it.
func (r *BatchRepository) DeleteIfEmpty(ctx context.Context, countryID, id string) error {
	return r.writerDB.WithContext(ctx).
		Where("country_id = ? AND id = ?", countryID, id).
		Where("NOT EXISTS (SELECT 1 FROM submissions WHERE submissions.batch_id = batches.id)").
		Delete(&domain.Batch{}).Error
}
