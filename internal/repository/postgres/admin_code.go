package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

type AdminCodeRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAdminCodeRepository(writerDB, readerDB *gorm.DB) *AdminCodeRepository {
	return &AdminCodeRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AdminCodeRepository) Create(ctx context.Context, code *domain.AdminDeleteCode) error {
	return r.writerDB.WithContext(ctx).Create(code).Error
}

func (r *AdminCodeRepository) ExistsByHash(ctx context.Context, codeHash string) (bool, error) {
	var count int64
	if err := r.readerDB.WithContext(ctx).
		Model(&domain.AdminDeleteCode{}).
		Where("code_hash = ?", codeHash).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
