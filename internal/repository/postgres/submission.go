package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

type SubmissionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubmissionRepository(writerDB, readerDB *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubmissionRepository) BulkCreate(ctx context.Context, submissions []domain.Submission) error {
	if len(submissions) == 0 {
		return nil
	}
	return r.writerDB.WithContext(ctx).Create(&submissions).Error
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	var submission domain.Submission
	if err := r.writerDB.WithContext(ctx).First(&submission, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *SubmissionRepository) ListApproved(ctx context.Context, countryID string) ([]domain.Submission, error) {
	var submissions []domain.Submission
	if err := r.readerDB.WithContext(ctx).
		Where("country_id = ? AND approved = ?", countryID, true).
		Order("created_at DESC, id DESC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.Submission, error) {
	if len(ids) == 0 {
		return []domain.Submission{}, nil
	}
	var submissions []domain.Submission
	if err := r.readerDB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) ListByPathPrefix(ctx context.Context, prefix string) ([]domain.Submission, error) {
	var submissions []domain.Submission
	if err := r.writerDB.WithContext(ctx).
		Scopes(pathPrefixScope(prefix)).
		Order("created_at ASC, id ASC").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *SubmissionRepository) DeleteByPathPrefix(ctx context.Context, prefix string) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Scopes(pathPrefixScope(prefix)).
		Delete(&domain.Submission{})
	return result.RowsAffected, result.Error
}

func (r *SubmissionRepository) Delete(ctx context.Context, id string) error {
	return r.writerDB.WithContext(ctx).Delete(&domain.Submission{}, "id = ?", id).Error
}
