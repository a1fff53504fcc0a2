package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/repository"
)

type postgresRepository struct {
	writerDB       *gorm.DB
	readerDB       *gorm.DB
	countryRepo    repository.CountryRepository
	accessCodeRepo repository.AccessCodeRepository
	submissionRepo repository.SubmissionRepository
	batchRepo      repository.BatchRepository
	adminCodeRepo  repository.AdminCodeRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		writerDB:       writerDB,
		readerDB:       readerDB,
		countryRepo:    NewCountryRepository(writerDB, readerDB),
		accessCodeRepo: NewAccessCodeRepository(writerDB, readerDB),
		submissionRepo: NewSubmissionRepository(writerDB, readerDB),
		batchRepo:      NewBatchRepository(writerDB, readerDB),
		adminCodeRepo:  NewAdminCodeRepository(writerDB, readerDB),
	}
}

func (r *postgresRepository) Country() repository.CountryRepository {
	return r.countryRepo
}

func (r *postgresRepository) AccessCode() repository.AccessCodeRepository {
	return r.accessCodeRepo
}

func (r *postgresRepository) Submission() repository.SubmissionRepository {
	return r.submissionRepo
}

func (r *postgresRepository) Batch() repository.BatchRepository {
	return r.batchRepo
}

func (r *postgresRepository) AdminCode() repository.AdminCodeRepository {
	return r.adminCodeRepo
}

// Transaction binds reads and writes to the same writer transaction so
// everything fn does commits or rolls back together.
func (r *postgresRepository) Transaction(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgresRepository(tx, tx))
	})
}
