package repository

import (
	"context"
	"errors"
	"time"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

// ErrCodeExhausted is returned by IncrementUsage when the guarded update
// matched no row: the code expired or hit its cap since it was read.
var ErrCodeExhausted = errors.New("access code exhausted")

//go:generate mockery --name CountryRepository --output ../mocks
type CountryRepository interface {
	ListActive(ctx context.Context) ([]domain.Country, error)
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Country, error)
	GetActiveByID(ctx context.Context, id string) (*domain.Country, error)
}

//go:generate mockery --name AccessCodeRepository --output ../mocks
type AccessCodeRepository interface {
	Create(ctx context.Context, code *domain.AccessCode) error
	// ListByCountry returns every code of the country ordered by created_at, id.
	ListByCountry(ctx context.Context, countryID string) ([]domain.AccessCode, error)
	IncrementUsage(ctx context.Context, id string, now time.Time) error
}

//go:generate mockery --name SubmissionRepository --output ../mocks
type SubmissionRepository interface {
	BulkCreate(ctx context.Context, submissions []domain.Submission) error
	GetByID(ctx context.Context, id string) (*domain.Submission, error)
	// ListApproved returns approved submissions newest first.
	ListApproved(ctx context.Context, countryID string) ([]domain.Submission, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.Submission, error)
	ListByPathPrefix(ctx context.Context, prefix string) ([]domain.Submission, error)
	DeleteByPathPrefix(ctx context.Context, prefix string) (int64, error)
	Delete(ctx context.Context, id string) error
}

//go:generate mockery --name BatchRepository --output ../mocks
type BatchRepository interface {
	Create(ctx context.Context, batch *domain.Batch) error
	ListByIDs(ctx context.Context, ids []string) ([]domain.Batch, error)
	Delete(ctx context.Context, countryID, id string) error
	DeleteIfEmpty(ctx context.Context, countryID, id string) error
}

//go:generate mockery --name AdminCodeRepository --output ../mocks
type AdminCodeRepository interface {
	Create(ctx context.Context, code *domain.AdminDeleteCode) error
	ExistsByHash(ctx context.Context, codeHash string) (bool, error)
}

//go:generate mockery --name SearchRepository --output ../mocks
type SearchRepository interface {
	IndexSubmissions(ctx context.Context, submissions []domain.Submission) error
	DeleteSubmissions(ctx context.Context, countryID string, ids []string) error
	// Search returns the ids of matching approved submissions, best match first.
	Search(ctx context.Context, countryID, query string, limit int) ([]string, error)
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	Country() CountryRepository
	AccessCode() AccessCodeRepository
	Submission() SubmissionRepository
	Batch() BatchRepository
	AdminCode() AdminCodeRepository
	// Transaction runs fn against repositories bound to a single transaction.
	Transaction(ctx context.Context, fn func(tx PostgresRepository) error) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	Search() SearchRepository
}
