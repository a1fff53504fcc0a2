package composite

import (
	"context"

	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/internal/repository/opensearch"
	"github.com/kingrain94/country-gallery-api/internal/repository/postgres"
)

type compositeRepository struct {
	postgresRepo repository.PostgresRepository
	searchRepo   repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		postgresRepo: postgres.NewPostgresRepository(dbConnections),
		searchRepo:   opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Country() repository.CountryRepository {
	return r.postgresRepo.Country()
}

func (r *compositeRepository) AccessCode() repository.AccessCodeRepository {
	return r.postgresRepo.AccessCode()
}

func (r *compositeRepository) Submission() repository.SubmissionRepository {
	return r.postgresRepo.Submission()
}

func (r *compositeRepository) Batch() repository.BatchRepository {
	return r.postgresRepo.Batch()
}

func (r *compositeRepository) AdminCode() repository.AdminCodeRepository {
	return r.postgresRepo.AdminCode()
}

func (r *compositeRepository) Transaction(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.postgresRepo.Transaction(ctx, fn)
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
