package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/internal/service/storage"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

const defaultSearchLimit = 100

// GalleryService folds approved submissions into gallery groups.
type GalleryService struct {
	repo        repository.Repository
	storage     storage.BlobStorage
	logger      *logger.Logger
	searchLimit int
}

func NewGalleryService(repo repository.Repository, blobStorage storage.BlobStorage, logger *logger.Logger) *GalleryService {
	return &GalleryService{
		repo:        repo,
		storage:     blobStorage,
		logger:      logger,
		searchLimit: defaultSearchLimit,
	}
}

// ListApproved returns every approved group of an active country, newest
// group first. It reads the store on every call.
func (s *GalleryService) ListApproved(ctx context.Context, countryID string) ([]domain.Group, error) {
	if err := s.ensureActiveCountry(ctx, countryID); err != nil {
		return nil, err
	}

	submissions, err := s.repo.Submission().ListApproved(ctx, countryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	return s.group(ctx, submissions)
}

// Search runs a full text query over caption, author and story and groups
// the approved hits the same way ListApproved does.
func (s *GalleryService) Search(ctx context.Context, countryID, query string) ([]domain.Group, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingFields
	}

	if err := s.ensureActiveCountry(ctx, countryID); err != nil {
		return nil, err
	}

	ids, err := s.repo.Search().Search(ctx, countryID, query, s.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	hits, err := s.repo.Submission().ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	// The index trails the database; drop anything deleted, unapproved or moved.
	submissions := make([]domain.Submission, 0, len(hits))
	for _, sub := range hits {
		if sub.CountryID == countryID && sub.Approved {
			submissions = append(submissions, sub)
		}
	}
	slices.SortStableFunc(submissions, func(a, b domain.Submission) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	return s.group(ctx, submissions)
}

func (s *GalleryService) ensureActiveCountry(ctx context.Context, countryID string) error {
	if countryID == "" {
		return ErrTenantNotFound
	}
	if _, err := s.repo.Country().GetActiveByID(ctx, countryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTenantNotFound
		}
		return fmt.Errorf("%w: %w", ErrStoreRead, err)
	}
	return nil
}

func (s *GalleryService) group(ctx context.Context, submissions []domain.Submission) ([]domain.Group, error) {
	batchIDs := make([]string, 0)
	seen := make(map[string]struct{})
	for _, sub := range submissions {
		if sub.BatchID == nil {
			continue
		}
		if _, ok := seen[*sub.BatchID]; ok {
			continue
		}
		seen[*sub.BatchID] = struct{}{}
		batchIDs = append(batchIDs, *sub.BatchID)
	}

	batches, err := s.repo.Batch().ListByIDs(ctx, batchIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	byID := make(map[string]domain.Batch, len(batches))
	for _, b := range batches {
		byID[b.ID] = b
	}

	return GroupSubmissions(submissions, byID, s.storage.PublicURL), nil
}

// GroupSubmissions folds submissions, given newest first, into groups keyed
// by the storage path prefix. Group metadata comes from the batch when the
// submission belongs to a known one and otherwise from the first submission
// seen for the key. Images are ordered oldest first and groups newest first.
func GroupSubmissions(submissions []domain.Submission, batches map[string]domain.Batch, publicURL func(string) string) []domain.Group {
	index := make(map[string]int)
	groups := make([]domain.Group, 0)

	for _, sub := range submissions {
		key := domain.GroupKeyFromPath(sub.StoragePath)

		i, ok := index[key]
		if !ok {
			g := domain.Group{
				GroupKey:   key,
				CountryID:  sub.CountryID,
				Caption:    sub.Caption,
				AuthorName: sub.AuthorName,
				Story:      sub.Story,
				CreatedAt:  sub.CreatedAt,
				Legacy:     domain.IsLegacyPath(sub.StoragePath),
			}
			if sub.BatchID != nil {
				if b, found := batches[*sub.BatchID]; found && b.GroupKey() == key {
					g.Caption = b.Caption
					g.AuthorName = b.AuthorName
					g.Story = b.Story
					g.CreatedAt = b.CreatedAt
				}
			}
			groups = append(groups, g)
			i = len(groups) - 1
			index[key] = i
		}

		groups[i].Images = append(groups[i].Images, domain.GalleryImage{
			ID:          sub.ID,
			StoragePath: sub.StoragePath,
			PublicURL:   publicURL(sub.StoragePath),
			CreatedAt:   sub.CreatedAt,
		})
	}

	for i := range groups {
		slices.SortStableFunc(groups[i].Images, func(a, b domain.GalleryImage) int {
			if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
				return c
			}
			return cmp.Compare(a.StoragePath, b.StoragePath)
		})
	}

	slices.SortStableFunc(groups, func(a, b domain.Group) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.GroupKey, b.GroupKey)
	})

	return groups
}
