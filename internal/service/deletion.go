package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/metrics"
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/internal/service/storage"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
	"github.com/kingrain94/country-gallery-api/pkg/utils"
)

const (
	DeleteModeGroup      = "group"
	DeleteModeSubmission = "submission"
)

// DeleteRequest targets a whole group or a single submission. GroupKey wins
// when both are set.
type DeleteRequest struct {
	AdminCode    string
	GroupKey     string
	SubmissionID string
}

type DeleteResult struct {
	Mode    string
	Target  string
	Deleted int64
}

// DeletionService removes gallery groups and single submissions on behalf of
// an administrator. Blob removal is best effort; record removal is not.
type DeletionService struct {
	repo      repository.Repository
	storage   storage.BlobStorage
	queue     QueueService
	publisher EventPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewDeletionService(
	repo repository.Repository,
	blobStorage storage.BlobStorage,
	queue QueueService,
	publisher EventPublisher,
	logger *logger.Logger,
) *DeletionService {
	return &DeletionService{
		repo:      repo,
		storage:   blobStorage,
		queue:     queue,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *DeletionService) Delete(ctx context.Context, req DeleteRequest) (*DeleteResult, error) {
	groupKey := strings.TrimSuffix(strings.TrimSpace(req.GroupKey), "/")
	submissionID := strings.TrimSpace(req.SubmissionID)

	if req.AdminCode == "" || (groupKey == "" && submissionID == "") {
		return nil, ErrMissingFields
	}

	var countryID, batchID string
	if groupKey != "" {
		var ok bool
		if countryID, batchID, ok = splitGroupKey(groupKey); !ok {
			return nil, fmt.Errorf("%w: group key must look like countryId/batchId", ErrMissingFields)
		}
	}

	if err := s.authorize(ctx, req.AdminCode); err != nil {
		return nil, err
	}

	if groupKey != "" {
		return s.deleteGroup(ctx, countryID, batchID)
	}
	return s.deleteSubmission(ctx, submissionID)
}

// splitGroupKey accepts exactly two non-empty segments. Anything shorter
// would turn into a prefix covering a whole country.
func splitGroupKey(groupKey string) (countryID, batchID string, ok bool) {
	parts := strings.Split(groupKey, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (s *DeletionService) authorize(ctx context.Context, adminCode string) error {
	ok, err := s.repo.AdminCode().ExistsByHash(ctx, utils.SHA1Hex(adminCode))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreRead, err)
	}
	if !ok {
		return ErrUnauthorized
	}
	return nil
}

// deleteGroup removes every submission stored under groupKey/ together with
// its batch. A group with no rows is already gone and counts as success.
func (s *DeletionService) deleteGroup(ctx context.Context, countryID, batchID string) (*DeleteResult, error) {
	groupKey := countryID + "/" + batchID
	prefix := groupKey + "/"

	rows, err := s.repo.Submission().ListByPathPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	paths := make([]string, len(rows))
	ids := make([]string, len(rows))
	for i, row := range rows {
		paths[i] = row.StoragePath
		ids[i] = row.ID
	}
	s.removeBlobs(ctx, countryID, paths, "group delete")

	var deleted int64
	err = s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		n, err := tx.Submission().DeleteByPathPrefix(ctx, prefix)
		if err != nil {
			return err
		}
		deleted = n
		// the batch row may outlive its submissions, so it goes even when no rows matched
		for _, id := range batchIDsOf(rows, batchID) {
			if err := tx.Batch().Delete(ctx, countryID, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordWrite, err)
	}

	metrics.RecordDeletion(DeleteModeGroup, deleted)
	s.afterDelete(ctx, countryID, groupKey, ids)

	return &DeleteResult{Mode: DeleteModeGroup, Target: groupKey, Deleted: deleted}, nil
}

func (s *DeletionService) deleteSubmission(ctx context.Context, id string) (*DeleteResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSubmissionNotFound
	}

	sub, err := s.repo.Submission().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrStoreRead, err)
	}

	s.removeBlobs(ctx, sub.CountryID, []string{sub.StoragePath}, "submission delete")

	err = s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		if err := tx.Submission().Delete(ctx, sub.ID); err != nil {
			return err
		}
		if sub.BatchID == nil {
			return nil
		}
		return tx.Batch().DeleteIfEmpty(ctx, sub.CountryID, *sub.BatchID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRecordWrite, err)
	}

	metrics.RecordDeletion(DeleteModeSubmission, 1)
	s.afterDelete(ctx, sub.CountryID, domain.GroupKeyFromPath(sub.StoragePath), []string{sub.ID})

	return &DeleteResult{Mode: DeleteModeSubmission, Target: sub.ID, Deleted: 1}, nil
}

// removeBlobs never fails the deletion; what it cannot remove is logged and
// queued for the cleanup worker.
func (s *DeletionService) removeBlobs(ctx context.Context, countryID string, paths []string, reason string) {
	if len(paths) == 0 {
		return
	}

	err := s.storage.Remove(ctx, paths)
	if err == nil {
		return
	}

	s.logger.Warn("Failed to remove blobs, queueing cleanup",
		zap.Error(err),
		zap.String("country_id", countryID),
		zap.Strings("storage_paths", paths),
	)
	qctx := context.WithoutCancel(ctx)
	if qerr := s.queue.SendCleanupMessage(qctx, countryID, paths, reason); qerr != nil {
		s.logger.Error("Failed to queue blob cleanup", qerr, zap.Strings("storage_paths", paths))
	}
}

func (s *DeletionService) afterDelete(ctx context.Context, countryID, groupKey string, ids []string) {
	if len(ids) == 0 {
		return
	}

	if err := s.queue.SendDeindexMessage(ctx, countryID, ids); err != nil {
		s.logger.Warn("Failed to queue search removal", zap.Error(err), zap.String("group_key", groupKey))
	}

	event := &domain.GalleryEvent{
		Type:          domain.GalleryEventBatchDeleted,
		CountryID:     countryID,
		GroupKey:      groupKey,
		SubmissionIDs: ids,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish gallery event", zap.Error(err), zap.String("group_key", groupKey))
	}
}

// batchIDsOf lists the batch named by the group key followed by any other
// batch the rows reference.
func batchIDsOf(rows []domain.Submission, keyBatchID string) []string {
	seen := map[string]struct{}{keyBatchID: {}}
	ids := []string{keyBatchID}
	for _, row := range rows {
		if row.BatchID == nil {
			continue
		}
		if _, ok := seen[*row.BatchID]; ok {
			continue
		}
		seen[*row.BatchID] = struct{}{}
		ids = append(ids, *row.BatchID)
	}
	return ids
}
