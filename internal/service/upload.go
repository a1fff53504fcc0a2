package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/metrics"
	"github.com/kingrain94/country-gallery-api/internal/repository"
	"github.com/kingrain94/country-gallery-api/internal/service/storage"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

// compensationTimeout bounds blob cleanup after the caller has gone away.
const compensationTimeout = 30 * time.Second

// allowedContentTypes maps accepted image types to their file extension.
var allowedContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}

type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type SubmitRequest struct {
	CountrySlug string
	AccessCode  string
	Caption     string
	AuthorName  string
	Story       string
	Files       []UploadFile
}

type UploadedImage struct {
	SubmissionID string
	StoragePath  string
	PublicURL    string
}

type SubmitResult struct {
	CountryID string
	BatchID   string
	GroupKey  string
	Uploaded  []UploadedImage
}

// UploadService turns one multi-file upload into a batch: every file lands
// under countryID/batchID/ and the access code is spent exactly once.
type UploadService struct {
	repo      repository.Repository
	storage   storage.BlobStorage
	queue     QueueService
	publisher EventPublisher
	validator *AccessCodeValidator
	policy    config.UploadConfig
	logger    *logger.Logger
	now       func() time.Time
}

func NewUploadService(
	repo repository.Repository,
	blobStorage storage.BlobStorage,
	queue QueueService,
	publisher EventPublisher,
	validator *AccessCodeValidator,
	policy config.UploadConfig,
	logger *logger.Logger,
) *UploadService {
	return &UploadService{
		repo:      repo,
		storage:   blobStorage,
		queue:     queue,
		publisher: publisher,
		validator: validator,
		policy:    policy,
		logger:    logger,
		now:       time.Now,
	}
}

type stagedFile struct {
	file UploadFile
	path string
}

func (s *UploadService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	start := time.Now()
	result, err := s.submit(ctx, req)
	metrics.RecordUpload(uploadOutcome(err), len(req.Files), time.Since(start).Seconds())
	return result, err
}

func (s *UploadService) submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	if req.CountrySlug == "" || req.AccessCode == "" || len(req.Files) == 0 {
		return nil, ErrMissingFields
	}
	if s.policy.MaxFiles > 0 && len(req.Files) > s.policy.MaxFiles {
		return nil, fmt.Errorf("%w: %d files, at most %d allowed", ErrTooManyFiles, len(req.Files), s.policy.MaxFiles)
	}

	country, code, err := s.validator.Validate(ctx, req.CountrySlug, req.AccessCode)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	batchID, err := newBatchID(now)
	if err != nil {
		return nil, fmt.Errorf("failed to generate batch id: %w", err)
	}

	staged, err := s.stage(country.ID, batchID, now, req.Files)
	if err != nil {
		return nil, err
	}

	written, err := s.writeBlobs(ctx, staged)
	if err != nil {
		s.compensate(ctx, country.ID, written, "upload storage failure")
		return nil, fmt.Errorf("%w: %w", ErrStorageWrite, err)
	}

	batch := &domain.Batch{
		ID:         batchID,
		CountryID:  country.ID,
		Caption:    optionalString(req.Caption),
		AuthorName: optionalString(req.AuthorName),
		Story:      optionalString(req.Story),
		CreatedAt:  now,
	}
	submissions := make([]domain.Submission, len(staged))
	for i, f := range staged {
		submissions[i] = domain.Submission{
			ID:          uuid.NewString(),
			CountryID:   country.ID,
			BatchID:     &batch.ID,
			StoragePath: f.path,
			Caption:     batch.Caption,
			AuthorName:  batch.AuthorName,
			Story:       batch.Story,
			Approved:    s.policy.AutoApprove,
			// keeps upload order when the gallery sorts images by time
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
	}

	err = s.repo.Transaction(ctx, func(tx repository.PostgresRepository) error {
		if err := tx.Batch().Create(ctx, batch); err != nil {
			return err
		}
		if err := tx.Submission().BulkCreate(ctx, submissions); err != nil {
			return err
		}
		return s.validator.WithRepository(tx).RecordUse(ctx, code)
	})
	if err != nil {
		s.compensate(ctx, country.ID, written, "upload record failure")
		if errors.Is(err, ErrInvalidCode) {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("%w: %w", ErrRecordWrite, err)
	}

	result := &SubmitResult{
		CountryID: country.ID,
		BatchID:   batchID,
		GroupKey:  batch.GroupKey(),
		Uploaded:  make([]UploadedImage, len(submissions)),
	}
	ids := make([]string, len(submissions))
	urls := make([]string, len(submissions))
	for i, sub := range submissions {
		url := s.storage.PublicURL(sub.StoragePath)
		result.Uploaded[i] = UploadedImage{
			SubmissionID: sub.ID,
			StoragePath:  sub.StoragePath,
			PublicURL:    url,
		}
		ids[i] = sub.ID
		urls[i] = url
	}

	s.afterCommit(ctx, country.ID, batch.GroupKey(), ids, urls)

	return result, nil
}

// stage checks every file and assigns its storage path before anything is
// written, so a bad file never leaves blobs behind.
func (s *UploadService) stage(countryID, batchID string, now time.Time, files []UploadFile) ([]stagedFile, error) {
	staged := make([]stagedFile, 0, len(files))
	seen := make(map[string]struct{}, len(files))

	for _, f := range files {
		contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
		if _, ok := allowedContentTypes[contentType]; !ok {
			return nil, fmt.Errorf("%w: %s is %q, only JPEG, PNG and WebP are accepted", ErrInvalidFileType, f.Filename, f.ContentType)
		}
		if f.Size > s.policy.MaxFileSize {
			return nil, fmt.Errorf("%w: %s is %d bytes, limit is %d", ErrFileTooLarge, f.Filename, f.Size, s.policy.MaxFileSize)
		}
		if f.Open == nil {
			return nil, fmt.Errorf("%w: %s has no content", ErrMissingFields, f.Filename)
		}

		var key string
		for {
			suffix, err := randomSuffix(6)
			if err != nil {
				return nil, fmt.Errorf("failed to generate file name: %w", err)
			}
			key = fmt.Sprintf("%s/%s/%d-%s.%s", countryID, batchID, now.UnixMilli(), suffix, fileExtension(f.Filename, contentType))
			if _, dup := seen[key]; !dup {
				break
			}
		}
		seen[key] = struct{}{}

		f.ContentType = contentType
		staged = append(staged, stagedFile{file: f, path: key})
	}

	return staged, nil
}

// writeBlobs stores files in order and returns the paths written so far,
// including on failure.
func (s *UploadService) writeBlobs(ctx context.Context, staged []stagedFile) ([]string, error) {
	written := make([]string, 0, len(staged))
	for _, f := range staged {
		if err := s.writeBlob(ctx, f); err != nil {
			return written, err
		}
		written = append(written, f.path)
	}
	return written, nil
}

func (s *UploadService) writeBlob(ctx context.Context, f stagedFile) error {
	body, err := f.file.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", f.file.Filename, err)
	}
	defer body.Close()

	return s.storage.Put(ctx, f.path, body, storage.PutOptions{
		ContentType:  f.file.ContentType,
		CacheControl: s.policy.CacheControl,
	})
}

// compensate removes blobs written by a failed upload. It runs detached from
// the caller's cancellation and never changes the upload's outcome; blobs it
// cannot remove are queued for the cleanup worker.
func (s *UploadService) compensate(ctx context.Context, countryID string, paths []string, reason string) {
	if len(paths) == 0 {
		return
	}

	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	err := s.storage.Remove(cctx, paths)
	metrics.RecordCompensation(err == nil)
	if err == nil {
		return
	}

	s.logger.Error("Failed to remove blobs of failed upload", err,
		zap.String("country_id", countryID),
		zap.Strings("storage_paths", paths),
	)
	if qerr := s.queue.SendCleanupMessage(cctx, countryID, paths, reason); qerr != nil {
		s.logger.Error("Failed to queue blob cleanup", qerr,
			zap.String("country_id", countryID),
			zap.Strings("storage_paths", paths),
		)
	}
}

func (s *UploadService) afterCommit(ctx context.Context, countryID, groupKey string, ids, urls []string) {
	if err := s.queue.SendIndexMessage(ctx, countryID, ids); err != nil {
		s.logger.Warn("Failed to queue search indexing", zap.Error(err), zap.String("group_key", groupKey))
	}

	if !s.policy.AutoApprove {
		return
	}

	event := &domain.GalleryEvent{
		Type:          domain.GalleryEventBatchCreated,
		CountryID:     countryID,
		GroupKey:      groupKey,
		SubmissionIDs: ids,
		ImageURLs:     urls,
		OccurredAt:    s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish gallery event", zap.Error(err), zap.String("group_key", groupKey))
	}
}

// newBatchID returns a lower-case ULID: a millisecond timestamp prefix and
// 80 random bits, so ids sort by creation time.
func newBatchID(now time.Time) (string, error) {
	id, err := ulid.New(ulid.Timestamp(now), rand.Reader)
	if err != nil {
		return "", err
	}
	return strings.ToLower(id.String()), nil
}

const suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(buf), nil
}

var imageExtensions = map[string]bool{"jpg": true, "jpeg": true, "png": true, "webp": true}

// fileExtension keeps the client's image extension and otherwise falls back
// to the one implied by the content type.
func fileExtension(filename, contentType string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if imageExtensions[ext] {
		return ext
	}
	return allowedContentTypes[contentType]
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func uploadOutcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidCode):
		return "invalid_code"
	case errors.Is(err, ErrTenantNotFound):
		return "country_not_found"
	case errors.Is(err, ErrStorageWrite):
		return "storage_write"
	case errors.Is(err, ErrRecordWrite):
		return "record_write"
	case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidFileType),
		errors.Is(err, ErrFileTooLarge), errors.Is(err, ErrTooManyFiles):
		return "rejected"
	default:
		return "error"
	}
}
