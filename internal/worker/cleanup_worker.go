package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/country-gallery-api/internal/service/queue"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

type BlobRemover interface {
	Remove(ctx context.Context, paths []string) error
}

// CleanupWorker retries blob removals that failed during an upload
// compensation or a deletion.
type CleanupWorker struct {
	*poller
	storage BlobRemover
	logger  *logger.Logger
}

func NewCleanupWorker(
	q MessageQueue,
	queueURL string,
	storage BlobRemover,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *CleanupWorker {
	w := &CleanupWorker{
		storage: storage,
		logger:  logger,
	}
	w.poller = newPoller("cleanup", q, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *CleanupWorker) processMessage(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeCleanupBlobs {
		return fmt.Errorf("%w: %s", errUnknownMessage, msg.Type)
	}

	w.logger.Infof("Removing %d orphaned blobs for country %s (%s)",
		len(msg.StoragePaths), msg.CountryID, msg.Reason)

	if err := w.storage.Remove(ctx, msg.StoragePaths); err != nil {
		return fmt.Errorf("failed to remove blobs for country %s: %w", msg.CountryID, err)
	}
	return nil
}
