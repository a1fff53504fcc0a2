package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/service/queue"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

type SubmissionLister interface {
	ListByIDs(ctx context.Context, ids []string) ([]domain.Submission, error)
}

type SearchIndexer interface {
	IndexSubmissions(ctx context.Context, submissions []domain.Submission) error
	DeleteSubmissions(ctx context.Context, countryID string, ids []string) error
}

// IndexWorker keeps the search index in step with the submissions table.
type IndexWorker struct {
	*poller
	submissions SubmissionLister
	index       SearchIndexer
	logger      *logger.Logger
}

func NewIndexWorker(
	q MessageQueue,
	queueURL string,
	submissions SubmissionLister,
	index SearchIndexer,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *IndexWorker {
	w := &IndexWorker{
		submissions: submissions,
		index:       index,
		logger:      logger,
	}
	w.poller = newPoller("index", q, queueURL, w.processMessage, logger, workerCount, pollInterval)
	return w
}

func (w *IndexWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing %s message for country %s (%d submissions)",
		msg.Type, msg.CountryID, len(msg.SubmissionIDs))

	switch msg.Type {
	case queue.MessageTypeIndex:
		// rows deleted since the message was queued are simply absent
		subs, err := w.submissions.ListByIDs(ctx, msg.SubmissionIDs)
		if err != nil {
			return fmt.Errorf("failed to load submissions: %w", err)
		}
		if len(subs) == 0 {
			return nil
		}
		return w.index.IndexSubmissions(ctx, subs)

	case queue.MessageTypeDeindex:
		return w.index.DeleteSubmissions(ctx, msg.CountryID, msg.SubmissionIDs)

	default:
		return fmt.Errorf("%w: %s", errUnknownMessage, msg.Type)
	}
}
