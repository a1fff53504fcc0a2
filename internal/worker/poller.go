package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/kingrain94/country-gallery-api/internal/service/queue"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

const (
	maxMessages = 10
	// long polling
	waitTimeSeconds = 20
)

// errUnknownMessage marks a message no handler understands. It is dropped
// instead of being redelivered forever.
var errUnknownMessage = errors.New("unknown message type")

// MessageQueue is the part of the SQS service the workers consume.
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, []*string, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// poller runs workerCount goroutines that receive from one queue and hand
// each message to handle. A message is deleted only after handle succeeds;
// otherwise it becomes visible again and is retried.
type poller struct {
	name         string
	queue        MessageQueue
	queueURL     string
	handle       func(context.Context, queue.Message) error
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	ctx          context.Context
	cancel       context.CancelFunc
	waitGroup    sync.WaitGroup
}

func newPoller(
	name string,
	q MessageQueue,
	queueURL string,
	handle func(context.Context, queue.Message) error,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *poller {
	ctx, cancel := context.WithCancel(context.Background())
	return &poller{
		name:         name,
		queue:        q,
		queueURL:     queueURL,
		handle:       handle,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (p *poller) Start() {
	p.logger.Infof("Starting %s workers...", p.name)

	for i := 0; i < p.workerCount; i++ {
		p.waitGroup.Add(1)
		go p.runWorker(i)
	}
}

// Stop cancels in-flight receives and waits for every worker to return.
func (p *poller) Stop() {
	p.logger.Infof("Stopping %s workers...", p.name)
	p.cancel()
	p.waitGroup.Wait()
	p.logger.Infof("All %s workers stopped", p.name)
}

func (p *poller) runWorker(workerID int) {
	defer p.waitGroup.Done()

	p.logger.Infof("%s worker %d started", p.name, workerID)

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			p.logger.Infof("%s worker %d shutting down", p.name, workerID)
			return
		case <-ticker.C:
			if err := p.processMessages(p.ctx); err != nil && p.ctx.Err() == nil {
				p.logger.Errorf("%s worker %d failed to process messages: %v", p.name, workerID, err)
			}
		}
	}
}

func (p *poller) processMessages(ctx context.Context) error {
	messages, poison, err := p.queue.ReceiveMessages(ctx, p.queueURL, maxMessages, waitTimeSeconds)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, handle := range poison {
		p.logger.Warn("Dropping undecodable message", zap.String("queue", p.name))
		p.ack(ctx, handle)
	}

	for _, msg := range messages {
		err := p.handle(ctx, msg.Message)
		if errors.Is(err, errUnknownMessage) {
			p.logger.Warn("Dropping message of unknown type",
				zap.String("queue", p.name),
				zap.String("type", string(msg.Message.Type)),
			)
			p.ack(ctx, msg.ReceiptHandle)
			continue
		}
		if err != nil {
			p.logger.Error("Failed to process message", err,
				zap.String("queue", p.name),
				zap.String("type", string(msg.Message.Type)),
				zap.String("country_id", msg.Message.CountryID),
			)
			continue
		}
		p.ack(ctx, msg.ReceiptHandle)
	}

	return nil
}

func (p *poller) ack(ctx context.Context, receiptHandle *string) {
	if err := p.queue.DeleteMessage(ctx, p.queueURL, receiptHandle); err != nil {
		p.logger.Errorf("Failed to delete message: %v", err)
	}
}
