package service

import (
	"context"

	"github.com/kingrain94/country-gallery-api/internal/domain"
)

//go:generate mockery --name QueueService --output ../mocks
type QueueService interface {
	SendIndexMessage(ctx context.Context, countryID string, submissionIDs []string) error
	SendDeindexMessage(ctx context.Context, countryID string, submissionIDs []string) error
	SendCleanupMessage(ctx context.Context, countryID string, paths []string, reason string) error
}

//go:generate mockery --name EventPublisher --output ../mocks
type EventPublisher interface {
	Publish(ctx context.Context, event *domain.GalleryEvent) error
}
