package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

const (
	channelPrefix = "gallery:"
)

type RedisPubSub struct {
	client       *redis.Client
	logger       *logger.Logger
	subscribers  map[string]*redis.PubSub // country ID to subscription
	subscriberMu sync.RWMutex
}

func NewRedisPubSub(client *redis.Client, logger *logger.Logger) *RedisPubSub {
	return &RedisPubSub{
		client:      client,
		logger:      logger,
		subscribers: make(map[string]*redis.PubSub),
	}
}

func ChannelName(countryID string) string {
	return channelPrefix + countryID
}

// Publish sends a gallery event to the country's channel
func (ps *RedisPubSub) Publish(ctx context.Context, event *domain.GalleryEvent) error {
	message, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal gallery event: %w", err)
	}

	channel := ChannelName(event.CountryID)
	if err := ps.client.Publish(ctx, channel, message).Err(); err != nil {
		return fmt.Errorf("failed to publish to Redis channel %s: %w", channel, err)
	}

	return nil
}

// Subscribe starts delivering a country's gallery events to callback until ctx
// ends. A second subscription for the same country is a no-op.
func (ps *RedisPubSub) Subscribe(ctx context.Context, countryID string, callback func(*domain.GalleryEvent)) error {
	channel := ChannelName(countryID)

	ps.subscriberMu.Lock()
	if _, exists := ps.subscribers[countryID]; exists {
		ps.subscriberMu.Unlock()
		return nil
	}
	sub := ps.client.Subscribe(ctx, channel)
	ps.subscribers[countryID] = sub
	ps.subscriberMu.Unlock()

	go func() {
		defer ps.release(countryID, sub)

		ch := sub.Channel()
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event domain.GalleryEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					ps.logger.Errorf("Failed to unmarshal gallery event from channel %s: %v", channel, err)
					continue
				}
				callback(&event)

			case <-ctx.Done():
				return
			}
		}
	}()

	ps.logger.Infof("Subscribed to gallery channel: %s", channel)
	return nil
}

// Unsubscribe removes the subscription for a country
func (ps *RedisPubSub) Unsubscribe(countryID string) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if sub, exists := ps.subscribers[countryID]; exists {
		sub.Close()
		delete(ps.subscribers, countryID)
		ps.logger.Infof("Unsubscribed from gallery channel: %s", ChannelName(countryID))
	}
}

// release drops sub only if it is still the country's current subscription.
func (ps *RedisPubSub) release(countryID string, sub *redis.PubSub) {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	if ps.subscribers[countryID] == sub {
		sub.Close()
		delete(ps.subscribers, countryID)
	}
}

func (ps *RedisPubSub) Close() {
	ps.subscriberMu.Lock()
	defer ps.subscriberMu.Unlock()

	for countryID, sub := range ps.subscribers {
		sub.Close()
		delete(ps.subscribers, countryID)
	}
}
