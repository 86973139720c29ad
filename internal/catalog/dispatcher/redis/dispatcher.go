// Package redis publishes catalog domain events to a Redis stream. The
// unit of work calls Dispatch between executing the write and committing,
// so a publish failure abandons the transaction.
package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"practice-catalog/internal/catalog"
	"practice-catalog/internal/model"
	"practice-catalog/pkg/log"
)

// DefaultStream is the stream consumed by cmd/consumer.
const DefaultStream = "catalog.events"

type implDispatcher struct {
	client *redis.Client
	stream string
	l      log.Logger
}

// New creates a stream-backed Dispatcher.
func New(client *redis.Client, stream string, l log.Logger) catalog.Dispatcher {
	if client == nil {
		panic("catalog/dispatcher/redis: client is required")
	}
	if stream == "" {
		stream = DefaultStream
	}
	return &implDispatcher{client: client, stream: stream, l: l}
}

// Dispatch appends each event to the stream. The first failure aborts; the
// caller abandons its transaction so no partial outcome is observable.
func (d *implDispatcher) Dispatch(ctx context.Context, events []model.DomainEvent) error {
	for _, ev := range events {
		payload, err := json.Marshal(ev.Payload)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", ev.Key, err)
		}
		err = d.client.XAdd(ctx, &redis.XAddArgs{
			Stream: d.stream,
			Values: map[string]interface{}{
				"key":          ev.Key,
				"type":         string(ev.Type),
				"practice_key": ev.PracticeKey,
				"item_key":     ev.ItemKey,
				"item_type":    string(ev.ItemType),
				"occurred_at":  ev.OccurredAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
				"payload":      string(payload),
			},
		}).Err()
		if err != nil {
			d.l.Errorf(ctx, "dispatcher XAdd %s: %v", ev.Key, err)
			return fmt.Errorf("dispatch event %s: %w", ev.Key, err)
		}
	}
	return nil
}
