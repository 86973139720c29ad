package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"practice-catalog/internal/model"
	"practice-catalog/pkg/log"
)

// Handler processes one domain event read from the stream.
type Handler func(ctx context.Context, event model.DomainEvent) error

// Consumer reads domain events from the stream via a consumer group.
type Consumer struct {
	client *redis.Client
	stream string
	group  string
	name   string
	l      log.Logger
}

func NewConsumer(client *redis.Client, stream, group, name string, l log.Logger) *Consumer {
	if client == nil {
		panic("redis client is required")
	}
	if stream == "" {
		stream = DefaultStream
	}
	return &Consumer{
		client: client,
		stream: stream,
		group:  group,
		name:   name,
		l:      l,
	}
}

// Run creates the consumer group if needed and consumes until the
// context is cancelled. Handled entries are acknowledged; failed ones
// stay pending for redelivery.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	lPrefix := "catalog.consumer.Run"

	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.group, "0").Err()
	if err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		c.l.Errorf(ctx, "%s: create group: %v", lPrefix, err)
		return err
	}

	c.l.Infof(ctx, "%s: consuming stream %s as %s/%s", lPrefix, c.stream, c.group, c.name)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.group,
			Consumer: c.name,
			Streams:  []string{c.stream, ">"},
			Count:    32,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if err == redis.Nil || ctx.Err() != nil {
				continue
			}
			c.l.Warnf(ctx, "%s: read: %v", lPrefix, err)
			continue
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				event, err := decodeEvent(msg)
				if err != nil {
					c.l.Warnf(ctx, "%s: malformed entry %s: %v", lPrefix, msg.ID, err)
					// Poison entry, ack so it does not block the group.
					c.client.XAck(ctx, c.stream, c.group, msg.ID)
					continue
				}

				if err := handle(ctx, event); err != nil {
					c.l.Errorf(ctx, "%s: handle %s (%s): %v", lPrefix, msg.ID, event.Type, err)
					continue
				}
				c.client.XAck(ctx, c.stream, c.group, msg.ID)
			}
		}
	}
}

func decodeEvent(msg redis.XMessage) (model.DomainEvent, error) {
	event := model.DomainEvent{
		Key:         stringField(msg, "key"),
		Type:        model.EventType(stringField(msg, "type")),
		PracticeKey: stringField(msg, "practice_key"),
		ItemKey:     stringField(msg, "item_key"),
		ItemType:    model.ItemType(stringField(msg, "item_type")),
	}

	if raw := stringField(msg, "occurred_at"); raw != "" {
		ts, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return event, err
		}
		event.OccurredAt = ts
	}

	if raw := stringField(msg, "payload"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &event.Payload); err != nil {
			return event, err
		}
	}

	return event, nil
}

func stringField(msg redis.XMessage, field string) string {
	v, ok := msg.Values[field]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
