package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"practice-catalog/config"
	"practice-catalog/config/redis"
	catalogDispatcher "practice-catalog/internal/catalog/dispatcher/redis"
	"practice-catalog/internal/model"
	"practice-catalog/pkg/log"
)

// main is the entry point for the background consumer service.
// This binary consumes catalog domain events from the Redis stream and
// processes them.
//
// Pattern:
//  1. Initialize infra (same as cmd/api/main.go)
//  2. Create the stream consumer
//  3. Run & graceful shutdown
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting consumer service...")

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect(redisClient)

	consumer := catalogDispatcher.NewConsumer(
		redisClient,
		cfg.Redis.EventStream,
		cfg.Redis.ConsumerGroup,
		cfg.Redis.ConsumerName,
		logger,
	)

	err = consumer.Run(ctx, func(ctx context.Context, event model.DomainEvent) error {
		logger.Infof(ctx, "catalog event %s: item=%s practice=%s type=%s",
			event.Type, event.ItemKey, event.PracticeKey, event.ItemType)
		return nil
	})
	if err != nil && err != context.Canceled {
		logger.Error(ctx, "Consumer stopped with error: ", err)
		return
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}
