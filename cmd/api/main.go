package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"practice-catalog/config"
	"practice-catalog/config/postgre"
	"practice-catalog/config/redis"
	_ "practice-catalog/docs" // Swagger docs
	"practice-catalog/internal/httpserver"
	"practice-catalog/pkg/locale"
	"practice-catalog/pkg/log"
)

// @title       Practice Catalog API
// @description Multi-tenant practice catalog: item creation pipeline with transactional persistence and domain-event dispatch.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Practice Catalog API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(postgresDB)

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect(redisClient)

	// 4. Localization
	locales, err := locale.Load()
	if err != nil {
		logger.Error(ctx, "Failed to load locale bundle: ", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		EventStream: cfg.Redis.EventStream,
		Auth:        cfg.Auth,
		Locales:     locales,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
