package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"practice-catalog/config"
	"practice-catalog/pkg/locale"
	"practice-catalog/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	postgresDB  *sql.DB
	redisClient *goredis.Client
	eventStream string

	// Auth
	authConfig config.AuthConfig

	// Localization
	locales *locale.Bundle
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	PostgresDB  *sql.DB
	RedisClient *goredis.Client
	EventStream string

	Auth config.AuthConfig

	Locales *locale.Bundle
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		eventStream: cfg.EventStream,
		authConfig:  cfg.Auth,
		locales:     cfg.Locales,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.redisClient == nil {
		return errors.New("redis client is required")
	}
	if srv.locales == nil {
		return errors.New("locale bundle is required")
	}
	return nil
}
