package middleware

import (
	"practice-catalog/config"
	"practice-catalog/pkg/log"
)

type Middleware struct {
	l           log.Logger
	jwtSecret   string
	rateLimiter *rateLimiter
}

func New(l log.Logger, authCfg config.AuthConfig) Middleware {
	return Middleware{
		l:           l,
		jwtSecret:   authCfg.JWTSecret,
		rateLimiter: newRateLimiter(authCfg.RateLimitPerMin),
	}
}
