package middleware

import (
	"catalog-api/config"
	"catalog-api/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	var limiter *rateLimiter
	if cfg.Enabled {
		limiter = newRateLimiter(cfg.PerMin)
	}

	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
