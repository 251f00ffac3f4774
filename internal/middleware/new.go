package middleware

import (
	pkgLog "gene-woofallback/pkg/log"
)

// Config holds the security settings for inbound requests.
type Config struct {
	APIKey          string // bearer token required on decision routes
	RateLimitPerMin int    // per-source request budget; 0 disables limiting
}

// Middleware bundles the gin middlewares guarding the decision endpoint.
type Middleware struct {
	l       pkgLog.Logger
	cfg     Config
	limiter *sourceLimiter
}

func New(l pkgLog.Logger, cfg Config) Middleware {
	return Middleware{
		l:       l,
		cfg:     cfg,
		limiter: newSourceLimiter(cfg.RateLimitPerMin),
	}
}
