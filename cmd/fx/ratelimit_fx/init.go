package ratelimit_fx

import (
	"go.uber.org/fx"
	"voyage/internal/config"
	"voyage/pkg/ratelimit"
)

var Module = fx.Provide(provideLimiter)

func provideLimiter(cfg config.Config) *ratelimit.KeyedLimiter {
	return ratelimit.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
}
