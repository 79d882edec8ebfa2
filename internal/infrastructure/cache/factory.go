package cache

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/pharmacy/backend/internal/infrastructure/config"
)

// NewIdempotencyStore creates an idempotency store for the configured
// backend. A nil store is returned when idempotency is disabled; callers
// skip the middleware in that case.
func NewIdempotencyStore(cfg config.IdempotencyConfig, redisCfg config.RedisConfig, logger *zap.Logger) (IdempotencyStore, error) {
	if !cfg.Enabled {
		logger.Info("Idempotency disabled")
		return nil, nil
	}

	switch cfg.Backend {
	case "redis":
		store, err := NewRedisIdempotencyStore(redisCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis idempotency store: %w", err)
		}
		logger.Info("Using Redis idempotency store",
			zap.String("host", redisCfg.Host),
			zap.Duration("ttl", cfg.TTL),
		)
		return store, nil
	case "memory":
		logger.Info("Using in-memory idempotency store",
			zap.Duration("ttl", cfg.TTL),
		)
		return NewInMemoryIdempotencyStore(), nil
	default:
		return nil, fmt.Errorf("unknown idempotency backend %q", cfg.Backend)
	}
}
