package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pharmacy/backend/internal/infrastructure/cache"
	"github.com/pharmacy/backend/internal/interfaces/http/dto"
)

// IdempotencyHeaderKey is the request header carrying the client-chosen
// idempotency key.
const IdempotencyHeaderKey = "Idempotency-Key"

// IdempotencyConfig holds configuration for the idempotency middleware
type IdempotencyConfig struct {
	Store  cache.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects replays of mutating requests that carry an
// Idempotency-Key header. Requests without the header pass through
// unchanged. The key is scoped to tenant, method and path, so the same key
// may be reused across endpoints.
//
// A replay within the TTL gets a 409 instead of a second execution. When
// the store fails the request proceeds; a broken Redis must not take the
// write path down.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeaderKey)
		if key == "" {
			c.Next()
			return
		}

		scopedKey := GetTenantID(c) + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key

		fresh, err := cfg.Store.MarkProcessed(c.Request.Context(), scopedKey, cfg.TTL)
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Idempotency store unavailable, skipping replay check",
					zap.Error(err),
				)
			}
			c.Next()
			return
		}

		if !fresh {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponse(
				dto.ErrCodeConflict,
				"Request with this idempotency key was already processed",
			))
			return
		}

		c.Next()
	}
}
