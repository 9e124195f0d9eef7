package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/rentaldesk/backend/internal/domain/error"
	"github.com/rentaldesk/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts = 5
	defaultWindow      = time.Minute
	rateLimitKeyPrefix = "ratelimit:"
)

// RateLimiter counts attempts per client IP in fixed windows. Counters live
// in Redis when a client is configured so limits hold across instances; a
// Redis failure falls back to the in-process counters.
type RateLimiter struct {
	redis       *redis.Client
	maxAttempts int
	window      time.Duration
	enabled     bool

	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

type rateLimitEntry struct {
	attempts int
	resetAt  time.Time
}

// NewRateLimiter creates a limiter. client may be nil.
func NewRateLimiter(client *redis.Client, maxAttempts int, window time.Duration, enabled bool) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{
		redis:       client,
		maxAttempts: maxAttempts,
		window:      window,
		enabled:     enabled,
		entries:     make(map[string]*rateLimitEntry),
	}
}

// Middleware returns the gin handler.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		key := c.FullPath() + "|" + c.ClientIP()
		if !rl.Allow(c.Request.Context(), key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

// Allow records an attempt for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	if rl.redis != nil {
		allowed, err := rl.allowRedis(ctx, key)
		if err == nil {
			return allowed
		}
		slog.Debug("Rate limiter store unavailable, using memory", "error", err)
	}
	return rl.allowMemory(key)
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string) (bool, error) {
	redisKey := rateLimitKeyPrefix + key

	pipe := rl.redis.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(rl.maxAttempts), nil
}

func (rl *RateLimiter) allowMemory(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, ok := rl.entries[key]
	if !ok || now.After(entry.resetAt) {
		rl.entries[key] = &rateLimitEntry{attempts: 1, resetAt: now.Add(rl.window)}
		return true
	}
	if entry.attempts >= rl.maxAttempts {
		return false
	}
	entry.attempts++
	return true
}

// Cleanup drops expired in-memory windows and returns how many were removed.
func (rl *RateLimiter) Cleanup() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	removed := 0
	for key, entry := range rl.entries {
		if now.After(entry.resetAt) {
			delete(rl.entries, key)
			removed++
		}
	}
	return removed
}
