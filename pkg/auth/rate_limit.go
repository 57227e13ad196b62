package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit applies a fixed-window limit per client IP using redis INCR/EXPIRE.
// Redis errors fail open: a broken limiter must not take the dashboard down.
func RateLimit(rdb *redis.Client, limit int64, window time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			key := fmt.Sprintf("admin:ratelimit:%s", r.RemoteAddr)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Error("redis error during rate limiting", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > limit {
				ttl, _ := rdb.TTL(ctx, key).Result()

				logger.Warn("rate limit exceeded",
					zap.String("remote_addr", r.RemoteAddr),
					zap.Int64("limit", limit),
					zap.Int64("count", count))

				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))

				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, map[string]interface{}{
					"error":       "rate limit exceeded",
					"limit":       limit,
					"retry_after": int(ttl.Seconds()),
				})
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", limit-count))

			next.ServeHTTP(w, r)
		})
	}
}
