// internal/interfaces/http/middleware/rate_limit.go
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"golang.org/x/time/rate"
)

// RateLimit limits requests per client IP. With a Redis client the counters are
// shared across instances; without one each process keeps token buckets.
func RateLimit(cfg *config.Config, redisClient *redis.Client, logger *logrus.Logger) gin.HandlerFunc {
	if cfg.Security.RateLimitPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if redisClient != nil {
		return redisRateLimit(cfg.Security.RateLimitPerMinute, redisClient, logger)
	}
	return localRateLimit(newVisitorLimiter(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurst, time.Now))
}

func redisRateLimit(limit int, redisClient *redis.Client, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		current, err := redisClient.Get(ctx, key).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			// If Redis is down, allow the request
			logger.WithError(err).Warn("Rate limiter unavailable")
			c.Next()
			return
		}

		if current >= limit {
			tooManyRequests(c, 60)
			return
		}

		pipe := redisClient.Pipeline()
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, time.Minute)
		if _, err := pipe.Exec(ctx); err != nil {
			logger.WithError(err).Warn("Failed to record rate limit hit")
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-current-1))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10))

		c.Next()
	}
}

func localRateLimit(visitors *visitorLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := visitors.get(c.ClientIP())
		if !limiter.Allow() {
			tooManyRequests(c, 60/visitors.perMinute+1)
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(visitors.perMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}

func tooManyRequests(c *gin.Context, retryAfter int) {
	c.Header("Retry-After", strconv.Itoa(retryAfter))
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"error":       "Rate limit exceeded",
		"retry_after": retryAfter,
	})
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorLimiter keeps one token bucket per client IP
type visitorLimiter struct {
	mu          sync.Mutex
	visitors    map[string]*visitor
	perMinute   int
	burst       int
	idle        time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

func newVisitorLimiter(perMinute, burst int, now func() time.Time) *visitorLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &visitorLimiter{
		visitors:    make(map[string]*visitor),
		perMinute:   perMinute,
		burst:       burst,
		idle:        5 * time.Minute,
		lastCleanup: now(),
		now:         now,
	}
}

func (v *visitorLimiter) get(ip string) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	now := v.now()
	if now.Sub(v.lastCleanup) > time.Minute {
		for key, vis := range v.visitors {
			if now.Sub(vis.lastSeen) > v.idle {
				delete(v.visitors, key)
			}
		}
		v.lastCleanup = now
	}

	vis, ok := v.visitors[ip]
	if !ok {
		vis = &visitor{limiter: rate.NewLimiter(rate.Limit(float64(v.perMinute)/60), v.burst)}
		v.visitors[ip] = vis
	}
	vis.lastSeen = now
	return vis.limiter
}

func (v *visitorLimiter) size() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.visitors)
}
