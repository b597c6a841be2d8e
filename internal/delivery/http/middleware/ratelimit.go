package middleware

import (
	"sync"
	"time"

	"thexempt/internal/metrics"
	"thexempt/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP. A bucket holds max tokens and
// refills at max per window.
type RateLimiter struct {
	name    string
	limit   rate.Limit
	burst   int
	message string
	logger  *zap.Logger

	mu       sync.Mutex
	limiters map[string]*limiterEntry
	now      func() time.Time
}

func NewRateLimiter(name string, max int, window time.Duration, message string, logger *zap.Logger) *RateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	if message == "" {
		message = "Too many requests, please try again later."
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RateLimiter{
		name:     name,
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
		message:  message,
		logger:   logger,
		limiters: make(map[string]*limiterEntry),
		now:      time.Now,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	e, ok := rl.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = e
	}
	e.lastSeen = rl.now()
	return e.limiter
}

func (rl *RateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).AllowN(rl.now(), 1)
}

func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		key := c.IP()
		if rl.Allow(key) {
			return c.Next()
		}

		metrics.RecordRateLimited(rl.name)
		rl.logger.Warn("rate limit exceeded",
			zap.String("limiter", rl.name),
			zap.String("ip", key),
			zap.String("path", c.Path()),
		)
		return response.Error(c, fiber.StatusTooManyRequests, rl.message, nil)
	}
}

// Sweep drops buckets idle for longer than idle.
func (rl *RateLimiter) Sweep(idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := rl.now().Add(-idle)
	removed := 0
	for k, e := range rl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(rl.limiters, k)
			removed++
		}
	}
	return removed
}

// StartSweeper runs Sweep every interval until stop is closed.
func (rl *RateLimiter) StartSweeper(interval, idle time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := rl.Sweep(idle); n > 0 {
					rl.logger.Debug("rate limiter swept", zap.String("limiter", rl.name), zap.Int("removed", n))
				}
			case <-stop:
				return
			}
		}
	}()
}
