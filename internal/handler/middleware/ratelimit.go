package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"commission-tracker/internal/handler/httperr"
	"commission-tracker/internal/pkg/clock"
	"commission-tracker/internal/pkg/config"
	"commission-tracker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a token bucket per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	clock    clock.Clock
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		idle:     cfg.IdleTimeout,
		clock:    clk,
	}
}

func (l *RateLimiter) allow(ip string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	l.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Cleanup drops visitors idle for longer than the configured timeout.
func (l *RateLimiter) Cleanup() int {
	cutoff := l.clock.Now().Add(-l.idle)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for ip, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, ip)
			removed++
		}
	}
	return removed
}

// Run cleans up idle visitors until ctx is done.
func (l *RateLimiter) Run(ctx context.Context) {
	interval := l.idle
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup()
		}
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			httperr.AbortWithProblem(c, errRateLimited, httperr.Problem{
				Status:    http.StatusTooManyRequests,
				Code:      "RATE_LIMITED",
				Message:   "Too many requests",
				Retryable: true,
			}, nil)
			return
		}
		c.Next()
	}
}
