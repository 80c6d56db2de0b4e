package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// errRateLimited is reported in the 429 body.
var errRateLimited = errors.New("rate limit exceeded")

type visitor struct {
	windowStart time.Time
	count       int
}

// limiter is a fixed window, per client IP request counter.
type limiter struct {
	mu       sync.Mutex
	visitors  map[string]*visitor
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// allow records a request from key and reports whether it is within the limit.
// Expired visitors are swept at most once per window.
func (l *limiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.window {
		l.sweep(now)
	}

	v, ok := l.visitors[key]
	if !ok || now.Sub(v.windowStart) >= l.window {
		v = &visitor{windowStart: now}
		l.visitors[key] = v
	}
	v.count++
	return v.count <= l.limit
}

func (l *limiter) sweep(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.windowStart) >= l.window {
			delete(l.visitors, k)
		}
	}
	l.lastSweep = now
}

// RateLimiter allows up to limit requests per window for each client IP and
// answers 429 Too Many Requests beyond that. A limit < 1 disables limiting.
//
// State is held in memory, so every replica counts on its own.
//
// Usage:
//
//	router.Use(middleware.RateLimiter(60, time.Minute))
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	if limit < 1 {
		return func(c *gin.Context) { c.Next() }
	}
	l := newLimiter(limit, window)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter(window))
			AbortWithError(c, http.StatusTooManyRequests, "Too many requests", errRateLimited)
			return
		}
		c.Next()
	}
}

func retryAfter(window time.Duration) string {
	secs := int(window.Round(time.Second) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
