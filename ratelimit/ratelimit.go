package ratelimit

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/dreamjobs/portal/models"
)

// KeyedLimiter keeps one token bucket per key, for example per client IP.
type KeyedLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyedLimiter allows perMinute events per key with the given burst.
// Keys unused for ten minutes are forgotten.
func NewKeyedLimiter(perMinute, burst int) *KeyedLimiter {
	if burst < 1 {
		burst = 1
	}
	return &KeyedLimiter{
		entries: make(map[string]*entry),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
		idle:    10 * time.Minute,
		now:     time.Now,
	}
}

// Allow reports whether an event for key may happen now, and if not, how
// long until it may.
func (k *KeyedLimiter) Allow(key string) (bool, time.Duration) {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	k.sweep(now)

	e, ok := k.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(k.limit, k.burst)}
		k.entries[key] = e
	}
	e.lastSeen = now

	r := e.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Duration(math.MaxInt64)
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Len returns the number of tracked keys.
func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *KeyedLimiter) sweep(now time.Time) {
	for key, e := range k.entries {
		if now.Sub(e.lastSeen) > k.idle {
			delete(k.entries, key)
		}
	}
}

// Middleware throttles requests per client IP with 429 Too Many Requests.
func (k *KeyedLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, wait := k.Allow(c.ClientIP())
		if !ok {
			secs := int(math.Ceil(wait.Seconds()))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: "Too many requests",
				Code:  http.StatusTooManyRequests,
			})
			return
		}
		c.Next()
	}
}
