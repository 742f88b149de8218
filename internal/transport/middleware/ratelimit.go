package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/kotoba-backend/pkg/ctxutil"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per client. Authenticated requests are
// keyed by learner id, anonymous ones by remote IP.
type RateLimiter struct {
	clients sync.Map // map[string]*client
	stop    chan struct{}
	once    sync.Once
	now     func() time.Time
}

type client struct {
	limiter  *rate.Limiter
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter starts a background sweep of idle clients every
// cleanupInterval (limiterIdleTTL when not positive). Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	if cleanupInterval <= 0 {
		cleanupInterval = limiterIdleTTL
	}
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.sweepLoop(cleanupInterval)
	return rl
}

// Stop is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit allows perMinute requests per client, with a burst of the same size.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	every := time.Minute / time.Duration(perMinute)
	retryAfter := strconv.Itoa(int(every.Seconds()) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.clientFor(clientKey(r), every, perMinute)
			if !c.limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) clientFor(key string, every time.Duration, burst int) *client {
	now := rl.now()
	v, ok := rl.clients.Load(key)
	if !ok {
		v, _ = rl.clients.LoadOrStore(key, &client{
			limiter:  rate.NewLimiter(rate.Every(every), burst),
			lastSeen: now,
		})
	}
	c := v.(*client)
	c.mu.Lock()
	c.lastSeen = now
	c.mu.Unlock()
	return c
}

func (rl *RateLimiter) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep(rl.now())
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.clients.Range(func(key, value any) bool {
		c := value.(*client)
		c.mu.Lock()
		idle := now.Sub(c.lastSeen)
		c.mu.Unlock()
		if idle > limiterIdleTTL {
			rl.clients.Delete(key)
		}
		return true
	})
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
