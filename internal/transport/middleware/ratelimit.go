package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter implements per-IP token bucket rate limiting. Buckets are
// kept per limit so one client has independent budgets on each route group.
type RateLimiter struct {
	buckets sync.Map // map[bucketKey]*bucket
	stop    chan struct{}
	once    sync.Once
}

type bucketKey struct {
	ip    string
	limit int
}

type bucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that rate-limits requests to maxPerMinute per IP.
// A non-positive limit disables limiting and yields nil, which Chain skips.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	if maxPerMinute <= 0 {
		return nil
	}
	retryAfter := strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.getBucket(bucketKey{ip: clientIP(r), limit: maxPerMinute})
			if !b.allow() {
				w.Header().Set("Retry-After", retryAfter)
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"message": "Too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// FailureGuard throttles failed attempts per IP. Only failures spend tokens,
// and an empty bucket refuses further attempts until it refills. It shares
// buckets with Limit for the same limit, so both draw on one budget.
type FailureGuard struct {
	rl         *RateLimiter
	limit      int
	retryAfter string
}

// Failures returns a guard allowing maxPerMinute failures per IP. A nil
// limiter or a non-positive limit yields nil, which never blocks.
func (rl *RateLimiter) Failures(maxPerMinute int) *FailureGuard {
	if rl == nil || maxPerMinute <= 0 {
		return nil
	}
	return &FailureGuard{
		rl:         rl,
		limit:      maxPerMinute,
		retryAfter: strconv.Itoa(int(60.0/float64(maxPerMinute)) + 1),
	}
}

// Blocked reports whether the client has no attempts left and, if so,
// answers 429.
func (g *FailureGuard) Blocked(w http.ResponseWriter, r *http.Request) bool {
	if g == nil {
		return false
	}
	if g.rl.getBucket(bucketKey{ip: clientIP(r), limit: g.limit}).ready() {
		return false
	}
	w.Header().Set("Retry-After", g.retryAfter)
	writeJSON(w, http.StatusTooManyRequests, map[string]string{"message": "Too many requests"})
	return true
}

// Fail spends one attempt for the client.
func (g *FailureGuard) Fail(r *http.Request) {
	if g == nil {
		return
	}
	g.rl.getBucket(bucketKey{ip: clientIP(r), limit: g.limit}).allow()
}

// clientIP strips the port from RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) getBucket(key bucketKey) *bucket {
	maxTokens := float64(key.limit)

	val, _ := rl.buckets.LoadOrStore(key, &bucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: maxTokens / 60.0,
		lastRefill: time.Now(),
	})

	return val.(*bucket)
}

func (b *bucket) refill() {
	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * b.refillRate
	if b.tokens > b.maxTokens {
		b.tokens = b.maxTokens
	}
	b.lastRefill = now
}

// ready reports whether a token is available without spending it.
func (b *bucket) ready() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	return b.tokens >= 1
}

func (b *bucket) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refill()
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.lastRefill)
				b.mu.Unlock()
				if idle > 10*time.Minute {
					rl.buckets.Delete(key)
				}
				return true
			})
		}
	}
}
