package middleware

import (
	stdjson "encoding/json"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	"frontdesk/internal/platform/logger"
	pnet "frontdesk/internal/platform/net"

	"golang.org/x/time/rate"
)

// RateLimitOptions configures a per client token bucket
type RateLimitOptions struct {
	// Requests allowed per Window, also used as the burst size
	Requests int
	// Window over which Requests are replenished
	Window time.Duration
	// IdleTTL evicts client buckets not seen for this long, 0 means 3x Window
	IdleTTL time.Duration
}

type rateLimitWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

type clientBucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// rateLimiter keeps one token bucket per client key
type rateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
}

func newRateLimiter(o RateLimitOptions) *rateLimiter {
	if o.Requests <= 0 {
		o.Requests = 100
	}
	if o.Window <= 0 {
		o.Window = 15 * time.Minute
	}
	if o.IdleTTL <= 0 {
		o.IdleTTL = 3 * o.Window
	}
	rl := &rateLimiter{
		buckets: make(map[string]*clientBucket),
		limit:   rate.Limit(float64(o.Requests) / o.Window.Seconds()),
		burst:   o.Requests,
		idleTTL: o.IdleTTL,
	}
	go rl.janitor()
	return rl
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	b, ok := rl.buckets[key]
	if !ok {
		b = &clientBucket{lim: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.seen = time.Now()
	return b.lim.Allow()
}

// janitor evicts buckets idle past the ttl so the map cannot grow unbounded
func (rl *rateLimiter) janitor() {
	tick := time.NewTicker(rl.idleTTL)
	defer tick.Stop()
	for range tick.C {
		cutoff := time.Now().Add(-rl.idleTTL)
		rl.mu.Lock()
		for key, b := range rl.buckets {
			if b.seen.Before(cutoff) {
				delete(rl.buckets, key)
			}
		}
		rl.mu.Unlock()
	}
}

// clientKey buckets by remote IP, falling back to the raw addr when it cannot be split
func clientKey(r *stdhttp.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects clients that exceed the configured request budget with a JSON 429
// pair with RealIP so the bucket keys on the upstream address behind a proxy
func RateLimit(o RateLimitOptions) func(stdhttp.Handler) stdhttp.Handler {
	rl := newRateLimiter(o)
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			key := clientKey(r)
			if rl.allow(key) {
				next.ServeHTTP(w, r)
				return
			}

			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Warn().
				Str("client", key).
				Str("path", r.URL.Path).
				Msg("rate limit exceeded")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			body := rateLimitWire{
				StatusCode: stdhttp.StatusTooManyRequests,
				Status:     stdhttp.StatusText(stdhttp.StatusTooManyRequests),
				Error:      "too many requests, please try again later",
				RequestID:  reqID,
			}
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(stdhttp.StatusTooManyRequests)
			_ = stdjson.NewEncoder(w).Encode(body)
		})
	}
}
