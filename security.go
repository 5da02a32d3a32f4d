package main

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter tracks request counts per client IP over a fixed window.
type RateLimiter struct {
	mu       sync.Mutex
	counts   map[string]int
	rate     int
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows up to rate requests per IP per interval.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		counts:   make(map[string]int),
		rate:     rate,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
	go rl.resetLoop()
	return rl
}

func (rl *RateLimiter) resetLoop() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.mu.Lock()
			rl.counts = make(map[string]int)
			rl.mu.Unlock()
		case <-rl.stopCh:
			return
		}
	}
}

// Allow reports whether the IP has budget left in the current window.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.counts[ip] >= rl.rate {
		return false
	}
	rl.counts[ip]++
	return true
}

// Close stops the reset loop. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() {
		close(rl.stopCh)
	})
}

// SecurityConfig configures the HTTP hardening middleware.
type SecurityConfig struct {
	// RateLimit is the allowed requests per IP per minute. 0 disables limiting.
	RateLimit int
	// MaxBodySize caps request bodies in bytes. 0 disables the cap.
	MaxBodySize int64
}

// SecurityMiddleware applies rate limiting, body size caps, and defensive
// headers in front of the metrics listener.
type SecurityMiddleware struct {
	next        http.Handler
	logger      *slog.Logger
	limiter     *RateLimiter
	maxBodySize int64
}

func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		next:        next,
		logger:      logger,
		maxBodySize: config.MaxBodySize,
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if sm.limiter != nil && !sm.limiter.Allow(ip) {
		sm.logger.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
		http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
		return
	}

	if sm.maxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, sm.maxBodySize)
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")

	sm.next.ServeHTTP(w, r)
}

// Close releases the rate limiter, if any.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}
