package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/response"

	"golang.org/x/time/rate"
)

const (
	rateLimitIdleTTL       = 3 * time.Minute
	rateLimitSweepInterval = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client IP. Buckets idle for
// longer than rateLimitIdleTTL are dropped. Forwarding headers are only
// honored when trustProxy is set, otherwise the peer address is the key.
type RateLimitMiddleware struct {
	mu         sync.Mutex
	clients    map[string]*clientLimiter
	rate       rate.Limit
	burst      int
	trustProxy bool
	lastSweep  time.Time
	now        func() time.Time
}

func NewRateLimitMiddleware(rps int, burst int, trustProxy bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		clients:    make(map[string]*clientLimiter),
		rate:       rate.Limit(rps),
		burst:      burst,
		trustProxy: trustProxy,
		now:        time.Now,
	}
}

func (m *RateLimitMiddleware) limiter(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if now.Sub(m.lastSweep) >= rateLimitSweepInterval {
		m.sweep(now)
	}

	c, exists := m.clients[ip]
	if !exists {
		c = &clientLimiter{limiter: rate.NewLimiter(m.rate, m.burst)}
		m.clients[ip] = c
	}
	c.lastSeen = now
	return c.limiter
}

// sweep must be called with mu held.
func (m *RateLimitMiddleware) sweep(now time.Time) {
	for ip, c := range m.clients {
		if now.Sub(c.lastSeen) > rateLimitIdleTTL {
			delete(m.clients, ip)
		}
	}
	m.lastSweep = now
}

func (m *RateLimitMiddleware) tracked() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

func (m *RateLimitMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter(clientIP(r, m.trustProxy)).Allow() {
			w.Header().Set("Retry-After", "1")
			response.Fail(w, http.StatusTooManyRequests, "Too many requests", "RATE_LIMITED")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return xri
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
