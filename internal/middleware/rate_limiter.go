package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/BryanPMX/weather-forecast-api/internal/config"
	"github.com/BryanPMX/weather-forecast-api/internal/model"
	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and last seen time for a specific IP address.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	// visitors maps IP addresses to their corresponding visitor struct.
	visitors = make(map[string]*visitor)
	mu       sync.Mutex
)

// getLimiter returns the rate limiter for the given IP address, creating one
// if it does not exist. Rate and burst come from config (default 10/min, burst 10).
func getLimiter(ip string) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()
	v, exists := visitors[ip]
	if !exists {
		r, burst := config.GetGlobalRateLimiterConfig()
		limiter := rate.NewLimiter(rate.Limit(r/60.0), burst)
		visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// cleanupVisitors periodically removes entries that have not been seen for
// longer than the configured cleanup timeout.
func cleanupVisitors() {
	timeout := config.GetRateLimiterCleanupTimeout()
	for {
		time.Sleep(time.Minute)
		mu.Lock()
		for ip, v := range visitors {
			if time.Since(v.lastSeen) > timeout {
				delete(visitors, ip)
			}
		}
		mu.Unlock()
	}
}

// StartRateLimiterCleanup starts a background goroutine to clean up stale visitors.
func StartRateLimiterCleanup() {
	go cleanupVisitors()
}

// ResetVisitors clears all visitor state. Used primarily for testing.
func ResetVisitors() {
	mu.Lock()
	for k := range visitors {
		delete(visitors, k)
	}
	mu.Unlock()
}

// getIP extracts the client's IP address from the HTTP request, considering X-Forwarded-For headers.
func getIP(r *http.Request) string {
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr // fallback
	}
	return ip
}

// RateLimitMiddleware returns an HTTP middleware that enforces per-IP rate limiting.
// If the rate limit is exceeded, it responds with a 429 status and a JSON error message.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter := getLimiter(getIP(r))
		if !limiter.Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			errMsg := "Rate limit exceeded: too many requests per minute per user/IP"
			resp := model.Response{
				Error:   &errMsg,
				Message: "Too Many Requests",
			}
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		next.ServeHTTP(w, r)
	})
}
