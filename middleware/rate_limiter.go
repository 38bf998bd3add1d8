// middleware/rate_limiter.go
package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/ashwinpillai/hirehub_backend/models"
)

type endpointLimit struct {
	limit rate.Limit
	burst int
}

type RateLimiter struct {
	ips            map[string]*rate.Limiter
	blockedIPs     map[string]time.Time
	mu             *sync.RWMutex
	defaultLimit   rate.Limit
	defaultBurst   int
	blockDuration  time.Duration
	endpointLimits map[string]endpointLimit
}

func NewRateLimiter() *RateLimiter {
	limiter := &RateLimiter{
		ips:            make(map[string]*rate.Limiter),
		blockedIPs:     make(map[string]time.Time),
		mu:             &sync.RWMutex{},
		defaultLimit:   rate.Every(100 * time.Millisecond), // 10 requests per second
		defaultBurst:   20,
		blockDuration:  5 * time.Minute,
		endpointLimits: make(map[string]endpointLimit),
	}

	// Strict limit on login to slow down brute force attempts.
	limiter.endpointLimits["/api/login"] = endpointLimit{
		limit: rate.Every(2 * time.Second),
		burst: 5,
	}

	// Directory search fires on every keystroke; give it headroom.
	limiter.endpointLimits["/api/employees"] = endpointLimit{
		limit: rate.Every(50 * time.Millisecond),
		burst: 50,
	}
	limiter.endpointLimits["/api/skills"] = endpointLimit{
		limit: rate.Every(50 * time.Millisecond),
		burst: 50,
	}

	go limiter.cleanupBlockedIPs()

	return limiter
}

func (rl *RateLimiter) cleanupBlockedIPs() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()
		rl.mu.Lock()
		for ip, until := range rl.blockedIPs {
			if now.After(until) {
				delete(rl.blockedIPs, ip)
				delete(rl.ips, ip)
			}
		}
		rl.mu.Unlock()
	}
}

func (rl *RateLimiter) limiterFor(ip, path string) *rate.Limiter {
	key := ip + path

	rl.mu.RLock()
	limiter, ok := rl.ips[key]
	rl.mu.RUnlock()
	if ok {
		return limiter
	}

	limit, burst := rl.defaultLimit, rl.defaultBurst
	for prefix, el := range rl.endpointLimits {
		if strings.HasPrefix(path, prefix) {
			limit, burst = el.limit, el.burst
			break
		}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, ok = rl.ips[key]; ok {
		return limiter
	}
	limiter = rate.NewLimiter(limit, burst)
	rl.ips[key] = limiter
	return limiter
}

// RateLimit returns the Echo middleware enforcing per-IP, per-endpoint limits.
func (rl *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			rl.mu.RLock()
			blockedUntil, blocked := rl.blockedIPs[ip]
			rl.mu.RUnlock()
			if blocked && time.Now().Before(blockedUntil) {
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Success: false,
					Message: "Too many requests. Try again later.",
				})
			}

			if !rl.limiterFor(ip, c.Request().URL.Path).Allow() {
				rl.mu.Lock()
				rl.blockedIPs[ip] = time.Now().Add(rl.blockDuration)
				rl.mu.Unlock()
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Success: false,
					Message: "Too many requests. Try again later.",
				})
			}

			return next(c)
		}
	}
}
