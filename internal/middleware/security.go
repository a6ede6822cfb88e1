package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"
)

// visitorTTL is how long an idle client keeps its limiter.
const visitorTTL = 3 * time.Minute

// RateLimiter stores rate limiters for each IP
type RateLimiter struct {
	visitors map[string]*visitor
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	stop     chan struct{}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a new rate limiter and starts its cleanup loop.
// Call Stop to end the loop.
func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
		stop:     make(chan struct{}),
	}

	go rl.cleanupVisitors(time.Minute)

	return rl
}

// GetLimiter returns the rate limiter for the given IP
func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

// Stop ends the cleanup loop.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

func (rl *RateLimiter) cleanupVisitors(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.evictIdle(time.Now())
		}
	}
}

func (rl *RateLimiter) evictIdle(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimitMiddleware creates a rate limiting middleware
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)

		if !l.Allow() {
			log.Warn().Str("ip", ip).Str("path", c.Request.URL.Path).Msg("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please slow down",
			})
			return
		}

		c.Next()
	}
}

// FetchProtectionMiddleware allows each client one successful page fetch per
// interval. Fetching drives a headless browser, so it is throttled far harder
// than parsing. A fetch that does not end in a 2xx response gives the slot back.
func FetchProtectionMiddleware(interval time.Duration) gin.HandlerFunc {
	var (
		lastFetch = make(map[string]time.Time)
		mu        sync.Mutex
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		evictFetches(lastFetch, now, interval)
		prev, seen := lastFetch[ip]
		if since := now.Sub(prev); seen && since < interval {
			mu.Unlock()
			remaining := (interval - since).Round(time.Second)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": fmt.Sprintf("Please wait %s before fetching another listing", remaining),
			})
			return
		}
		// claimed up front so a concurrent fetch from the same client is refused
		lastFetch[ip] = now
		mu.Unlock()

		c.Next()

		if status := c.Writer.Status(); status < 200 || status > 299 {
			mu.Lock()
			if lastFetch[ip].Equal(now) {
				delete(lastFetch, ip)
			}
			mu.Unlock()
		}
	}
}

// evictFetches drops clients whose last fetch is older than interval.
// Callers hold the lock guarding last.
func evictFetches(last map[string]time.Time, now time.Time, interval time.Duration) {
	for ip, at := range last {
		if now.Sub(at) >= interval {
			delete(last, ip)
		}
	}
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Content-Security-Policy", buildCSPPolicy(c.Request.URL.Path))
		c.Header("Server", "")

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}

// AdminKeyMiddleware checks the X-Admin-Key header against a bcrypt hash.
// With no hash configured every admin request is rejected.
func AdminKeyMiddleware(keyHash string) gin.HandlerFunc {
	hash := []byte(keyHash)

	return func(c *gin.Context) {
		key := c.GetHeader("X-Admin-Key")

		if len(hash) == 0 || key == "" || bcrypt.CompareHashAndPassword(hash, []byte(key)) != nil {
			log.Warn().Str("ip", c.ClientIP()).Str("path", c.Request.URL.Path).Msg("admin key rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			return
		}

		c.Next()
	}
}

// SecurityScanDetection logs requests for paths scanners commonly probe
func SecurityScanDetection() gin.HandlerFunc {
	suspiciousPaths := []string{
		".env", ".git", "wp-admin", "phpmyadmin", ".htaccess", "config.php",
		"wp-config.php", ".ssh", "id_rsa", ".bak", ".sql",
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, suspicious := range suspiciousPaths {
			if strings.Contains(path, suspicious) {
				log.Warn().
					Str("ip", c.ClientIP()).
					Str("method", c.Request.Method).
					Str("path", path).
					Msg("security scan attempt")
				break
			}
		}

		c.Next()
	}
}

// buildCSPPolicy returns the Content Security Policy for path. The Swagger UI
// needs inline scripts and styles; the JSON API needs nothing.
func buildCSPPolicy(path string) string {
	if strings.HasPrefix(path, "/swagger/") {
		return "default-src 'self'; " +
			"script-src 'self' 'unsafe-inline'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data:;"
	}

	return "default-src 'none'; frame-ancestors 'none'; base-uri 'none'; form-action 'none';"
}
