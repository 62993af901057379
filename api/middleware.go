package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/killallgit/podcast-search/api/types"
	"github.com/killallgit/podcast-search/pkg/logger"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request id back to the client
const RequestIDHeader = "X-Request-ID"

// clientLimiter holds a rate limiter and its last accessed time
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiters tracks one token bucket per client IP
type RateLimiters struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	rps      int
	burst    int
	idle     time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiters starts the idle-client sweeper; call Stop to end it
func NewRateLimiters(rps, burst int) *RateLimiters {
	rl := &RateLimiters{
		clients: make(map[string]*clientLimiter),
		rps:     rps,
		burst:   burst,
		idle:    10 * time.Minute,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(5 * time.Minute)
	return rl
}

// Stop ends the sweeper goroutine
func (rl *RateLimiters) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiters) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[clientIP]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(rl.rps), rl.burst),
		}
		rl.clients[clientIP] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *RateLimiters) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep(time.Now())
		case <-rl.stop:
			return
		}
	}
}

func (rl *RateLimiters) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for ip, cl := range rl.clients {
		if now.Sub(cl.lastSeen) > rl.idle {
			delete(rl.clients, ip)
		}
	}
}

// PerClientRateLimit rejects clients that exceed their token bucket with 429
func PerClientRateLimit(rl *RateLimiters) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Rate limit exceeded. Please slow down your requests.",
				Error:   "RATE_LIMITED",
			})
			return
		}
		c.Next()
	}
}

// CORS allows any origin; the API is read-only
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")
		c.Header("Access-Control-Expose-Headers", types.SourceHeader+", "+RequestIDHeader)
		c.Header("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequestLogger tags each request with an id and logs it once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(RequestIDHeader, requestID)

		l := logger.WithRequestID(requestID)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), &l))

		c.Next()

		status := c.Writer.Status()
		event := l.Info()
		switch {
		case status >= http.StatusInternalServerError:
			event = l.Error()
		case status >= http.StatusBadRequest:
			event = l.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// Recovery turns panics into a JSON 500 and logs them
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context()).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "Internal server error",
		})
	})
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Status:  types.StatusError,
			Message: "The requested endpoint was not found",
			Details: gin.H{"path": c.Request.URL.Path},
		})
	}
}
