package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api/types"
)

// Options configures the HTTP server
type Options struct {
	Address        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxHeaderBytes int
	EnableGzip     bool
	RateLimit      bool
	RateLimitRPS   int
	RateLimitBurst int
}

// Server represents the HTTP server
type Server struct {
	engine       *gin.Engine
	httpServer   *http.Server
	opts         Options
	rateLimiters *RateLimiters

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(opts Options) *Server {
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 30 * time.Second
	}
	if opts.MaxHeaderBytes <= 0 {
		opts.MaxHeaderBytes = 1 << 20 // 1 MB
	}

	engine := gin.New()

	s := &Server{
		engine: engine,
		opts:   opts,
	}

	var handler http.Handler = engine
	if opts.EnableGzip {
		handler = gziphandler.GzipHandler(engine)
	}

	s.httpServer = &http.Server{
		Addr:           opts.Address,
		Handler:        handler,
		ReadTimeout:    opts.ReadTimeout,
		WriteTimeout:   opts.WriteTimeout,
		IdleTimeout:    opts.ReadTimeout,
		MaxHeaderBytes: opts.MaxHeaderBytes,
	}

	return s
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the full handler chain, including gzip when enabled
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() {
	s.engine.Use(RequestLogger())
	s.engine.Use(Recovery())
	s.engine.Use(CORS())

	var limit gin.HandlerFunc
	if s.opts.RateLimit && s.opts.RateLimitRPS > 0 {
		s.rateLimiters = NewRateLimiters(s.opts.RateLimitRPS, s.opts.RateLimitBurst)
		limit = PerClientRateLimit(s.rateLimiters)
	}

	RegisterRoutes(s.engine, s.dependencies, limit)
}

// Start starts the HTTP server; it returns nil after a graceful shutdown
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.rateLimiters != nil {
		s.rateLimiters.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
