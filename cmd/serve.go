package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api"
	"github.com/killallgit/podcast-search/api/types"
	"github.com/killallgit/podcast-search/internal/database"
	"github.com/killallgit/podcast-search/internal/models"
	"github.com/killallgit/podcast-search/internal/services/cache"
	"github.com/killallgit/podcast-search/internal/services/catalog"
	"github.com/killallgit/podcast-search/internal/services/cleanup"
	"github.com/killallgit/podcast-search/pkg/config"
	"github.com/killallgit/podcast-search/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Podcast Search API server with the configured settings.

The server answers GET /api/podcasts by querying the upstream catalog,
caching the page and mirroring its podcasts into the local database.

Example:
  podcast-search serve
  podcast-search serve --port 9090
  podcast-search serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return err
	}

	host, port := cfg.Server.Host, cfg.Server.Port
	if serverHost != "" {
		host = serverHost
	}
	if serverPort != 0 {
		port = serverPort
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	deps, release, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer release()

	server := api.NewServer(api.Options{
		Address:        fmt.Sprintf("%s:%d", host, port),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		EnableGzip:     cfg.Server.EnableGzip,
		RateLimit:      cfg.RateLimiting.Enabled,
		RateLimitRPS:   cfg.RateLimiting.RequestsPerSecond,
		RateLimitBurst: cfg.RateLimiting.Burst,
	})
	server.SetDependencies(deps)
	server.Initialize()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	logger.Info().
		Str("address", fmt.Sprintf("%s:%d", host, port)).
		Str("catalog", deps.CatalogURL).
		Bool("mirror", deps.DB != nil).
		Msg("server is ready to handle requests")

	select {
	case <-ctx.Done():
		logger.Info().Msg("shutting down server")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	logger.Info().Msg("server gracefully stopped")
	return nil
}

// buildDependencies wires the database mirror, cache and catalog service from config
func buildDependencies(cfg *config.Config) (*types.Dependencies, func(), error) {
	deps := &types.Dependencies{Version: Version}
	release := func() {}

	opts := []catalog.Option{
		catalog.WithLimits(cfg.Catalog.DefaultLimit, cfg.Catalog.MaxLimit),
		catalog.WithMirrorFallback(cfg.Catalog.MirrorFallback),
	}

	if cfg.Database.Path != "" {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
		if err != nil {
			return nil, nil, err
		}
		if err := db.AutoMigrate(models.All()...); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		deps.DB = db
		repo := catalog.NewRepository(db.DB)
		opts = append(opts, catalog.WithRepository(repo))

		var pruner *cleanup.Service
		if cfg.Database.PruneAfter > 0 {
			pruner = cleanup.NewService(repo, cfg.Database.PruneAfter, cfg.Database.PruneInterval)
			pruner.Start(context.Background())
		}
		release = func() {
			if pruner != nil {
				pruner.Stop()
			}
			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("closing database")
			}
		}
	}

	if cfg.Cache.Enabled {
		opts = append(opts, catalog.WithCache(
			cache.NewMemoryCache(cfg.Cache.SearchTTL, cfg.Cache.CleanupInterval),
			cfg.Cache.SearchTTL,
		))
	}

	client, err := catalog.NewClient(catalog.Config{
		BaseURL:           cfg.Catalog.BaseURL,
		Timeout:           cfg.Catalog.Timeout,
		RetryAttempts:     cfg.Catalog.RetryAttempts,
		RetryBackoff:      cfg.Catalog.RetryBackoff,
		RequestsPerSecond: cfg.Catalog.RateLimit,
		Burst:             cfg.Catalog.Burst,
		UserAgent:         cfg.Catalog.UserAgent,
	})
	if err != nil {
		release()
		return nil, nil, err
	}

	deps.Catalog = catalog.NewService(client, opts...)
	deps.CatalogURL = client.BaseURL()
	return deps, release, nil
}
