package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcast-search/api/health"
	"github.com/killallgit/podcast-search/api/podcasts"
	"github.com/killallgit/podcast-search/api/types"
	"github.com/killallgit/podcast-search/api/version"
	_ "github.com/killallgit/podcast-search/docs/swagger"
)

// RegisterRoutes registers all API routes. rateLimit may be nil to disable limiting.
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimit gin.HandlerFunc) {
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	if deps.Catalog == nil {
		return
	}

	podcastGroup := engine.Group("/api/podcasts")
	if rateLimit != nil {
		podcastGroup.Use(rateLimit)
	}
	podcasts.RegisterRoutes(podcastGroup, deps)
}
