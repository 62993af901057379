package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports mirror database status and the configured upstream catalog
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := getDatabaseStatus(deps)

		status := http.StatusOK
		overall := types.StatusOK
		if dbStatus["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			overall = "unhealthy"
		}

		c.JSON(status, types.HealthResponse{
			Status:    overall,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Services: map[string]interface{}{
				"database": dbStatus,
				"catalog":  getCatalogStatus(deps),
			},
		})
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

func getCatalogStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.Catalog == nil {
		return gin.H{"status": "not configured"}
	}
	return gin.H{"status": "configured", "url": deps.CatalogURL}
}
