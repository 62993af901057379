package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api/types"
)

// Name is reported by the version endpoint
const Name = "Podcast Search API"

// Get handles version requests
// @Summary      Service version
// @Tags         system
// @Produce      json
// @Success      200 {object} types.VersionResponse
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	v := "dev"
	if deps != nil && deps.Version != "" {
		v = deps.Version
	}

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:    Name,
			Version: v,
			Status:  "running",
		})
	}
}
