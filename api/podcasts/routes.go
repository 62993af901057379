package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api/types"
)

// RegisterRoutes registers podcast routes
// Rate limiting is applied by the caller on the group
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/podcasts?page=&limit=&search=
	router.GET("", ListPodcasts(deps))

	// GET /api/podcasts/:id
	router.GET("/:id", GetPodcast(deps))
}
