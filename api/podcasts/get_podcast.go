package podcasts

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api/types"
)

// GetPodcast returns a mirrored podcast by catalog id
// @Summary      Get podcast details
// @Description  Retrieve a podcast from the local mirror. Only podcasts that have appeared in a
// @Description  previous list response are available.
// @Tags         podcasts
// @Produce      json
// @Param        id path string true "Catalog id" example(1)
// @Success      200 {object} types.PodcastResponse "Podcast details"
// @Failure      400 {object} types.ErrorResponse "Missing podcast id"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.Param("id"))
		if id == "" {
			types.SendBadRequest(c, "Missing podcast id")
			return
		}

		podcast, err := deps.Catalog.Get(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}

		c.JSON(http.StatusOK, types.PodcastResponse{Podcast: *podcast})
	}
}
