package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-search/api/types"
	"github.com/killallgit/podcast-search/internal/services/catalog"
	"github.com/killallgit/podcast-search/pkg/logger"
)

// ListPodcasts returns one page of the catalog
// @Summary      List or search podcasts
// @Description  Returns one page of catalog items. When the upstream catalog is unavailable the page
// @Description  may be served from the local mirror; the X-Catalog-Source header says which.
// @Tags         podcasts
// @Produce      json
// @Param        page   query int    false "Page number, starting at 1" minimum(1) default(1)
// @Param        limit  query int    false "Items per page" minimum(1) maximum(100) default(10)
// @Param        search query string false "Free text search" example(technology)
// @Success      200 {object} types.PodcastsResponse "Page of podcasts"
// @Failure      400 {object} types.ErrorResponse "Invalid page, limit or search"
// @Failure      429 {object} types.ErrorResponse "Rate limit exceeded"
// @Failure      502 {object} types.ErrorResponse "Upstream catalog error"
// @Failure      504 {object} types.ErrorResponse "Upstream catalog timed out"
// @Router       /api/podcasts [get]
func ListPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PodcastListRequest
		if !types.BindQueryOrError(c, &req) {
			return
		}

		page, err := deps.Catalog.Search(c.Request.Context(), req.Query())
		if err != nil {
			types.SendError(c, err)
			return
		}

		logger.WithContext(c.Request.Context()).Debug().
			Int("page", page.Query.Page).
			Int("limit", page.Query.Limit).
			Int("items", len(page.Items)).
			Str("source", string(page.Source)).
			Msg("catalog page served")

		items := page.Items
		if items == nil {
			items = []catalog.Podcast{}
		}

		c.Header(types.SourceHeader, string(page.Source))
		c.JSON(http.StatusOK, types.PodcastsResponse{Items: items})
	}
}
