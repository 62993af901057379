package types

import "github.com/killallgit/podcast-search/internal/services/catalog"

// PodcastListRequest is the query string of GET /api/podcasts
type PodcastListRequest struct {
	Page   int    `form:"page" example:"1"`
	Limit  int    `form:"limit" example:"10"`
	Search string `form:"search" binding:"max=200" example:"technology"`
}

// Query converts the request into a catalog query; range checks happen in the service
func (r PodcastListRequest) Query() catalog.Query {
	return catalog.Query{Page: r.Page, Limit: r.Limit, Search: r.Search}
}
