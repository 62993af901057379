package types

import (
	"github.com/killallgit/podcast-search/internal/database"
	"github.com/killallgit/podcast-search/internal/services/catalog"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB         *database.DB
	Catalog    catalog.Searcher
	CatalogURL string
	Version    string
}
