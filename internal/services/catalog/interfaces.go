package catalog

import (
	"context"
	"time"

	"github.com/killallgit/podcast-search/internal/models"
)

// Fetcher retrieves pages from the upstream catalog
type Fetcher interface {
	List(ctx context.Context, q Query) ([]Podcast, error)
}

// PodcastRepository is the data access interface for the local mirror
type PodcastRepository interface {
	UpsertMany(ctx context.Context, podcasts []models.Podcast) error
	Search(ctx context.Context, search string, page, limit int) ([]models.Podcast, error)
	GetByCatalogID(ctx context.Context, catalogID string) (*models.Podcast, error)
	Count(ctx context.Context) (int64, error)
	PruneSeenBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Searcher is what the HTTP layer needs from the catalog service
type Searcher interface {
	Search(ctx context.Context, q Query) (*Page, error)
	Get(ctx context.Context, catalogID string) (*Podcast, error)
}
