package catalog

import (
	"time"

	"github.com/killallgit/podcast-search/internal/models"
)

// ToModel converts an upstream podcast into its mirror row
func ToModel(p Podcast, seenAt time.Time) models.Podcast {
	return models.Podcast{
		CatalogID:   string(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Images: models.PodcastImages{
			Default:   p.Images.Default,
			Featured:  p.Images.Featured,
			Thumbnail: p.Images.Thumbnail,
			Wide:      p.Images.Wide,
		},
		IsExclusive:     p.IsExclusive,
		PublisherName:   p.PublisherName,
		PublisherID:     p.PublisherID,
		MediaType:       p.MediaType,
		CategoryID:      p.CategoryID,
		CategoryName:    p.CategoryName,
		HasFreeEpisodes: p.HasFreeEpisodes,
		PlaySequence:    p.PlaySequence,
		LastSeenAt:      seenAt,
		SeenCount:       1,
	}
}

// FromModel converts a mirror row back into the API representation
func FromModel(m *models.Podcast) Podcast {
	return Podcast{
		ID:          ID(m.CatalogID),
		Title:       m.Title,
		Description: m.Description,
		Images: Images{
			Default:   m.Images.Default,
			Featured:  m.Images.Featured,
			Thumbnail: m.Images.Thumbnail,
			Wide:      m.Images.Wide,
		},
		IsExclusive:     m.IsExclusive,
		PublisherName:   m.PublisherName,
		PublisherID:     m.PublisherID,
		MediaType:       m.MediaType,
		CategoryID:      m.CategoryID,
		CategoryName:    m.CategoryName,
		HasFreeEpisodes: m.HasFreeEpisodes,
		PlaySequence:    m.PlaySequence,
	}
}

// FromModels converts a slice of mirror rows
func FromModels(rows []models.Podcast) []Podcast {
	out := make([]Podcast, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
