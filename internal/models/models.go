package models

import (
	"time"

	"gorm.io/gorm"
)

// Podcast is a catalog entry mirrored from the upstream catalog
type Podcast struct {
	gorm.Model
	CatalogID       string        `json:"catalog_id" gorm:"uniqueIndex;not null"`
	Title           string        `json:"title" gorm:"not null;index"`
	Description     string        `json:"description" gorm:"type:text"`
	Images          PodcastImages `json:"images" gorm:"embedded;embeddedPrefix:image_"`
	IsExclusive     bool          `json:"is_exclusive"`
	PublisherName   string        `json:"publisher_name"`
	PublisherID     string        `json:"publisher_id"`
	MediaType       string        `json:"media_type"`
	CategoryID      string        `json:"category_id"`
	CategoryName    string        `json:"category_name" gorm:"index"`
	HasFreeEpisodes bool          `json:"has_free_episodes"`
	PlaySequence    string        `json:"play_sequence"`

	// Mirror bookkeeping
	LastSeenAt time.Time `json:"last_seen_at"`
	SeenCount  int       `json:"seen_count" gorm:"default:0"`
}

// PodcastImages holds the artwork variants for a podcast
type PodcastImages struct {
	Default   string `json:"default"`
	Featured  string `json:"featured"`
	Thumbnail string `json:"thumbnail"`
	Wide      string `json:"wide"`
}

// All returns every model that needs to be migrated
func All() []any {
	return []any{&Podcast{}}
}
