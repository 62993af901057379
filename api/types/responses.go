package types

import "github.com/killallgit/podcast-search/internal/services/catalog"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SourceHeader tells clients whether a page came from upstream, cache or mirror
const SourceHeader = "X-Catalog-Source"

// PodcastsResponse is the list payload consumed by the browser
type PodcastsResponse struct {
	Items []catalog.Podcast `json:"items"`
}

// PodcastResponse wraps a single mirrored podcast
type PodcastResponse struct {
	Podcast catalog.Podcast `json:"podcast"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp string                 `json:"timestamp"`
	Services  map[string]interface{} `json:"services"`
}

// VersionResponse for the version endpoint
type VersionResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
}
