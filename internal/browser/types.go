package browser

import "github.com/killallgit/podcast-search/internal/services/catalog"

// ID is a catalog id; numeric and string ids both decode
type ID = catalog.ID

// Podcast is one catalog item as served by the API
type Podcast struct {
	ID              ID     `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Images          Images `json:"images"`
	IsExclusive     bool   `json:"isExclusive"`
	PublisherName   string `json:"publisherName"`
	PublisherID     string `json:"publisherId"`
	MediaType       string `json:"mediaType"`
	CategoryID      string `json:"categoryId"`
	CategoryName    string `json:"categoryName"`
	HasFreeEpisodes bool   `json:"hasFreeEpisodes"`
	PlaySequence    string `json:"playSequence"`
}

// Images holds artwork URLs
type Images struct {
	Default   string `json:"default"`
	Featured  string `json:"featured"`
	Thumbnail string `json:"thumbnail"`
	Wide      string `json:"wide"`
}

// Response is the body of GET /api/podcasts
type Response struct {
	Items []Podcast `json:"items"`
}

// View is what the front end should render for a snapshot
type View int

const (
	ViewIdle View = iota
	ViewLoading
	ViewEmpty
	ViewResults
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewEmpty:
		return "empty"
	case ViewResults:
		return "results"
	default:
		return "idle"
	}
}

// Snapshot is an immutable copy of session state
type Snapshot struct {
	Version    uint64
	Input      string
	Page       int
	Limit      int
	IsLastPage bool
	Loading    bool
	Fetched    bool
	Err        string
	Items      []Podcast
}

// View derives what the body shows. Results already on screen stay visible
// while the next page loads; Loading only wins when there is nothing to show.
// Err is shown alongside whatever view applies.
func (s Snapshot) View() View {
	switch {
	case s.Fetched && len(s.Items) > 0:
		return ViewResults
	case s.Loading:
		return ViewLoading
	case !s.Fetched:
		return ViewIdle
	default:
		return ViewEmpty
	}
}

// HasPrevious reports whether the previous page control is enabled
func (s Snapshot) HasPrevious() bool {
	return s.Page > 1
}

// HasNext reports whether the next page control is enabled
func (s Snapshot) HasNext() bool {
	return !s.IsLastPage
}
