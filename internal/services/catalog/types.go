package catalog

import (
	"bytes"
	"net/url"
	"strconv"

	"github.com/goccy/go-json"
)

// Query is a normalised catalog page request
type Query struct {
	Page   int
	Limit  int
	Search string
}

// Values encodes the query in the public API's parameter names
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Source says where a page of results came from
type Source string

const (
	SourceUpstream Source = "upstream"
	SourceCache    Source = "cache"
	SourceMirror   Source = "mirror"
)

// Page is one page of catalog results
type Page struct {
	Query  Query
	Items  []Podcast
	Source Source
}

// ID accepts both JSON strings and numbers; the upstream is not consistent
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// Podcast is a catalog item as exchanged with the upstream and API clients
type Podcast struct {
	ID              ID     `json:"id" example:"1"`
	Title           string `json:"title" example:"The Tech Show"`
	Description     string `json:"description" example:"A weekly show about technology"`
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

// decodeItems accepts either {"items":[...]} or a bare array
func decodeItems(body []byte) ([]Podcast, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []Podcast{}, nil
	}

	if body[0] == '[' {
		var items []Podcast
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}
		if items == nil {
			items = []Podcast{}
		}
		return items, nil
	}

	var wrapped struct {
		Items []Podcast `json:"items"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Items == nil {
		wrapped.Items = []Podcast{}
	}
	return wrapped.Items, nil
}
