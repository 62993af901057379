package browser

import (
	"net/url"
	"strconv"
)

// Query is the state a fetch is built from
type Query struct {
	Page   int
	Limit  int
	Search string
}

// Values always carries page and limit; search only when non-empty
func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

// Encode returns the URL-encoded query string
func (q Query) Encode() string {
	return q.Values().Encode()
}
