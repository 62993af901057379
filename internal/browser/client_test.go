package browser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Encode(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{
		{name: "no search", q: Query{Page: 1, Limit: 10}, want: "limit=10&page=1"},
		{name: "with search", q: Query{Page: 2, Limit: 5, Search: "true crime"}, want: "limit=5&page=2&search=true+crime"},
		{name: "special characters", q: Query{Page: 1, Limit: 10, Search: "a&b=c"}, want: "limit=10&page=1&search=a%26b%3Dc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Encode())
		})
	}
}

func TestClient_Fetch(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantItems  int
		wantErr    error
		wantErrAny bool
	}{
		{name: "items", status: http.StatusOK, body: `{"items":[{"id":"1","title":"A"},{"id":"2","title":"B"}]}`, wantItems: 2},
		{name: "numeric ids", status: http.StatusOK, body: `{"items":[{"id":1,"title":"A"},{"id":"2","title":"B"},{"id":null,"title":"C"}]}`, wantItems: 3},
		{name: "empty list", status: http.StatusOK, body: `{"items":[]}`, wantItems: 0},
		{name: "missing items key", status: http.StatusOK, body: `{}`, wantItems: 0},
		{name: "server error", status: http.StatusBadGateway, body: `{"status":"error"}`, wantErr: ErrResponseNotOK},
		{name: "bad request", status: http.StatusBadRequest, body: ``, wantErr: ErrResponseNotOK},
		{name: "malformed body", status: http.StatusOK, body: `{"items":[`, wantErrAny: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotQuery, gotContentType string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotQuery = r.URL.RawQuery
				gotContentType = r.Header.Get("Content-Type")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient(srv.URL+"/", time.Second)
			require.NoError(t, err)
			defer c.CloseIdleConnections()

			resp, err := c.Fetch(context.Background(), Query{Page: 3, Limit: 10, Search: "jazz"})

			assert.Equal(t, "/api/podcasts", gotPath)
			assert.Equal(t, "limit=10&page=3&search=jazz", gotQuery)
			assert.Equal(t, "application/json", gotContentType)

			switch {
			case tt.wantErr != nil:
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Contains(t, err.Error(), "Network response was not ok")
			case tt.wantErrAny:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.NotNil(t, resp.Items)
				assert.Len(t, resp.Items, tt.wantItems)
			}
		})
	}
}

func TestClient_Fetch_Cancelled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	defer c.CloseIdleConnections()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Fetch(ctx, Query{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Invalid(t *testing.T) {
	_, err := NewClient("localhost:8080", 0)
	assert.Error(t, err)

	c, err := NewClient("http://localhost:8080/base", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/base/api/podcasts?limit=10&page=1", c.URL(Query{Page: 1, Limit: 10}))
}

func TestClient_Fetch_NumericIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[{"id":42,"title":"Numbers"},{"id":"abc","title":"Letters"}]}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, time.Second)
	require.NoError(t, err)
	defer c.CloseIdleConnections()

	resp, err := c.Fetch(context.Background(), Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, ID("42"), resp.Items[0].ID)
	assert.Equal(t, ID("abc"), resp.Items[1].ID)
}
