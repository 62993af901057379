package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{
		BaseURL:       server.URL + "/podcasts",
		Timeout:       2 * time.Second,
		RetryAttempts: 3,
		RetryBackoff:  time.Millisecond,
	})
	require.NoError(t, err)
	return client, server
}

func TestClient_List_Parameters(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/podcasts", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("p"))
		assert.Equal(t, "10", r.URL.Query().Get("l"))
		assert.Equal(t, "tech talk", r.URL.Query().Get("search"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"7","title":"Tech Talk","images":{"thumbnail":"https://example.com/t.jpg"}}]}`))
	})

	items, err := client.List(context.Background(), Query{Page: 2, Limit: 10, Search: "tech talk"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ID("7"), items[0].ID)
	assert.Equal(t, "Tech Talk", items[0].Title)
	assert.Equal(t, "https://example.com/t.jpg", items[0].Images.Thumbnail)
}

func TestClient_List_OmitsEmptySearch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["search"]
		assert.False(t, present)
		_, _ = w.Write([]byte(`[]`))
	})

	items, err := client.List(context.Background(), Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestClient_List_Responses(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantLen   int
		wantErr   error
		wantCalls int32
	}{
		{name: "bare array with numeric ids", status: 200, body: `[{"id":1,"title":"A"},{"id":2,"title":"B"}]`, wantLen: 2, wantCalls: 1},
		{name: "not found is an empty page", status: 404, body: `"Not found"`, wantLen: 0, wantCalls: 1},
		{name: "invalid body", status: 200, body: `{"items":`, wantErr: ErrInvalidResponse, wantCalls: 1},
		{name: "rate limited on every attempt", status: 429, wantErr: ErrRateLimited, wantCalls: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			items, err := client.List(context.Background(), Query{Page: 1, Limit: 10})
			assert.Equal(t, tt.wantCalls, calls.Load())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tt.wantLen)
		})
	}
}

func TestClient_List_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"1","title":"Recovered"}]}`))
	})

	items, err := client.List(context.Background(), Query{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, items, 1)
	assert.Equal(t, "Recovered", items[0].Title)
}

func TestClient_List_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.List(context.Background(), Query{Page: 1, Limit: 10})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Code)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_List_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.List(ctx, Query{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "not a url"})
	assert.Error(t, err)

	client, err := NewClient(Config{BaseURL: "https://example.com/podcasts?sortBy=title"})
	require.NoError(t, err)
	assert.Contains(t, client.listURL(Query{Page: 3, Limit: 5}), "sortBy=title")
	assert.Contains(t, client.listURL(Query{Page: 3, Limit: 5}), "p=3")
}

func TestQuery_Values(t *testing.T) {
	assert.Equal(t, "limit=10&page=1", Query{Page: 1, Limit: 10}.Values().Encode())
	assert.Equal(t, "limit=5&page=2&search=news+daily", Query{Page: 2, Limit: 5, Search: "news daily"}.Values().Encode())
}
