package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/podcast-search/internal/browser"
	"github.com/stretchr/testify/assert"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{width: 40, want: 1},
		{width: 79, want: 1},
		{width: 80, want: 2},
		{width: 119, want: 2},
		{width: 120, want: 3},
		{width: 200, want: 3},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Columns(tt.width), "width %d", tt.width)
	}
}

func items(titles ...string) []browser.Podcast {
	out := make([]browser.Podcast, 0, len(titles))
	for _, title := range titles {
		out = append(out, browser.Podcast{
			Title:       title,
			Description: "A show about " + strings.ToLower(title),
			Images:      browser.Images{Thumbnail: "https://img.example.com/" + strings.ToLower(title) + ".jpg"},
		})
	}
	return out
}

func TestRenderGrid_FitsWidth(t *testing.T) {
	for _, width := range []int{60, 90, 140} {
		out := RenderGrid(items("Alpha", "Bravo", "Charlie", "Delta"), width, DefaultStyles())
		assert.LessOrEqual(t, lipgloss.Width(out), width, "width %d", width)
		for _, title := range []string{"Alpha", "Bravo", "Charlie", "Delta"} {
			assert.Contains(t, out, title)
		}
	}
}

func TestRenderGrid_RowsPerBreakpoint(t *testing.T) {
	st := DefaultStyles()
	list := items("A1", "B2", "C3")

	wide := RenderGrid(list, 150, st)
	narrow := RenderGrid(list, 60, st)

	// three cards side by side are shorter than three stacked cards
	assert.Less(t, lipgloss.Height(wide), lipgloss.Height(narrow))
}

func TestRenderPlain(t *testing.T) {
	tests := []struct {
		name     string
		snap     browser.Snapshot
		contains []string
		absent   []string
	}{
		{
			name:     "results",
			snap:     browser.Snapshot{Page: 1, Limit: 10, Fetched: true, Items: items("Morning News")},
			contains: []string{"Morning News", "a show about morning news", "Page 1", "Next"},
			absent:   []string{"No data found.", "Error:"},
		},
		{
			name:     "empty",
			snap:     browser.Snapshot{Page: 2, Limit: 10, Fetched: true, IsLastPage: true},
			contains: []string{"No data found.", "Page 2"},
		},
		{
			name:     "loading",
			snap:     browser.Snapshot{Page: 1, Loading: true},
			contains: []string{"Loading...", "Page 1"},
			absent:   []string{"No data found."},
		},
		{
			name:     "previous results stay visible while loading",
			snap:     browser.Snapshot{Page: 2, Limit: 10, Loading: true, Fetched: true, Items: items("Still Here")},
			contains: []string{"Loading...", "Still Here", "Page 2"},
		},
		{
			name:     "empty message hidden while loading",
			snap:     browser.Snapshot{Page: 1, Limit: 10, Loading: true, Fetched: true},
			contains: []string{"Loading..."},
			absent:   []string{"No data found."},
		},
		{
			name:     "error shown with stale results",
			snap:     browser.Snapshot{Page: 1, Fetched: true, Items: items("Old"), Err: "Network response was not ok"},
			contains: []string{"Old", "Error: Network response was not ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderPlain(tt.snap, 100)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, out, s)
			}
		})
	}
}
