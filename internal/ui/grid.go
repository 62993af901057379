package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/podcast-search/internal/browser"
)

// Breakpoints in terminal cells
const (
	BreakpointMD = 80
	BreakpointLG = 120

	cardGap          = 1
	maxDescriptionLn = 6
)

// Columns returns the grid column count for a terminal width
func Columns(width int) int {
	switch {
	case width >= BreakpointLG:
		return 3
	case width >= BreakpointMD:
		return 2
	default:
		return 1
	}
}

// cardWidth is the outer width of one card, border included
func cardWidth(width, cols int) int {
	w := (width - (cols-1)*cardGap) / cols
	if w < 12 {
		w = 12
	}
	return w
}

func renderCard(p browser.Podcast, outer int, st Styles) string {
	// border takes one cell on each side
	inner := outer - 2
	content := inner - st.Card.GetHorizontalPadding()
	if content < 1 {
		content = 1
	}

	lines := []string{st.CardTitle.Width(content).Render(p.Title)}
	if p.Images.Thumbnail != "" {
		lines = append(lines, st.CardImage.Width(content).Render(p.Images.Thumbnail))
	}
	if p.Description != "" {
		body := st.CardBody.Width(content).Render(p.Description)
		if n := strings.Split(body, "\n"); len(n) > maxDescriptionLn {
			body = strings.Join(n[:maxDescriptionLn], "\n")
		}
		lines = append(lines, body)
	}

	return st.Card.Width(inner).Render(strings.Join(lines, "\n"))
}

// RenderGrid lays items out in rows of Columns(width) cards
func RenderGrid(items []browser.Podcast, width int, st Styles) string {
	if len(items) == 0 {
		return ""
	}

	cols := Columns(width)
	outer := cardWidth(width, cols)
	spacer := strings.Repeat(" ", cardGap)

	rows := make([]string, 0, (len(items)+cols-1)/cols)
	for start := 0; start < len(items); start += cols {
		end := start + cols
		if end > len(items) {
			end = len(items)
		}

		cells := make([]string, 0, 2*cols-1)
		for i, p := range items[start:end] {
			if i > 0 {
				cells = append(cells, spacer)
			}
			cells = append(cells, renderCard(p, outer, st))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderPager draws Previous / page / Next with disabled controls dimmed
func renderPager(snap browser.Snapshot, st Styles) string {
	prev, next := st.PagerOff, st.PagerOff
	if snap.HasPrevious() {
		prev = st.PagerActive
	}
	if snap.HasNext() {
		next = st.PagerActive
	}

	return st.Pager.Render(fmt.Sprintf("%s  Page %d  %s",
		prev.Render("‹ Previous"),
		snap.Page,
		next.Render("Next ›"),
	))
}

// renderBody is the part shared by the interactive view and RenderPlain
func renderBody(snap browser.Snapshot, width int, st Styles, loading string) string {
	var b strings.Builder

	// the loading line sits above whatever is already on screen
	if snap.Loading {
		b.WriteString(st.Status.Render(loading))
		b.WriteString("\n")
	}

	switch snap.View() {
	case browser.ViewEmpty:
		b.WriteString(st.Status.Render("No data found."))
		b.WriteString("\n")
	case browser.ViewResults:
		b.WriteString(RenderGrid(snap.Items, width, st))
		b.WriteString("\n")
	}

	b.WriteString(renderPager(snap, st))

	if snap.Err != "" {
		b.WriteString("\n")
		b.WriteString(st.Error.Render("Error: " + snap.Err))
	}

	return b.String()
}

// RenderPlain renders a snapshot without the input box or key help
func RenderPlain(snap browser.Snapshot, width int) string {
	if width <= 0 {
		width = BreakpointMD
	}
	return renderBody(snap, width, DefaultStyles(), "Loading...") + "\n"
}
