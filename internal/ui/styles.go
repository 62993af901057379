// Package ui is the terminal front end for browsing the podcast catalog.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent   = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorMuted    = lipgloss.AdaptiveColor{Light: "#8A8F98", Dark: "#6B7280"}
	colorBorder   = lipgloss.AdaptiveColor{Light: "#D0D4DA", Dark: "#3B4252"}
	colorError    = lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"}
	colorDisabled = lipgloss.AdaptiveColor{Light: "#C4C8CE", Dark: "#4B5563"}
)

// Styles groups every style the browser renders with
type Styles struct {
	Title       lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardImage   lipgloss.Style
	CardBody    lipgloss.Style
	Pager       lipgloss.Style
	PagerActive lipgloss.Style
	PagerOff    lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the standard theme
func DefaultStyles() Styles {
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder).Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		CardImage:   lipgloss.NewStyle().Foreground(colorMuted),
		CardBody:    lipgloss.NewStyle(),
		Pager:       lipgloss.NewStyle().MarginTop(1),
		PagerActive: lipgloss.NewStyle().Foreground(colorAccent),
		PagerOff:    lipgloss.NewStyle().Foreground(colorDisabled),
		Error:       lipgloss.NewStyle().Foreground(colorError),
		Status:      lipgloss.NewStyle().Foreground(colorMuted),
		Help:        lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
	}
}
