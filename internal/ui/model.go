package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/killallgit/podcast-search/internal/browser"
)

// changedMsg tells the model the session has new state to read
type changedMsg struct{}

// Model is the Bubble Tea model for the catalog browser
type Model struct {
	session *browser.Session
	changes chan struct{}

	input   textinput.Model
	spinner spinner.Model
	styles  Styles

	snap   browser.Snapshot
	width  int
	height int
	done   bool
}

// New creates a model and the session it drives. opts.OnChange is replaced.
func New(fetcher browser.Fetcher, opts browser.Options, initialQuery string) Model {
	// one pending signal is enough; the model always reads the latest snapshot
	changes := make(chan struct{}, 1)
	opts.OnChange = func(browser.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	}

	session := browser.NewSession(fetcher, opts)

	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()
	if initialQuery != "" {
		ti.SetValue(initialQuery)
		session.SetInput(initialQuery)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session: session,
		changes: changes,
		input:   ti,
		spinner: sp,
		styles:  DefaultStyles(),
		snap:    session.Snapshot(),
		width:   BreakpointMD,
	}
}

// Session exposes the underlying session
func (m Model) Session() *browser.Session {
	return m.session
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

// Init starts the first load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		waitForChange(m.changes),
		func() tea.Msg {
			m.session.Start()
			return nil
		},
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - lenPrompt(m.input) - 1
		return m, nil

	case changedMsg:
		m.snap = m.session.Snapshot()
		return m, waitForChange(m.changes)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.done = true
			m.session.Close()
			return m, tea.Quit
		case "enter":
			m.session.Submit()
			return m, nil
		case "right", "ctrl+n", "pgdown":
			m.session.Next()
			return m, nil
		case "left", "ctrl+p", "pgup":
			m.session.Previous()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.session.SetInput(v)
	}
	return m, cmd
}

// View renders the browser
func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Podcasts"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(renderBody(m.snap, m.width, m.styles, m.spinner.View()+" Loading..."))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("enter search • ←/→ page • esc quit"))
	return b.String()
}

func lenPrompt(ti textinput.Model) int {
	return lipgloss.Width(ti.Prompt) + 1
}
