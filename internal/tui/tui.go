// Package tui is an interactive browser over an already-parsed report:
// a filterable session list on the left, a detail pane on the right.
package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/twreport/internal/report"
)

type model struct {
	sessions    []report.Session // all sessions, id order
	filtered    []report.Session
	now         time.Time
	openMarker  string
	cursor      int
	listOffset  int
	filterInput textinput.Model
	detail      viewport.Model
	width       int
	height      int
	ready       bool
	quitting    bool
}

func initialModel(sessions []report.Session, now time.Time, openMarker string) model {
	ti := textinput.New()
	ti.Placeholder = "Filter by tag or annotation..."
	ti.Focus()
	ti.Prompt = "> "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	return model{
		sessions:    sessions,
		filtered:    sessions,
		now:         now,
		openMarker:  openMarker,
		filterInput: ti,
		detail:      viewport.New(0, 0),
	}
}

// Run starts the browser and blocks until the user quits. Stdin is
// usually the report pipe, so the caller passes the terminal to read
// keys from; nil falls back to bubbletea's default.
func Run(sessions []report.Session, now time.Time, openMarker string, input io.Reader) error {
	m := initialModel(sessions, now, openMarker)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if input != nil {
		opts = append(opts, tea.WithInput(input))
	}

	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.detail = viewport.New(m.detailWidth(), m.panelHeight())
		m.refreshDetail()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.adjustListScroll(m.panelHeight())
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				m.adjustListScroll(m.panelHeight())
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, keys.DetailUp):
			m.detail.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.DetailDn):
			m.detail.LineDown(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.PageUp):
			m.detail.LineUp(m.panelHeight())
			return m, nil

		case key.Matches(msg, keys.PageDown):
			m.detail.LineDown(m.panelHeight())
			return m, nil
		}

		// Remaining keys edit the filter
		var tiCmd tea.Cmd
		m.filterInput, tiCmd = m.filterInput.Update(msg)
		m.applyFilter(m.filterInput.Value())
		return m, tiCmd
	}

	return m, nil
}

// applyFilter narrows the session list to entries whose tags or
// annotation contain query, case-insensitively.
func (m *model) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		m.filtered = m.sessions
	} else {
		var out []report.Session
		for _, s := range m.sessions {
			if matchesFilter(s, query) {
				out = append(out, s)
			}
		}
		m.filtered = out
	}
	m.cursor = 0
	m.listOffset = 0
	m.refreshDetail()
}

func matchesFilter(s report.Session, query string) bool {
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return s.Annotation != nil && strings.Contains(strings.ToLower(*s.Annotation), query)
}

// refreshDetail re-renders the detail pane for the session under the
// cursor. Always rebuilt: ids are not guaranteed unique, so they make
// no safe cache key, and the content is cheap.
func (m *model) refreshDetail() {
	if len(m.filtered) == 0 || m.cursor >= len(m.filtered) {
		m.detail.SetContent("")
		return
	}
	m.detail.SetContent(m.detailContent(m.filtered[m.cursor]))
	m.detail.GotoTop()
}

// View renders the full TUI.
func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}

	listW := m.listWidth()
	detailW := m.detailWidth()
	panelH := m.panelHeight()

	inputRow := m.filterInput.View()

	listPanel := stylePanelBorder.
		Width(listW).
		Height(panelH).
		Render(m.renderList(listW, panelH))

	m.detail.Width = detailW
	m.detail.Height = panelH
	detailPanel := styleActiveBorder.
		Width(detailW).
		Height(panelH).
		Render(m.detail.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	status := m.statusBar()

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, status)
}

func (m model) statusBar() string {
	open := 0
	for _, s := range m.filtered {
		if s.Open() {
			open++
		}
	}
	return styleStatusBar.Render(fmt.Sprintf(
		"%d/%d sessions  %d open  |  up/dn move  C-u/C-d scroll  esc quit",
		len(m.filtered), len(m.sessions), open))
}

// layout helpers

func (m model) listWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width*40/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) detailWidth() int {
	if m.width <= 0 {
		return 40
	}
	w := m.width - m.listWidth() - 6
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row + borders + status bar
	h := m.height - 5
	if h < 5 {
		h = 5
	}
	return h
}
