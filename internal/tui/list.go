package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/twreport/internal/render"
	"github.com/Zuo-Peng/twreport/internal/report"
)

// linesPerItem is the number of terminal lines each session occupies.
const linesPerItem = 2

// renderList renders the left panel: sessions with scrolling.
func (m model) renderList(width, height int) string {
	if len(m.filtered) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(colorDim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("No sessions")
		return empty
	}

	var lines []string
	for i, s := range m.filtered {
		if i < m.listOffset {
			continue
		}
		if len(lines)+linesPerItem > height {
			break
		}
		rows := m.formatSessionLine(s, width, i == m.cursor)
		lines = append(lines, rows...)
	}

	// Pad remaining lines
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}

	return strings.Join(lines, "\n")
}

// formatSessionLine formats one session as two lines:
//
//	line 1: [>] id  start  duration-or-marker
//	line 2:    tags · annotation (dimmed)
func (m model) formatSessionLine(s report.Session, width int, selected bool) []string {
	length := m.openMarker
	if !s.Open() {
		length = render.FormatDuration(s.Duration(m.now))
	}

	head := fmt.Sprintf("#%-4d %s  %s", s.ID, s.Start.Format("01-02 15:04"), length)
	if s.Open() {
		head = styleOpenSession.Render(head)
	}

	line1 := "  " + head
	if selected {
		line1 = styleListSelected.Render("> ") + head
	}

	meta := strings.Join(s.Tags, " ")
	if s.Annotation != nil {
		if meta != "" {
			meta += " · "
		}
		meta += *s.Annotation
	}
	meta = strings.ReplaceAll(meta, "\n", " ")
	metaMax := width - 4
	if metaMax < 0 {
		metaMax = 0
	}
	if runewidth.StringWidth(meta) > metaMax {
		meta = runewidth.Truncate(meta, metaMax, "")
	}
	line2 := "    " + lipgloss.NewStyle().Foreground(colorDim).Render(meta)

	return []string{line1, line2}
}

// adjustListScroll keeps the cursor visible within the list viewport.
func (m *model) adjustListScroll(listHeight int) {
	visibleItems := listHeight / linesPerItem
	if visibleItems < 1 {
		visibleItems = 1
	}
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
	}
	if m.cursor >= m.listOffset+visibleItems {
		m.listOffset = m.cursor - visibleItems + 1
	}
}
