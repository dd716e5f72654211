// Package render writes session tables and tag summaries as text,
// styled for a terminal or plain for pipes.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Zuo-Peng/twreport/internal/report"
	"github.com/Zuo-Peng/twreport/internal/stats"
)

const timeLayout = "2006-01-02 15:04:05"

// barWidth is the width of the proportional bar in the tag summary.
const barWidth = 20

var (
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleOpen   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleTotal  = lipgloss.NewStyle().Bold(true)
)

// Options controls styling and truncation.
type Options struct {
	Color      bool
	OpenMarker string // shown in the Ended column for open sessions
	Width      int    // terminal width, 0 = never truncate
}

func (o Options) marker() string {
	if o.OpenMarker == "" {
		return "-"
	}
	return o.OpenMarker
}

// FormatDuration renders a duration the way timew's summary does: H:MM:SS.
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

// Sessions writes one aligned row per session: id, start, end or the
// open marker, duration, tags, annotation.
func Sessions(w io.Writer, sessions []report.Session, now time.Time, opts Options) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions.")
		return
	}

	headers := []string{"ID", "Started", "Ended", "Duration", "Tags", "Annotation"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		end := opts.marker()
		if s.End != nil {
			end = s.End.Format(timeLayout)
		}
		annotation := ""
		if s.Annotation != nil {
			annotation = *s.Annotation
		}
		rows = append(rows, []string{
			strconv.Itoa(s.ID),
			s.Start.Format(timeLayout),
			end,
			FormatDuration(s.Duration(now)),
			truncate(strings.Join(s.Tags, " "), opts.tagWidth()),
			truncate(annotation, opts.annotationWidth()),
		})
	}

	widths := columnWidths(headers, rows)
	writeRow(w, headers, widths, opts.Color, styleHeader)
	for i, row := range rows {
		style := styleDim
		if sessions[i].Open() {
			style = styleOpen
		}
		writeRow(w, row, widths, opts.Color, style)
	}
}

// TagSummary writes one line per tag with a bar proportional to its
// share of total, followed by a footer total.
func TagSummary(w io.Writer, totals []stats.TagTotal, total time.Duration, opts Options) {
	if len(totals) == 0 {
		fmt.Fprintln(w, "No tagged time.")
		return
	}

	nameWidth := runewidth.StringWidth("Total")
	for _, tt := range totals {
		if n := runewidth.StringWidth(tt.Tag); n > nameWidth {
			nameWidth = n
		}
	}

	for _, tt := range totals {
		bar := makeBar(tt.Total, total)
		if opts.Color {
			bar = styleDim.Render(bar)
		}
		fmt.Fprintf(w, "%s  %s  %s  (%d)\n",
			pad(tt.Tag, nameWidth), bar, FormatDuration(tt.Total), tt.Sessions)
	}

	footer := fmt.Sprintf("%s  %s  %s",
		pad("Total", nameWidth), strings.Repeat(" ", barWidth), FormatDuration(total))
	if opts.Color {
		footer = styleTotal.Render(footer)
	}
	fmt.Fprintln(w, footer)
}

// ConfigTable writes the report's config mapping sorted by key.
func ConfigTable(w io.Writer, config map[string]string) {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	keyWidth := 0
	for _, k := range keys {
		if n := runewidth.StringWidth(k); n > keyWidth {
			keyWidth = n
		}
	}
	for _, k := range keys {
		fmt.Fprintf(w, "%s  %s\n", pad(k, keyWidth), config[k])
	}
}

// makeBar scales d against total into a barWidth-cell block bar.
// Non-zero durations always get at least one cell.
func makeBar(d, total time.Duration) string {
	n := 0
	if total > 0 {
		n = int(int64(d) * barWidth / int64(total))
	}
	if n == 0 && d > 0 {
		n = 1
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat(" ", barWidth-n)
}

// tagWidth caps the tag column when a terminal width is known.
func (o Options) tagWidth() int {
	if o.Width == 0 {
		return 0
	}
	return 24
}

// annotationWidth gives the annotation column whatever the fixed
// columns leave over.
func (o Options) annotationWidth() int {
	if o.Width == 0 {
		return 0
	}
	// id + two timestamps + duration + capped tags + separators
	remaining := o.Width - 64 - 24
	if remaining < 10 {
		remaining = 10
	}
	return remaining
}

// truncate cuts s to max visible columns; max 0 means no limit.
func truncate(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// pad right-pads s to width visible columns.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := runewidth.StringWidth(cell); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func writeRow(w io.Writer, cells []string, widths []int, color bool, style lipgloss.Style) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = pad(cell, widths[i])
	}
	line := strings.TrimRight(strings.Join(parts, "  "), " ")
	if color {
		line = style.Render(line)
	}
	fmt.Fprintln(w, line)
}
