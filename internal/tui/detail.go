package tui

import (
	"fmt"
	"strings"

	"github.com/Zuo-Peng/twreport/internal/render"
	"github.com/Zuo-Peng/twreport/internal/report"
)

const detailTimeLayout = "2006-01-02 15:04:05 MST"

// detailContent builds the right-pane text for one session.
func (m model) detailContent(s report.Session) string {
	var b strings.Builder

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", styleFieldLabel.Render(label+":"), value)
	}

	field("Session", fmt.Sprintf("#%d", s.ID))
	field("Started", s.Start.Format(detailTimeLayout))
	if s.End != nil {
		field("Ended", s.End.Format(detailTimeLayout))
	} else {
		field("Ended", styleOpenSession.Render(m.openMarker+" (still tracking)"))
	}
	field("Duration", render.FormatDuration(s.Duration(m.now)))

	b.WriteString("\n")
	if len(s.Tags) == 0 {
		field("Tags", "(none)")
	} else {
		field("Tags", strings.Join(s.Tags, ", "))
	}

	if s.Annotation != nil {
		b.WriteString("\n")
		b.WriteString(styleFieldLabel.Render("Annotation:"))
		b.WriteString("\n")
		b.WriteString(*s.Annotation)
		b.WriteString("\n")
	}

	return b.String()
}
