package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zuo-Peng/twreport/internal/report"
)

func sessionFixture() []report.Session {
	end := time.Date(2021, 7, 11, 11, 0, 0, 0, time.UTC)
	note := "daily standup"
	return []report.Session{
		{ID: 1, Start: time.Date(2021, 7, 11, 10, 0, 0, 0, time.UTC), End: &end, Tags: []string{"Work", "meeting"}, Annotation: &note},
		{ID: 2, Start: time.Date(2021, 7, 11, 11, 30, 0, 0, time.UTC), Tags: []string{"break"}},
	}
}

func TestApplyFilter(t *testing.T) {
	m := initialModel(sessionFixture(), time.Date(2021, 7, 11, 12, 0, 0, 0, time.UTC), "-")

	m.applyFilter("work")
	if len(m.filtered) != 1 || m.filtered[0].ID != 1 {
		t.Fatalf("tag filter should be case-insensitive: %+v", m.filtered)
	}

	m.applyFilter("standup")
	if len(m.filtered) != 1 || m.filtered[0].ID != 1 {
		t.Fatalf("annotation filter failed: %+v", m.filtered)
	}

	m.applyFilter("nothing-matches")
	if len(m.filtered) != 0 {
		t.Fatalf("expected empty result, got %+v", m.filtered)
	}

	m.applyFilter("")
	if len(m.filtered) != 2 {
		t.Fatalf("empty query should restore all sessions, got %d", len(m.filtered))
	}
}

func TestApplyFilterResetsCursor(t *testing.T) {
	m := initialModel(sessionFixture(), time.Now(), "-")
	m.cursor = 1
	m.listOffset = 1

	m.applyFilter("break")
	if m.cursor != 0 || m.listOffset != 0 {
		t.Fatalf("filter should reset cursor/offset, got %d/%d", m.cursor, m.listOffset)
	}
}

func TestAdjustListScroll(t *testing.T) {
	sessions := make([]report.Session, 20)
	for i := range sessions {
		sessions[i] = report.Session{ID: i + 1, Start: time.Now()}
	}
	m := initialModel(sessions, time.Now(), "-")

	// 10 lines of panel = 5 visible items
	m.cursor = 7
	m.adjustListScroll(10)
	if m.listOffset != 3 {
		t.Fatalf("scrolling down: offset = %d, want 3", m.listOffset)
	}

	m.cursor = 1
	m.adjustListScroll(10)
	if m.listOffset != 1 {
		t.Fatalf("scrolling up: offset = %d, want 1", m.listOffset)
	}
}

func TestDetailContent(t *testing.T) {
	m := initialModel(sessionFixture(), time.Date(2021, 7, 11, 12, 0, 0, 0, time.UTC), "-")

	closed := m.detailContent(m.sessions[0])
	for _, want := range []string{"#1", "Work, meeting", "daily standup", "1:00:00"} {
		if !strings.Contains(closed, want) {
			t.Fatalf("detail missing %q:\n%s", want, closed)
		}
	}

	open := m.detailContent(m.sessions[1])
	if !strings.Contains(open, "still tracking") {
		t.Fatalf("open detail should show tracking marker:\n%s", open)
	}
}

func resize(t *testing.T, m model, w, h int) model {
	t.Helper()
	res, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return res.(model)
}

func TestResizeKeepsDetail(t *testing.T) {
	m := initialModel(sessionFixture(), time.Date(2021, 7, 11, 12, 0, 0, 0, time.UTC), "-")

	m = resize(t, m, 100, 40)
	if !strings.Contains(m.detail.View(), "#1") {
		t.Fatalf("detail empty after first size message:\n%s", m.detail.View())
	}

	// a later resize replaces the viewport and must re-render it
	m = resize(t, m, 90, 35)
	if !strings.Contains(m.detail.View(), "#1") {
		t.Fatalf("detail blank after resize:\n%s", m.detail.View())
	}
}

func TestDetailFollowsDuplicateIDs(t *testing.T) {
	// ids are assigned upstream and not validated for uniqueness here,
	// so the pane must track the cursor, not the id
	first, second := "first block", "second block"
	sessions := []report.Session{
		{ID: 7, Start: time.Date(2021, 7, 11, 9, 0, 0, 0, time.UTC), Tags: []string{"a"}, Annotation: &first},
		{ID: 7, Start: time.Date(2021, 7, 11, 10, 0, 0, 0, time.UTC), Tags: []string{"b"}, Annotation: &second},
	}

	m := initialModel(sessions, time.Date(2021, 7, 11, 12, 0, 0, 0, time.UTC), "-")
	m = resize(t, m, 100, 40)
	if !strings.Contains(m.detail.View(), "first block") {
		t.Fatalf("detail should show first session:\n%s", m.detail.View())
	}

	m.cursor = 1
	m.refreshDetail()
	if !strings.Contains(m.detail.View(), "second block") {
		t.Fatalf("detail stale after moving between equal ids:\n%s", m.detail.View())
	}
}
