// Package stats derives summary figures from a parsed report. Everything
// operates on the in-memory model; nothing here touches I/O.
package stats

import (
	"sort"
	"time"

	"github.com/Zuo-Peng/twreport/internal/report"
)

// Options selects a subset of sessions.
type Options struct {
	Tag      string // "" = all, otherwise sessions carrying this tag
	Day      string // "" = all, otherwise start date "2006-01-02" in the stored zone
	OpenOnly bool
}

// Filter returns the sessions matching opts, preserving input order.
func Filter(sessions []report.Session, opts Options) []report.Session {
	var out []report.Session
	for _, s := range sessions {
		if opts.OpenOnly && !s.Open() {
			continue
		}
		if opts.Day != "" && s.Start.Format("2006-01-02") != opts.Day {
			continue
		}
		if opts.Tag != "" && !hasTag(s, opts.Tag) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hasTag(s report.Session, tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Total sums session durations, measuring open sessions against now.
func Total(sessions []report.Session, now time.Time) time.Duration {
	var total time.Duration
	for _, s := range sessions {
		total += s.Duration(now)
	}
	return total
}

// TagTotal is the accumulated time and session count for one tag.
type TagTotal struct {
	Tag      string
	Total    time.Duration
	Sessions int
}

// TagTotals accumulates time per tag. A session carrying several tags
// counts fully towards each of them, like timew's own tag summary.
// Results are sorted by total descending, tag name ascending on ties.
func TagTotals(sessions []report.Session, now time.Time) []TagTotal {
	acc := make(map[string]*TagTotal)
	for _, s := range sessions {
		d := s.Duration(now)
		for _, tag := range s.Tags {
			tt, ok := acc[tag]
			if !ok {
				tt = &TagTotal{Tag: tag}
				acc[tag] = tt
			}
			tt.Total += d
			tt.Sessions++
		}
	}

	out := make([]TagTotal, 0, len(acc))
	for _, tt := range acc {
		out = append(out, *tt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Tags returns the distinct tag names in first-seen order with their
// session counts.
func Tags(sessions []report.Session) []TagTotal {
	var order []string
	counts := make(map[string]int)
	for _, s := range sessions {
		for _, tag := range s.Tags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	out := make([]TagTotal, 0, len(order))
	for _, tag := range order {
		out = append(out, TagTotal{Tag: tag, Sessions: counts[tag]})
	}
	return out
}

// Span returns the earliest start and the latest known end across the
// sessions. Open sessions contribute their start only. ok is false when
// there are no sessions.
func Span(sessions []report.Session) (first, last time.Time, ok bool) {
	for _, s := range sessions {
		if !ok || s.Start.Before(first) {
			first = s.Start
		}
		if s.End != nil && (last.IsZero() || s.End.After(last)) {
			last = *s.End
		}
		ok = true
	}
	return first, last, ok
}

// SortByID stable-sorts sessions ascending by id.
func SortByID(sessions []report.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Compare(sessions[j]) < 0
	})
}
