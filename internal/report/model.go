// Package report parses the payload a Timewarrior report extension
// receives on stdin: a block of "key: value" config lines, a blank line,
// then a JSON array of tracked sessions.
package report

import "time"

// Session is one tracked (or still running) interval.
type Session struct {
	ID         int
	Start      time.Time
	End        *time.Time // nil while tracking is still active
	Tags       []string   // order as given by timew
	Annotation *string
}

// Open reports whether the session is still being tracked.
func (s Session) Open() bool {
	return s.End == nil
}

// Duration returns the tracked length of the session, measuring open
// sessions against now. A session whose end precedes its start (the
// parser does not enforce start < end) yields zero.
func (s Session) Duration(now time.Time) time.Duration {
	end := now
	if s.End != nil {
		end = *s.End
	}
	d := end.Sub(s.Start)
	if d < 0 {
		return 0
	}
	return d
}

// Equal compares all five fields. Tag order is significant.
func (s Session) Equal(other Session) bool {
	if s.ID != other.ID || !s.Start.Equal(other.Start) {
		return false
	}
	if (s.End == nil) != (other.End == nil) {
		return false
	}
	if s.End != nil && !s.End.Equal(*other.End) {
		return false
	}
	if len(s.Tags) != len(other.Tags) {
		return false
	}
	for i := range s.Tags {
		if s.Tags[i] != other.Tags[i] {
			return false
		}
	}
	if (s.Annotation == nil) != (other.Annotation == nil) {
		return false
	}
	if s.Annotation != nil && *s.Annotation != *other.Annotation {
		return false
	}
	return true
}

// Compare orders sessions by ID alone, returning -1, 0 or +1. Two
// sessions with the same ID compare as equivalent here even when Equal
// says they differ; this matches upstream timewarrior-report semantics.
func (s Session) Compare(other Session) int {
	switch {
	case s.ID < other.ID:
		return -1
	case s.ID > other.ID:
		return 1
	}
	return 0
}

// Report is the parsed payload: the config mapping from the header block
// and the sessions in the order the body listed them. It is built in one
// pass and never mutated afterwards.
type Report struct {
	Config   map[string]string
	Sessions []Session
}

// Equal compares the config mapping and the session sequence. Session
// order matters; config entry order does not.
func (r *Report) Equal(other *Report) bool {
	if len(r.Config) != len(other.Config) {
		return false
	}
	for k, v := range r.Config {
		if ov, ok := other.Config[k]; !ok || ov != v {
			return false
		}
	}
	if len(r.Sessions) != len(other.Sessions) {
		return false
	}
	for i := range r.Sessions {
		if !r.Sessions[i].Equal(other.Sessions[i]) {
			return false
		}
	}
	return true
}
