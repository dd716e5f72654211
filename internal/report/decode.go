package report

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout is the wire format timew uses for instants: ISO-8601
// basic form, always UTC. Both the required start and the optional end
// field share it.
const timestampLayout = "20060102T150405Z"

// sessionRecord mirrors one element of the JSON body. Pointer fields
// distinguish absent from zero.
type sessionRecord struct {
	ID         *int      `json:"id"`
	Start      *string   `json:"start"`
	End        *string   `json:"end"`
	Tags       *[]string `json:"tags"`
	Annotation *string   `json:"annotation"`
}

func decodeSessions(body string, loc *time.Location) ([]Session, error) {
	var records []sessionRecord
	if err := json.Unmarshal([]byte(body), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	sessions := make([]Session, 0, len(records))
	for i, rec := range records {
		s, err := rec.toSession(loc)
		if err != nil {
			return nil, fmt.Errorf("session %d: %w", i, err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (rec sessionRecord) toSession(loc *time.Location) (Session, error) {
	var zero Session

	if rec.ID == nil {
		return zero, fmt.Errorf("%w: missing id", ErrDecode)
	}
	if *rec.ID < 0 {
		return zero, fmt.Errorf("%w: negative id %d", ErrDecode, *rec.ID)
	}
	if rec.Start == nil {
		return zero, fmt.Errorf("%w: missing start", ErrDecode)
	}

	start, err := parseTimestamp(*rec.Start, loc)
	if err != nil {
		return zero, err
	}

	var end *time.Time
	if rec.End != nil {
		t, err := parseTimestamp(*rec.End, loc)
		if err != nil {
			return zero, err
		}
		end = &t
	}

	if rec.Tags == nil {
		return zero, fmt.Errorf("%w: missing tags", ErrDecode)
	}

	return Session{
		ID:         *rec.ID,
		Start:      start,
		End:        end,
		Tags:       *rec.Tags,
		Annotation: rec.Annotation,
	}, nil
}

// parseTimestamp decodes a wire timestamp as UTC and converts it to loc.
// The conversion happens at decode time so stored values already carry
// the target zone.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(timestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad timestamp %q", ErrDecode, s)
	}
	return t.In(loc), nil
}
