package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// FromReader reads r to EOF and parses the payload, storing timestamps
// in the process's local zone.
func FromReader(r io.Reader) (*Report, error) {
	return FromReaderIn(r, time.Local)
}

// FromReaderIn is FromReader with an explicit target zone, mainly so
// tests are independent of the environment's TZ.
func FromReaderIn(r io.Reader, loc *time.Location) (*Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return ParseIn(strings.TrimSpace(string(raw)), loc)
}

// Parse parses an already-read payload in the process's local zone.
func Parse(input string) (*Report, error) {
	return ParseIn(input, time.Local)
}

// ParseIn splits input at the first blank line into the config header
// and the JSON session body, then decodes both. Everything after the
// separator belongs to the body, even if it contains further blank
// lines. The result is all-or-nothing: any failure returns a nil report.
func ParseIn(input string, loc *time.Location) (*Report, error) {
	header, body, ok := strings.Cut(input, "\n\n")
	if !ok {
		return nil, fmt.Errorf("%w: no blank line between config and sessions", ErrMalformedInput)
	}

	config, err := parseConfig(header)
	if err != nil {
		return nil, err
	}

	sessions, err := decodeSessions(body, loc)
	if err != nil {
		return nil, err
	}

	return &Report{Config: config, Sessions: sessions}, nil
}

// parseConfig decodes the header block: one "key: value" pair per
// non-blank line, split on the first ": ". Duplicate keys keep the last
// occurrence.
func parseConfig(header string) (map[string]string, error) {
	config := make(map[string]string)
	for _, line := range strings.Split(header, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: config line %q has no %q separator", ErrMalformedInput, line, ": ")
		}
		config[key] = value
	}
	return config, nil
}
