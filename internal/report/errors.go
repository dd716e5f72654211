package report

import "errors"

// The parse entry points fail with exactly one of these three kinds.
// Callers match them with errors.Is; the wrapped message carries the
// diagnostic detail.
var (
	// ErrRead means the input stream could not be fully read.
	ErrRead = errors.New("read input")

	// ErrDecode means the session body did not match the expected JSON
	// shape, including timestamp format violations.
	ErrDecode = errors.New("decode sessions")

	// ErrMalformedInput means the header/body separator or a header
	// line's key/value separator was missing.
	ErrMalformedInput = errors.New("malformed input")
)
