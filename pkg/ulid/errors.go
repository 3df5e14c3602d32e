package ulid

import "errors"

// Sentinel errors for generation and parsing.
var (
	// ErrInvalidULID is returned when a string does not match the
	// 26-character Crockford Base32 pattern.
	ErrInvalidULID = errors.New("ulid: invalid identifier")

	// ErrTimestampRange is returned when a timestamp is negative or
	// exceeds the 48-bit millisecond range.
	ErrTimestampRange = errors.New("ulid: timestamp out of range")

	// ErrOverflow is returned by a Monotonic sequencer when the 80-bit
	// random counter is exhausted within a single millisecond. Wrapping
	// around would break the ordering guarantee, so the condition is
	// surfaced instead.
	ErrOverflow = errors.New("ulid: monotonic counter exhausted")
)
