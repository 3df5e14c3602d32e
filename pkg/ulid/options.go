package ulid

import (
	"io"
	"time"
)

// MonotonicOption configures a Monotonic sequencer.
type MonotonicOption func(*Monotonic)

// WithEntropy sets the random source used when a new millisecond starts a
// fresh sequence. It should be cryptographically secure; the default is
// crypto/rand.
func WithEntropy(r io.Reader) MonotonicOption {
	return func(m *Monotonic) {
		m.entropy = r
	}
}

// WithClock overrides the wall clock, mainly so tests can hold the
// sequencer inside a single millisecond.
func WithClock(now func() time.Time) MonotonicOption {
	return func(m *Monotonic) {
		m.now = now
	}
}
