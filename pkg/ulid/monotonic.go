package ulid

import (
	"crypto/rand"
	"io"
	"sync"
	"time"

	"github.com/chaikit/ident/pkg/crock32"
)

// Monotonic mints ULIDs that are strictly increasing across calls on one
// instance, even when many calls land in the same millisecond. Within a
// millisecond the random portion is advanced as a base-32 counter instead
// of being redrawn; a new millisecond draws fresh randomness.
//
// State is guarded by a mutex held for the whole read-increment-write
// step, so a single instance may be shared across goroutines. Independent
// instances share nothing.
type Monotonic struct {
	mu       sync.Mutex
	entropy  io.Reader
	now      func() time.Time
	lastMs   int64
	lastRand []byte
}

// NewMonotonic creates a sequencer using the wall clock and crypto/rand.
// Both can be overridden with options for deterministic tests.
func NewMonotonic(opts ...MonotonicOption) *Monotonic {
	m := &Monotonic{
		entropy: rand.Reader,
		now:     time.Now,
		lastMs:  -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Next returns the next identifier in the sequence. If the 80-bit counter
// space is exhausted within one millisecond it returns ErrOverflow and
// leaves the sequencer state unchanged, so a later millisecond recovers.
func (m *Monotonic) Next() (ULID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := m.now().UnixMilli()
	if ms < m.lastMs {
		// Clock regression: pin to the last seen millisecond so the
		// sequence keeps increasing.
		ms = m.lastMs
	}

	if ms == m.lastMs {
		next := make([]byte, RandLen)
		copy(next, m.lastRand)
		if err := incrementSymbols(next); err != nil {
			return "", err
		}
		m.lastRand = next
	} else {
		tail, err := crock32.EncodeRandom(m.entropy, RandLen)
		if err != nil {
			return "", err
		}
		m.lastRand = []byte(tail)
		m.lastMs = ms
	}

	head, err := crock32.EncodeInt(m.lastMs, TimeLen)
	if err != nil {
		return "", err
	}
	return ULID(head + string(m.lastRand)), nil
}

// incrementSymbols advances a big-endian base-32 counter of alphabet
// symbols in place, starting from the rightmost digit. A carry past the
// leftmost digit means the counter space is exhausted.
func incrementSymbols(sym []byte) error {
	for i := len(sym) - 1; i >= 0; i-- {
		d, err := crock32.DecodeChar(sym[i])
		if err != nil {
			return err
		}
		if d < crock32.Base-1 {
			sym[i] = crock32.Alphabet[d+1]
			return nil
		}
		sym[i] = crock32.Alphabet[0]
	}
	return ErrOverflow
}
