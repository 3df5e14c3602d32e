package ulid_test

import (
	"bytes"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaikit/ident/pkg/ulid"
)

// fixedClock holds the sequencer inside a single millisecond.
func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestMonotonicNext(t *testing.T) {
	t.Parallel()

	t.Run("strictly increasing within one millisecond", func(t *testing.T) {
		t.Parallel()

		seq := ulid.NewMonotonic(ulid.WithClock(fixedClock(1469918176385)))

		const iterations = 1000
		prev, err := seq.Next()
		require.NoError(t, err)
		for i := 0; i < iterations; i++ {
			id, err := seq.Next()
			require.NoError(t, err)
			require.Equal(t, -1, ulid.Compare(prev, id), "%s should sort before %s", prev, id)
			prev = id
		}
	})

	t.Run("timestamp portion stays fixed within one millisecond", func(t *testing.T) {
		t.Parallel()

		seq := ulid.NewMonotonic(ulid.WithClock(fixedClock(1469918176385)))

		a, err := seq.Next()
		require.NoError(t, err)
		b, err := seq.Next()
		require.NoError(t, err)

		assert.Equal(t, string(a)[:ulid.TimeLen], string(b)[:ulid.TimeLen])
		assert.Equal(t, int64(1469918176385), b.Timestamp())
	})

	t.Run("sorting reproduces generation order", func(t *testing.T) {
		t.Parallel()

		seq := ulid.NewMonotonic()
		ids := make([]string, 3)
		for i := range ids {
			id, err := seq.Next()
			require.NoError(t, err)
			ids[i] = string(id)
		}

		sorted := append([]string(nil), ids...)
		sort.Strings(sorted)
		assert.Equal(t, ids, sorted)
	})

	t.Run("new millisecond draws fresh randomness", func(t *testing.T) {
		t.Parallel()

		var ms int64 = 1000
		entropy := bytes.NewReader(append(make([]byte, 16), bytes.Repeat([]byte{7}, 16)...))
		seq := ulid.NewMonotonic(
			ulid.WithClock(func() time.Time { return time.UnixMilli(ms) }),
			ulid.WithEntropy(entropy),
		)

		a, err := seq.Next()
		require.NoError(t, err)
		ms = 2000
		b, err := seq.Next()
		require.NoError(t, err)

		assert.Equal(t, "0000000000000000", string(a)[ulid.TimeLen:])
		assert.Equal(t, "7777777777777777", string(b)[ulid.TimeLen:])
		assert.Equal(t, int64(2000), b.Timestamp())
	})

	t.Run("carry propagates through maxed digits", func(t *testing.T) {
		t.Parallel()

		// Entropy ending in 0ZZZ: the next call must carry into the
		// fourth digit from the right.
		raw := append(bytes.Repeat([]byte{0}, 13), 31, 31, 31)
		seq := ulid.NewMonotonic(
			ulid.WithClock(fixedClock(1000)),
			ulid.WithEntropy(bytes.NewReader(raw)),
		)

		a, err := seq.Next()
		require.NoError(t, err)
		require.Equal(t, "0000000000000ZZZ", string(a)[ulid.TimeLen:])

		b, err := seq.Next()
		require.NoError(t, err)
		assert.Equal(t, "0000000000001000", string(b)[ulid.TimeLen:])
	})

	t.Run("overflow is surfaced, not wrapped", func(t *testing.T) {
		t.Parallel()

		seq := ulid.NewMonotonic(
			ulid.WithClock(fixedClock(1000)),
			ulid.WithEntropy(bytes.NewReader(bytes.Repeat([]byte{31}, 16))),
		)

		a, err := seq.Next()
		require.NoError(t, err)
		require.Equal(t, "ZZZZZZZZZZZZZZZZ", string(a)[ulid.TimeLen:])

		_, err = seq.Next()
		require.ErrorIs(t, err, ulid.ErrOverflow)

		// State is untouched: the condition repeats while the clock
		// stands still.
		_, err = seq.Next()
		require.ErrorIs(t, err, ulid.ErrOverflow)
	})

	t.Run("clock regression keeps the sequence increasing", func(t *testing.T) {
		t.Parallel()

		ms := int64(5000)
		seq := ulid.NewMonotonic(ulid.WithClock(func() time.Time { return time.UnixMilli(ms) }))

		a, err := seq.Next()
		require.NoError(t, err)
		ms = 3000
		b, err := seq.Next()
		require.NoError(t, err)

		assert.Equal(t, -1, ulid.Compare(a, b))
		assert.Equal(t, int64(5000), b.Timestamp())
	})

	t.Run("concurrent callers never collide", func(t *testing.T) {
		t.Parallel()

		const goroutines = 50
		const perGoroutine = 100

		seq := ulid.NewMonotonic()
		results := make(chan ulid.ULID, goroutines*perGoroutine)
		var wg sync.WaitGroup

		for g := 0; g < goroutines; g++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < perGoroutine; j++ {
					id, err := seq.Next()
					if err != nil {
						t.Error(err)
						return
					}
					results <- id
				}
			}()
		}

		wg.Wait()
		close(results)

		seen := make(map[ulid.ULID]bool, goroutines*perGoroutine)
		for id := range results {
			require.False(t, seen[id], "duplicate ULID: %s", id)
			seen[id] = true
		}
		assert.Len(t, seen, goroutines*perGoroutine)
	})

	t.Run("independent instances share no state", func(t *testing.T) {
		t.Parallel()

		a := ulid.NewMonotonic(ulid.WithClock(fixedClock(1000)))
		b := ulid.NewMonotonic(ulid.WithClock(fixedClock(1000)))

		idA, err := a.Next()
		require.NoError(t, err)
		idB, err := b.Next()
		require.NoError(t, err)

		// Fresh randomness per instance, not a shared counter.
		assert.NotEqual(t, string(idA)[ulid.TimeLen:], string(idB)[ulid.TimeLen:])
	})
}
