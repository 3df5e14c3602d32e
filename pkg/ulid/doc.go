// Package ulid generates and parses ULIDs: 128-bit, time-sortable
// identifiers rendered as 26 Crockford Base32 characters. The first ten
// characters encode a 48-bit millisecond timestamp, the last sixteen an
// 80-bit random payload, so string order matches creation order.
//
// # Generation
//
// Stateless generation reads the wall clock and crypto/rand:
//
//	id, err := ulid.New()
//
// The timestamp and entropy source are both injectable, which is the seam
// deterministic tests use:
//
//	id, err := ulid.At(1469918176385)
//	id, err = ulid.Make(1469918176385, myReader)
//
// There is no fallback to a pseudo-random source: if the entropy reader
// fails, generation fails.
//
// # Strict Ordering
//
// New draws fresh randomness on every call, so two IDs minted in the same
// millisecond are unordered relative to each other. A Monotonic sequencer
// closes that gap by treating the random portion as a counter:
//
//	seq := ulid.NewMonotonic()
//	a, _ := seq.Next()
//	b, _ := seq.Next() // strictly greater than a
//
// A Monotonic instance is safe for concurrent use; its state is guarded by
// a mutex held for the whole read-increment-write step. If the 80-bit
// counter space is exhausted within a single millisecond, Next returns
// [ErrOverflow] instead of wrapping around and breaking the ordering
// guarantee.
//
// # Parsing
//
// Parse validates the 26-character alphabet pattern case-insensitively and
// returns the input as a typed value; Timestamp and Time recover the
// embedded clock reading:
//
//	id, err := ulid.Parse("01ARYZ6S41W1QD3S8F2ZQR5TXM")
//	ms := id.Timestamp()
//	t := id.Time()
package ulid
