// Package ident provides time-sortable identifiers for application data:
// ULIDs (26-character Crockford Base32 strings encoding a millisecond
// timestamp plus random payload) and URNs that scope a ULID within an
// app and entity namespace as "app:entity:ulid".
//
// The module is split into small, focused packages:
//
//   - [github.com/chaikit/ident/pkg/crock32] - Crockford Base32 encoding
//     and decoding with confusable-character remapping
//   - [github.com/chaikit/ident/pkg/ulid] - ULID generation, parsing, and
//     a monotonic sequencer for strict ordering within one millisecond
//   - [github.com/chaikit/ident/pkg/urn] - composition and parsing of
//     namespaced "app:entity:ulid" identifiers
//
// # Quick Start
//
// Generate a ULID and wrap it in a URN:
//
//	id, err := ulid.New()
//	if err != nil {
//	    return err
//	}
//
//	u, err := urn.New("chai", "person", urn.WithID(id))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(u) // chai:person:01J9ZK3V8N4Q5R6S7T8V9W0X1Y
//
// Identifiers sort lexicographically by creation time, so they work as
// primary keys that cluster by insertion order without a coordinator.
//
// # Strict Ordering
//
// When many identifiers are minted within the same millisecond, use the
// monotonic sequencer to keep them strictly increasing:
//
//	seq := ulid.NewMonotonic()
//	a, _ := seq.Next()
//	b, _ := seq.Next() // b > a, even in the same millisecond
//
// The ident command under cmd/ident exposes generation and inspection of
// both formats for shells and scripts.
package ident
