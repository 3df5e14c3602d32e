// Package crock32 implements Crockford's Base32 encoding for sortable
// identifiers.
//
// The alphabet is "0123456789ABCDEFGHJKMNPQRSTVWXYZ" - digits and
// uppercase letters with I, L, O, and U removed so that no two symbols
// are visually confusable. Lexicographic order of encoded strings matches
// numeric order of the encoded values, which is what makes ULIDs sortable.
//
// # Encoding
//
// Integers encode most-significant symbol first into a fixed width:
//
//	s, err := crock32.EncodeInt(1469918176385, 10)
//	// s == "01ARYZ6S41"
//
// Random payloads draw one byte per symbol from an io.Reader:
//
//	s, err := crock32.EncodeRandom(rand.Reader, 16)
//
// The reader should be cryptographically secure; the package never falls
// back to a weaker source on its own.
//
// # Decoding
//
// Decoding is case-insensitive and forgiving of confusable input: I and L
// read as 1, O reads as 0, and U reads as V (27). Anything else outside
// the alphabet fails with [ErrInvalidChar].
//
//	v, err := crock32.DecodeInt("01ARYZ6S41")
//	// v == 1469918176385
package crock32
