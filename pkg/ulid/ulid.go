package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/chaikit/ident/pkg/crock32"
)

const (
	// EncodedLen is the length of a ULID string.
	EncodedLen = 26
	// TimeLen is the number of leading characters encoding the timestamp.
	TimeLen = 10
	// RandLen is the number of trailing characters encoding randomness.
	RandLen = 16

	// MaxTimestamp is the largest encodable millisecond timestamp (2^48-1).
	MaxTimestamp int64 = 1<<48 - 1
)

// pattern matches the Crockford Base32 alphabet, case-insensitively.
// Confusables (I, L, O, U) are not valid in a canonical ULID.
var pattern = regexp.MustCompile(`(?i)^[0-9A-HJKMNP-TV-Z]{26}$`)

// ULID is a 26-character, time-sortable identifier. Values produced by
// this package are canonical; the zero value is not a valid ULID.
type ULID string

// New generates a ULID for the current wall-clock time using crypto/rand.
func New() (ULID, error) {
	return Make(time.Now().UnixMilli(), rand.Reader)
}

// At generates a ULID for an explicit millisecond timestamp using
// crypto/rand.
func At(ms int64) (ULID, error) {
	return Make(ms, rand.Reader)
}

// FromTime generates a ULID for the millisecond timestamp of t.
func FromTime(t time.Time) (ULID, error) {
	return At(t.UnixMilli())
}

// Make generates a ULID for an explicit timestamp and entropy source.
// It is the full injection seam: tests pass a fixed timestamp and a
// deterministic reader to get reproducible identifiers. The reader must
// be cryptographically secure for the uniqueness guarantee to hold.
func Make(ms int64, entropy io.Reader) (ULID, error) {
	if ms < 0 || ms > MaxTimestamp {
		return "", fmt.Errorf("%w: %d", ErrTimestampRange, ms)
	}
	head, err := crock32.EncodeInt(ms, TimeLen)
	if err != nil {
		return "", err
	}
	tail, err := crock32.EncodeRandom(entropy, RandLen)
	if err != nil {
		return "", err
	}
	return ULID(head + tail), nil
}

// IsValid reports whether s matches the 26-character ULID pattern,
// case-insensitively.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}

// Parse validates s and returns it as a typed ULID. The input is not
// normalized: a lowercase ULID parses and renders back unchanged.
func Parse(s string) (ULID, error) {
	if !IsValid(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidULID, s)
	}
	return ULID(s), nil
}

// MustParse is Parse that panics on invalid input, for static identifiers
// in tests and fixtures.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Compare three-way compares two ULIDs as strings. Because the encoding
// is order-preserving, this ranks identifiers chronologically with ties
// broken by the random portion.
func Compare(a, b ULID) int {
	return strings.Compare(string(a), string(b))
}

// Timestamp returns the millisecond timestamp encoded in the first ten
// characters. It is meaningful only for valid ULIDs; malformed values
// yield zero.
func (u ULID) Timestamp() int64 {
	if len(u) != EncodedLen {
		return 0
	}
	ms, err := crock32.DecodeInt(string(u[:TimeLen]))
	if err != nil {
		return 0
	}
	return ms
}

// Time returns the embedded timestamp as a time.Time in UTC.
func (u ULID) Time() time.Time {
	return time.UnixMilli(u.Timestamp()).UTC()
}

// String returns the identifier as a plain string.
func (u ULID) String() string {
	return string(u)
}

// MarshalText implements encoding.TextMarshaler.
func (u ULID) MarshalText() ([]byte, error) {
	return []byte(u), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the input.
func (u *ULID) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
