package urn

import (
	"time"

	"github.com/chaikit/ident/pkg/ulid"
)

type options struct {
	id    ulid.ULID
	ts    int64
	hasTS bool
}

// Option configures URN composition.
type Option func(*options)

// WithID uses an existing ULID instead of generating one.
func WithID(id ulid.ULID) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithTimestamp generates the ULID for an explicit millisecond timestamp.
// Ignored when WithID is also supplied.
func WithTimestamp(ms int64) Option {
	return func(o *options) {
		o.ts = ms
		o.hasTS = true
	}
}

// WithTime generates the ULID for the millisecond timestamp of t.
func WithTime(t time.Time) Option {
	return WithTimestamp(t.UnixMilli())
}
