package urn

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/chaikit/ident/pkg/ulid"
)

var (
	appPattern    = regexp.MustCompile(`^[a-z][a-z0-9]{0,31}$`)
	entityPattern = regexp.MustCompile(`^[a-z][a-z0-9-]{0,63}$`)

	// Full grammar; only the identifier segment is case-insensitive.
	urnPattern = regexp.MustCompile(`^[a-z][a-z0-9]{0,31}:[a-z][a-z0-9-]{0,63}:(?i:[0-9A-HJKMNP-TV-Z]{26})$`)
)

// URN is a parsed app:entity:ulid triple. The zero value is not valid;
// construct with New or Parse.
type URN struct {
	App    string
	Entity string
	ID     ulid.ULID
}

// New validates app and entity and composes a URN. Without options a
// fresh ULID is generated; WithID and WithTimestamp supply an existing
// identifier or an explicit clock reading instead.
func New(app, entity string, opts ...Option) (URN, error) {
	if !appPattern.MatchString(app) {
		return URN{}, fmt.Errorf("%w: %q", ErrInvalidApp, app)
	}
	if !entityPattern.MatchString(entity) {
		return URN{}, fmt.Errorf("%w: %q", ErrInvalidEntity, entity)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	id := o.id
	switch {
	case id != "":
		if !ulid.IsValid(string(id)) {
			return URN{}, fmt.Errorf("%w: %q", ulid.ErrInvalidULID, id)
		}
	case o.hasTS:
		var err error
		if id, err = ulid.At(o.ts); err != nil {
			return URN{}, err
		}
	default:
		var err error
		if id, err = ulid.New(); err != nil {
			return URN{}, err
		}
	}

	return URN{App: app, Entity: entity, ID: id}, nil
}

// IsValid reports whether s matches the full URN grammar.
func IsValid(s string) bool {
	return urnPattern.MatchString(s)
}

// Parse splits s into its three components. The identifier segment is
// kept as written, so parsing and rendering round-trip exactly.
func Parse(s string) (URN, error) {
	if !IsValid(s) {
		return URN{}, fmt.Errorf("%w: %q", ErrInvalidURN, s)
	}
	parts := strings.SplitN(s, ":", 3)
	return URN{App: parts[0], Entity: parts[1], ID: ulid.ULID(parts[2])}, nil
}

// MustParse is Parse that panics on invalid input, for static identifiers
// in tests and fixtures.
func MustParse(s string) URN {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Compare ranks two URNs chronologically by their embedded ULIDs. The
// app and entity segments do not participate in the ordering.
func Compare(a, b URN) int {
	return ulid.Compare(a.ID, b.ID)
}

// String renders the canonical app:entity:ulid form.
func (u URN) String() string {
	return u.App + ":" + u.Entity + ":" + string(u.ID)
}

// Timestamp returns the millisecond timestamp of the embedded ULID.
func (u URN) Timestamp() int64 {
	return u.ID.Timestamp()
}

// Time returns the embedded timestamp as a time.Time in UTC.
func (u URN) Time() time.Time {
	return u.ID.Time()
}

// IsApp reports whether the app segment equals app.
func (u URN) IsApp(app string) bool {
	return u.App == app
}

// IsEntity reports whether the entity segment equals entity.
func (u URN) IsEntity(entity string) bool {
	return u.Entity == entity
}

// Matches reports whether both the app and entity segments match.
func (u URN) Matches(app, entity string) bool {
	return u.App == app && u.Entity == entity
}

// MarshalText implements encoding.TextMarshaler.
func (u URN) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the input.
func (u *URN) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
