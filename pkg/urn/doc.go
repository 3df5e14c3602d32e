// Package urn composes and parses namespaced identifiers of the form
// "app:entity:ulid" - a ULID scoped within an application and entity tag.
//
// The app segment matches ^[a-z][a-z0-9]{0,31}$, the entity segment
// matches ^[a-z][a-z0-9-]{0,63}$, and the identifier segment is a
// 26-character ULID matched case-insensitively. Every valid rendering
// round-trips through Parse into the same three components.
//
// # Composing
//
//	u, err := urn.New("chai", "person")
//	// u.String() == "chai:person:01J9ZK3V8N4Q5R6S7T8V9W0X1Y"
//
// An existing identifier or an explicit timestamp can be supplied:
//
//	u, err := urn.New("chai", "person", urn.WithID(id))
//	u, err = urn.New("chai", "person", urn.WithTimestamp(ms))
//
// Call sites that mint many identifiers for one application validate the
// app name once with a Composer:
//
//	chai, err := urn.ForApp("chai")
//	person, err := chai.New("person")
//	invoice, err := chai.New("invoice")
//
// # Parsing
//
//	u, err := urn.Parse("chai:person:01ARYZ6S41W1QD3S8F2ZQR5TXM")
//	// u.App == "chai", u.Entity == "person"
//	ms := u.Timestamp()
//
// Validation failures are typed and carry the offending value:
// [ErrInvalidApp], [ErrInvalidEntity], and [ErrInvalidURN] match with
// errors.Is.
//
// # Ordering
//
// Compare ranks URNs chronologically by their embedded ULIDs, not by the
// full string, so identifiers from different apps still sort by creation
// time.
package urn
