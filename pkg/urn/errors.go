package urn

import "errors"

// Sentinel errors for composition and parsing.
var (
	// ErrInvalidApp is returned when an app name fails its pattern
	// (^[a-z][a-z0-9]{0,31}$).
	ErrInvalidApp = errors.New("urn: invalid app name")

	// ErrInvalidEntity is returned when an entity name fails its pattern
	// (^[a-z][a-z0-9-]{0,63}$).
	ErrInvalidEntity = errors.New("urn: invalid entity name")

	// ErrInvalidURN is returned when a string fails the full
	// app:entity:ulid grammar.
	ErrInvalidURN = errors.New("urn: invalid urn")
)
