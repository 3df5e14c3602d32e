package crock32

import "errors"

// Sentinel errors for encoding and decoding.
var (
	// ErrInvalidChar is returned when a character has no symbol value,
	// even after confusable remapping.
	ErrInvalidChar = errors.New("crock32: invalid character")

	// ErrRange is returned when a value does not fit the requested symbol
	// width, or when a decode would overflow int64.
	ErrRange = errors.New("crock32: value out of range")
)
