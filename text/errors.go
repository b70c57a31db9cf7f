package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrNoFont is returned when font data is empty or a directory holds no fonts.
	ErrNoFont = errors.New("text: no font data")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("text: invalid font")
)
