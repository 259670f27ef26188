package glyph

import "errors"

// Sentinel errors for glyph package.
var (
	// ErrInvalidSize is returned when a glyph is requested at a non-positive
	// or non-finite size.
	ErrInvalidSize = errors.New("glyph: size must be positive")

	// ErrNoGlyph is returned when a backend produces no image for a rune.
	ErrNoGlyph = errors.New("glyph: glyph could not be rendered")

	// ErrEmptyData is returned when parsing an empty font buffer.
	ErrEmptyData = errors.New("glyph: empty font data")
)

// DecodeError is returned when font data cannot be parsed by a backend.
type DecodeError struct {
	// Backend is the backend that rejected the data.
	Backend string

	// Path is the source file, if known.
	Path string

	Err error
}

func (e *DecodeError) Error() string {
	msg := "glyph: " + e.Backend + ": parse font"
	if e.Path != "" {
		msg += " " + e.Path
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// BackendError is returned when a backend name is not registered.
type BackendError struct {
	Name string
}

func (e *BackendError) Error() string {
	return "glyph: unknown backend " + `"` + e.Name + `"`
}
