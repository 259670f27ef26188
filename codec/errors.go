package codec

import "errors"

// Sentinel errors for codec package.
var (
	// ErrIndexedColor is returned for palette-based images. Indexed pixels
	// carry no intensity of their own, so they are rejected rather than
	// reduced through a guess.
	ErrIndexedColor = errors.New("codec: indexed-color images are not supported")

	// ErrUnsupportedColorModel is returned for color models without a
	// single-channel reduction.
	ErrUnsupportedColorModel = errors.New("codec: unsupported color model")

	// ErrSizeMismatch is returned when pixel data does not match the
	// image dimensions.
	ErrSizeMismatch = errors.New("codec: pixel data does not match dimensions")
)

// DecodeError is returned when image data is malformed or cannot be reduced
// to a single channel.
type DecodeError struct {
	// Path is the source file, if known.
	Path string

	// Format is the detected image format ("png", "bmp", "tiff"), if known.
	Format string

	Err error
}

func (e *DecodeError) Error() string {
	msg := "codec: decode"
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
