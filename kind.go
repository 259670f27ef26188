package glyphatlas

import (
	"errors"
	"io/fs"

	"github.com/gogpu/glyphatlas/codec"
	"github.com/gogpu/glyphatlas/glyph"
)

// Kind classifies errors returned by glyphatlas and its collaborators.
type Kind uint8

const (
	// KindNone is the kind of a nil error.
	KindNone Kind = iota

	// KindIO covers file open, read and write failures.
	KindIO

	// KindDecode covers malformed or unsupported image and font data, and
	// fonts that cannot render a required glyph.
	KindDecode

	// KindOverflow is reported when a tile does not fit in the canvas.
	KindOverflow

	// KindArgument covers invalid configuration, tiles, names and glyph sizes.
	KindArgument

	// KindOther is any error not covered above.
	KindOther
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindOverflow:
		return "overflow"
	case KindArgument:
		return "argument"
	default:
		return "other"
	}
}

// KindOf returns the kind of err, looking through wrapped errors.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var (
		overflow   *OverflowError
		imageErr   *codec.DecodeError
		fontErr    *glyph.DecodeError
		configErr  *ConfigError
		tileErr    *TileError
		nameErr    *NameError
		pathErr    *fs.PathError
		backendErr *glyph.BackendError
	)
	switch {
	case errors.As(err, &overflow):
		return KindOverflow
	case errors.As(err, &imageErr), errors.As(err, &fontErr), errors.Is(err, glyph.ErrNoGlyph):
		return KindDecode
	case errors.As(err, &configErr), errors.As(err, &tileErr), errors.As(err, &nameErr),
		errors.As(err, &backendErr), errors.Is(err, glyph.ErrInvalidSize), errors.Is(err, ErrFinalized):
		return KindArgument
	case errors.As(err, &pathErr):
		return KindIO
	default:
		return KindOther
	}
}
