package glyphatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the glyphatlas package.
var (
	// ErrFinalized is returned when an asset is added after the atlas was exported.
	ErrFinalized = errors.New("glyphatlas: atlas is finalized")

	// ErrDuplicateName is returned when an icon or font name is already taken.
	ErrDuplicateName = errors.New("glyphatlas: duplicate name")

	// ErrEmptyName is returned when an icon or font is added without a name.
	ErrEmptyName = errors.New("glyphatlas: empty name")

	// ErrRegionOutOfBounds is returned when reading a region outside the canvas.
	ErrRegionOutOfBounds = errors.New("glyphatlas: region outside canvas")
)

// OverflowError is returned when a non-empty tile does not fit in the
// remaining free space of the canvas.
type OverflowError struct {
	// Width and Height are the canvas dimensions.
	Width, Height int

	// TileWidth and TileHeight are the dimensions of the rejected tile.
	TileWidth, TileHeight int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("glyphatlas: bitmap size of %dx%d is not enough to hold the atlas (tile %dx%d), please resize",
		e.Width, e.Height, e.TileWidth, e.TileHeight)
}

// TileError is returned when a tile's dimensions do not match its pixel data.
type TileError struct {
	Width, Height int
	Len           int
}

func (e *TileError) Error() string {
	return fmt.Sprintf("glyphatlas: invalid tile %dx%d with %d bytes of pixel data", e.Width, e.Height, e.Len)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "glyphatlas: invalid config." + e.Field + ": " + e.Reason
}

// NameError reports a rejected icon or font name.
type NameError struct {
	// Kind is "icon" or "font".
	Kind string
	Name string
	Err  error
}

func (e *NameError) Error() string {
	return fmt.Sprintf("%v: %s %q", e.Err, e.Kind, e.Name)
}

func (e *NameError) Unwrap() error { return e.Err }
