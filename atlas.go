package glyphatlas

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gogpu/glyphatlas/codec"
	"github.com/gogpu/glyphatlas/glyph"
)

// Icon locates an icon's pixels in the atlas.
type Icon struct {
	Rect Rect
}

// NamedIcon pairs an icon with its name.
type NamedIcon struct {
	Name string
	Icon Icon
}

// NamedFont pairs a font with its name.
type NamedFont struct {
	Name string
	Font Font
}

// Atlas is a single packed bitmap of glyphs and icons plus the records
// locating them.
//
// An Atlas starts in the building state, where icons and fonts are added one
// at a time. Each addition is atomic: either every tile is placed and the
// entry recorded, or an error is returned and the atlas is unchanged.
// Finalize (called by the exporters) switches the atlas to a read-only state;
// later additions fail with ErrFinalized.
//
// Atlas is not safe for concurrent use.
type Atlas struct {
	canvas *Canvas

	icons     []NamedIcon
	iconIndex map[string]int
	fonts     []NamedFont
	fontIndex map[string]int

	finalized bool
}

// New creates an empty atlas with the given configuration.
func New(config Config) (*Atlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Atlas{
		canvas:    NewCanvas(config.Size, config.Size, config.Padding),
		iconIndex: make(map[string]int),
		fontIndex: make(map[string]int),
	}, nil
}

// AddIcon places a single-channel width x height bitmap and records it as
// icon name.
func (a *Atlas) AddIcon(name string, width, height int, pixels []byte) error {
	if err := a.checkName("icon", name, a.iconIndex); err != nil {
		return err
	}

	rect, err := a.canvas.PlaceTile(width, height, pixels)
	if err != nil {
		return fmt.Errorf("glyphatlas: add icon %q: %w", name, err)
	}

	a.iconIndex[name] = len(a.icons)
	a.icons = append(a.icons, NamedIcon{Name: name, Icon: Icon{Rect: rect}})

	Logger().Info("glyphatlas: icon added", slog.String("name", name), slog.String("rect", rect.String()))
	return nil
}

// AddIconFile decodes the image at path, reduces it to one channel and adds
// it as an icon named after the file stem.
func (a *Atlas) AddIconFile(path string) error {
	if a.finalized {
		return ErrFinalized
	}
	bm, err := codec.DecodeFile(path)
	if err != nil {
		return err
	}
	return a.AddIcon(Stem(path), bm.Width, bm.Height, bm.Pix)
}

// AddFont rasterizes the printable ASCII range of face at size pixels per em
// and records the result as font name.
func (a *Atlas) AddFont(name string, face glyph.Face, size int) error {
	if err := a.checkName("font", name, a.fontIndex); err != nil {
		return err
	}
	if size <= 0 {
		return &ConfigError{Field: "FontSize", Reason: "must be positive"}
	}

	font, err := buildFont(a.canvas, face, size)
	if err != nil {
		return fmt.Errorf("glyphatlas: add font %q: %w", name, err)
	}

	a.fontIndex[name] = len(a.fonts)
	a.fonts = append(a.fonts, NamedFont{Name: name, Font: font})

	Logger().Info("glyphatlas: font added",
		slog.String("name", name),
		slog.Int("size", size),
		slog.Int("line_size", font.LineSize))
	return nil
}

// AddFontFile parses the font at path with the default rasterizer backend and
// adds it at size pixels per em, named after the file stem.
func (a *Atlas) AddFontFile(path string, size int) error {
	if a.finalized {
		return ErrFinalized
	}
	face, err := glyph.ParseFile(path, glyph.DefaultBackend)
	if err != nil {
		return err
	}
	return a.AddFont(Stem(path), face, size)
}

func (a *Atlas) checkName(kind, name string, index map[string]int) error {
	if a.finalized {
		return ErrFinalized
	}
	if name == "" {
		return &NameError{Kind: kind, Name: name, Err: ErrEmptyName}
	}
	if _, ok := index[name]; ok {
		return &NameError{Kind: kind, Name: name, Err: ErrDuplicateName}
	}
	return nil
}

// Finalize marks the atlas read-only. It is safe to call more than once.
func (a *Atlas) Finalize() {
	a.finalized = true
}

// Finalized reports whether Finalize has been called.
func (a *Atlas) Finalized() bool {
	return a.finalized
}

// Width returns the canvas width in pixels.
func (a *Atlas) Width() int { return a.canvas.Width() }

// Height returns the canvas height in pixels.
func (a *Atlas) Height() int { return a.canvas.Height() }

// Pixels returns the canvas pixels, row-major, one byte per pixel.
// The slice is shared with the atlas and must not be modified.
func (a *Atlas) Pixels() []byte { return a.canvas.Pixels() }

// Canvas returns the atlas canvas.
func (a *Atlas) Canvas() *Canvas { return a.canvas }

// Icons returns the icons in insertion order.
func (a *Atlas) Icons() []NamedIcon {
	out := make([]NamedIcon, len(a.icons))
	copy(out, a.icons)
	return out
}

// Fonts returns the fonts in insertion order.
func (a *Atlas) Fonts() []NamedFont {
	out := make([]NamedFont, len(a.fonts))
	copy(out, a.fonts)
	return out
}

// Icon returns the icon called name.
func (a *Atlas) Icon(name string) (Icon, bool) {
	i, ok := a.iconIndex[name]
	if !ok {
		return Icon{}, false
	}
	return a.icons[i].Icon, true
}

// Font returns the font called name.
func (a *Atlas) Font(name string) (Font, bool) {
	i, ok := a.fontIndex[name]
	if !ok {
		return Font{}, false
	}
	return a.fonts[i].Font, true
}

// Utilization returns the fraction of the canvas covered by tiles.
func (a *Atlas) Utilization() float64 {
	return a.canvas.Packer().Utilization()
}

// Stem returns the file name of path without directory and final extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
