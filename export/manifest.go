package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/glyphatlas"
)

// Manifest is the JSON description of an exported atlas, for consumers that
// do not compile the generated Go source.
type Manifest struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Padding int    `json:"padding"`

	// Raw is the pixel dump file name, relative to the manifest.
	Raw string `json:"raw,omitempty"`

	// Preview is the PNG preview file name, relative to the manifest.
	Preview string `json:"preview,omitempty"`

	Icons []IconRecord `json:"icons"`
	Fonts []FontRecord `json:"fonts"`
}

// Box is a rectangle in atlas pixels.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"w"`
	Height int `json:"h"`
}

// IconRecord describes one icon.
type IconRecord struct {
	Name string `json:"name"`
	Rect Box    `json:"rect"`
}

// FontRecord describes one font at one size.
type FontRecord struct {
	Name     string        `json:"name"`
	FontSize int           `json:"font_size"`
	LineSize int           `json:"line_size"`
	Glyphs   []GlyphRecord `json:"glyphs"`
}

// GlyphRecord describes one glyph. Offset and Advance are [x, y].
type GlyphRecord struct {
	Code    int    `json:"code"`
	Char    string `json:"char"`
	Offset  [2]int `json:"offset"`
	Advance [2]int `json:"advance"`
	Rect    Box    `json:"rect"`
}

func boxOf(r glyphatlas.Rect) Box {
	return Box{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// NewManifest describes a. raw and preview name the companion files and may
// be empty.
func NewManifest(a *glyphatlas.Atlas, raw, preview string) *Manifest {
	m := &Manifest{
		Version: FormatVersion,
		ID:      ContentID(a).String(),
		Width:   a.Width(),
		Height:  a.Height(),
		Padding: a.Canvas().Packer().Padding(),
		Raw:     raw,
		Preview: preview,
		Icons:   []IconRecord{},
		Fonts:   []FontRecord{},
	}

	for _, ic := range a.Icons() {
		m.Icons = append(m.Icons, IconRecord{Name: ic.Name, Rect: boxOf(ic.Icon.Rect)})
	}
	for _, f := range a.Fonts() {
		fr := FontRecord{
			Name:     f.Name,
			FontSize: f.Font.FontSize,
			LineSize: f.Font.LineSize,
			Glyphs:   make([]GlyphRecord, 0, glyphatlas.CharCount),
		}
		for i, e := range f.Font.Entries {
			code := glyphatlas.FirstChar + i
			fr.Glyphs = append(fr.Glyphs, GlyphRecord{
				Code:    code,
				Char:    string(rune(code)),
				Offset:  [2]int{e.Offset.X, e.Offset.Y},
				Advance: [2]int{e.Advance.X, e.Advance.Y},
				Rect:    boxOf(e.Rect),
			})
		}
		m.Fonts = append(m.Fonts, fr)
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("export: encode manifest: %w", err)
	}
	return nil
}

// ReadManifest decodes and validates a manifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// ReadManifestFile reads the manifest at path.
func ReadManifestFile(path string) (*Manifest, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("export: open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadManifest(f)
}

// Validate checks the version and that every record lies inside the atlas.
func (m *Manifest) Validate() error {
	if m.Version != FormatVersion {
		return fmt.Errorf("%w: %d (want %d)", ErrVersion, m.Version, FormatVersion)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrManifest, m.Width, m.Height)
	}

	inside := func(b Box) bool {
		return b.Width >= 0 && b.Height >= 0 &&
			glyphatlas.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}.Within(m.Width, m.Height)
	}
	for _, ic := range m.Icons {
		if !inside(ic.Rect) {
			return fmt.Errorf("%w: icon %q outside atlas", ErrManifest, ic.Name)
		}
	}
	for _, f := range m.Fonts {
		if len(f.Glyphs) != glyphatlas.CharCount {
			return fmt.Errorf("%w: font %q has %d glyphs, want %d", ErrManifest, f.Name, len(f.Glyphs), glyphatlas.CharCount)
		}
		for _, g := range f.Glyphs {
			if !inside(g.Rect) {
				return fmt.Errorf("%w: font %q glyph %d outside atlas", ErrManifest, f.Name, g.Code)
			}
		}
	}
	return nil
}

// UsedArea returns the number of pixels covered by icons and glyphs.
func (m *Manifest) UsedArea() int {
	var n int
	for _, ic := range m.Icons {
		n += ic.Rect.Width * ic.Rect.Height
	}
	for _, f := range m.Fonts {
		for _, g := range f.Glyphs {
			n += g.Rect.Width * g.Rect.Height
		}
	}
	return n
}
