package export

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"
	"text/template"

	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyphatlas"
)

// FormatVersion is the version of the generated Go source grammar and of the
// JSON manifest. It changes whenever a consumer would need to change.
const FormatVersion = 1

// GoOptions configures generated Go source.
type GoOptions struct {
	// Package is the package clause of the generated file.
	// Default: "atlas"
	Package string

	// Raw is the file name of the pixel dump, relative to the generated
	// file. It is loaded with //go:embed.
	// Default: "atlas.raw"
	Raw string
}

func (o *GoOptions) defaults() {
	if o.Package == "" {
		o.Package = "atlas"
	}
	if o.Raw == "" {
		o.Raw = "atlas.raw"
	}
}

func (o *GoOptions) validate() error {
	if !token.IsIdentifier(o.Package) || o.Package == "_" {
		return fmt.Errorf("%w: %q", ErrPackageName, o.Package)
	}
	return checkFileName(o.Raw)
}

type goIcon struct {
	Ident string
	Name  string
	Rect  glyphatlas.Rect
}

type goGlyph struct {
	Entry   glyphatlas.CharEntry
	Comment string
}

type goFont struct {
	Ident    string
	Name     string
	LineSize int
	FontSize int
	Glyphs   []goGlyph
}

type goFile struct {
	Version   int
	Package   string
	Raw       string
	ID        string
	Width     int
	Height    int
	FirstChar int
	LastChar  int
	CharCount int
	Icons     []goIcon
	Fonts     []goFont
}

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by glyphatlas. DO NOT EDIT.
// Format version {{.Version}}.

package {{.Package}}

import _ "embed"

// CharEntry locates one glyph in ATLAS.Pixels.
//
// OffsetX and OffsetY place the bitmap's bottom-left corner relative to the
// pen position on the baseline, Y up. AdvanceX and AdvanceY move the pen.
type CharEntry struct {
	OffsetX, OffsetY    int
	AdvanceX, AdvanceY  int
	X, Y, Width, Height int
}

// Font holds one entry per code point FirstChar..LastChar.
type Font struct {
	LineSize int
	FontSize int
	Entries  [{{.CharCount}}]CharEntry
}

// Icon locates an icon in ATLAS.Pixels.
type Icon struct {
	X, Y, Width, Height int
}

// Atlas is a single-channel bitmap, row-major, one byte per pixel.
type Atlas struct {
	ID     string
	Width  int
	Height int
	Pixels []byte
}

// Code point range of Font.Entries.
const (
	FirstChar = {{.FirstChar}}
	LastChar  = {{.LastChar}}
)
{{if .Icons}}
// Indices into ICONS.
const (
{{- range $i, $ic := .Icons}}
	{{$ic.Ident}} = {{$i}} // {{printf "%q" $ic.Name}}
{{- end}}
)
{{end}}
{{- if .Fonts}}
// Indices into FONTS.
const (
{{- range $i, $f := .Fonts}}
	{{$f.Ident}} = {{$i}} // {{printf "%q" $f.Name}}
{{- end}}
)
{{end}}
// ICONS holds every icon in insertion order.
var ICONS = [...]Icon{
{{- range .Icons}}
	{{.Ident}}: { {{- .Rect.X}}, {{.Rect.Y}}, {{.Rect.Width}}, {{.Rect.Height -}} },
{{- end}}
}

// FONTS holds every font in insertion order.
var FONTS = [...]Font{
{{- range .Fonts}}
	{{.Ident}}: {
		LineSize: {{.LineSize}},
		FontSize: {{.FontSize}},
		Entries: [{{$.CharCount}}]CharEntry{
{{- range .Glyphs}}
			{ {{- .Entry.Offset.X}}, {{.Entry.Offset.Y}}, {{.Entry.Advance.X}}, {{.Entry.Advance.Y}}, {{.Entry.Rect.X}}, {{.Entry.Rect.Y}}, {{.Entry.Rect.Width}}, {{.Entry.Rect.Height -}} }, // {{.Comment}}
{{- end}}
		},
	},
{{- end}}
}

//go:embed {{printf "%q" .Raw}}
var atlasPixels []byte

// ATLAS is the packed bitmap.
var ATLAS = Atlas{
	ID:     {{printf "%q" .ID}},
	Width:  {{.Width}},
	Height: {{.Height}},
	Pixels: atlasPixels,
}
`))

// WriteGo writes a Go source file describing a. The file embeds the pixel
// dump named by opts.Raw, which must be written next to it (see WriteRaw).
func WriteGo(w io.Writer, a *glyphatlas.Atlas, opts GoOptions) error {
	opts.defaults()
	if err := opts.validate(); err != nil {
		return err
	}

	data := goFile{
		Version:   FormatVersion,
		Package:   opts.Package,
		Raw:       opts.Raw,
		ID:        ContentID(a).String(),
		Width:     a.Width(),
		Height:    a.Height(),
		FirstChar: glyphatlas.FirstChar,
		LastChar:  glyphatlas.LastChar,
		CharCount: glyphatlas.CharCount,
	}

	ids := identSet{}
	for _, ic := range a.Icons() {
		data.Icons = append(data.Icons, goIcon{
			Ident: ids.add("Icon", ic.Name),
			Name:  ic.Name,
			Rect:  ic.Icon.Rect,
		})
	}
	for _, f := range a.Fonts() {
		gf := goFont{
			Ident:    ids.add("Font", f.Name),
			Name:     f.Name,
			LineSize: f.Font.LineSize,
			FontSize: f.Font.FontSize,
			Glyphs:   make([]goGlyph, 0, glyphatlas.CharCount),
		}
		for i, e := range f.Font.Entries {
			gf.Glyphs = append(gf.Glyphs, goGlyph{Entry: e, Comment: runeComment(rune(glyphatlas.FirstChar + i))})
		}
		data.Fonts = append(data.Fonts, gf)
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return fmt.Errorf("export: execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("export: format generated source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("export: write source: %w", err)
	}
	return nil
}

// runeComment returns e.g. `'A' LATIN CAPITAL LETTER A`.
func runeComment(r rune) string {
	return fmt.Sprintf("%q %s", r, runenames.Name(r))
}

// checkFileName rejects names that are not plain file names or that
// //go:embed would ignore.
func checkFileName(name string) error {
	switch {
	case name == "", name == ".", name == "..",
		strings.ContainsAny(name, `/\`),
		strings.HasPrefix(name, "."), strings.HasPrefix(name, "_"):
		return fmt.Errorf("%w: %q", ErrFileName, name)
	}
	return nil
}
