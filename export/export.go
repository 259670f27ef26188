// Package export writes a finished atlas to disk.
//
// An export produces up to four artifacts sharing one base name:
//
//   - <name>.go: Go source with the glyph and icon tables, format version
//     [FormatVersion], embedding the pixel dump with //go:embed
//   - <name>.raw: the pixels, width*height bytes, row-major
//   - <name>.json: the same tables as a JSON [Manifest]
//   - a grayscale PNG preview at a caller-chosen path
//
// Exporting finalizes the atlas. Further additions fail with
// glyphatlas.ErrFinalized.
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/codec"
)

// namespace scopes content IDs to this tool.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/gogpu/glyphatlas"))

// Options configures Export.
type Options struct {
	// Dir is the output directory. It must exist.
	Dir string

	// Name is the base name of the generated files.
	// Default: "atlas"
	Name string

	// Package is the package clause of the generated Go file.
	// Default: "atlas"
	Package string

	// Manifest enables the JSON manifest.
	Manifest bool

	// Preview is the path of the PNG preview. Empty disables it.
	Preview string
}

// Result lists the files written by Export.
type Result struct {
	ID       uuid.UUID
	Source   string
	Raw      string
	Manifest string
	Preview  string
}

// Export finalizes a and writes its artifacts.
func Export(a *glyphatlas.Atlas, opts Options) (*Result, error) {
	if opts.Name == "" {
		opts.Name = "atlas"
	}
	rawName := opts.Name + ".raw"
	goOpts := GoOptions{Package: opts.Package, Raw: rawName}
	goOpts.defaults()
	if err := goOpts.validate(); err != nil {
		return nil, err
	}

	a.Finalize()

	res := &Result{
		ID:     ContentID(a),
		Source: filepath.Join(opts.Dir, opts.Name+".go"),
		Raw:    filepath.Join(opts.Dir, rawName),
	}

	if err := writeFile(res.Raw, func(w io.Writer) error { return WriteRaw(w, a) }); err != nil {
		return nil, err
	}
	logWritten("raw", res.Raw)

	if err := writeFile(res.Source, func(w io.Writer) error { return WriteGo(w, a, goOpts) }); err != nil {
		return nil, err
	}
	logWritten("source", res.Source)

	if opts.Preview != "" {
		res.Preview = opts.Preview
		if err := writeFile(res.Preview, func(w io.Writer) error { return WritePreview(w, a) }); err != nil {
			return nil, err
		}
		logWritten("preview", res.Preview)
	}

	if opts.Manifest {
		res.Manifest = filepath.Join(opts.Dir, opts.Name+".json")
		preview := ""
		if res.Preview != "" {
			if rel, err := filepath.Rel(opts.Dir, res.Preview); err == nil {
				preview = filepath.ToSlash(rel)
			}
		}
		m := NewManifest(a, rawName, preview)
		if err := writeFile(res.Manifest, func(w io.Writer) error { return WriteManifest(w, m) }); err != nil {
			return nil, err
		}
		logWritten("manifest", res.Manifest)
	}

	return res, nil
}

// WriteRaw writes the atlas pixels, width*height bytes, row-major.
func WriteRaw(w io.Writer, a *glyphatlas.Atlas) error {
	if _, err := w.Write(a.Pixels()); err != nil {
		return fmt.Errorf("export: write raw: %w", err)
	}
	return nil
}

// WritePreview writes the atlas as an 8-bit grayscale PNG.
func WritePreview(w io.Writer, a *glyphatlas.Atlas) error {
	return codec.EncodeGray(w, a.Width(), a.Height(), a.Pixels())
}

// ContentID returns a name-based (version 5) UUID of the atlas pixels and
// tables. Equal atlases get equal IDs.
func ContentID(a *glyphatlas.Atlas) uuid.UUID {
	var buf bytes.Buffer
	put := func(vs ...int) {
		for _, v := range vs {
			_ = binary.Write(&buf, binary.LittleEndian, int64(v))
		}
	}
	putRect := func(r glyphatlas.Rect) { put(r.X, r.Y, r.Width, r.Height) }

	put(FormatVersion, a.Width(), a.Height())
	for _, ic := range a.Icons() {
		buf.WriteString(ic.Name)
		buf.WriteByte(0)
		putRect(ic.Icon.Rect)
	}
	for _, f := range a.Fonts() {
		buf.WriteString(f.Name)
		buf.WriteByte(0)
		put(f.Font.FontSize, f.Font.LineSize)
		for _, e := range f.Font.Entries {
			put(e.Offset.X, e.Offset.Y, e.Advance.X, e.Advance.Y)
			putRect(e.Rect)
		}
	}
	buf.Write(a.Pixels())

	return uuid.NewSHA1(namespace, buf.Bytes())
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: create file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close file: %w", err)
	}
	return nil
}

func logWritten(kind, path string) {
	glyphatlas.Logger().Info("export: wrote "+kind, slog.String("path", path))
}
