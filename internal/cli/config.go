package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/glyph"
)

// defaultFontSize is used when neither the file nor the flags name a size.
const defaultFontSize = 16

// fileConfig mirrors the TOML configuration file:
//
//	input = "assets"
//	output = "gen"
//	package = "icons"
//	size = 512
//	font_sizes = [12, 16]
//
//	[fonts.mono]
//	sizes = [14]
type fileConfig struct {
	Input     string                `toml:"input"`
	Output    string                `toml:"output"`
	Name      string                `toml:"name"`
	Package   string                `toml:"package"`
	Preview   string                `toml:"preview"`
	Manifest  *bool                 `toml:"manifest"`
	Size      *int                  `toml:"size"`
	Padding   *int                  `toml:"padding"`
	Backend   string                `toml:"backend"`
	FontSizes []int                 `toml:"font_sizes"`
	Fonts     map[string]fontConfig `toml:"fonts"`
}

type fontConfig struct {
	Sizes []int `toml:"sizes"`
}

// loadConfigFile decodes the TOML file at path. Unknown keys are rejected.
func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	md, err := toml.DecodeFile(filepath.Clean(path), &fc)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fc, fmt.Errorf("read config: %w", err)
		}
		return fc, &glyphatlas.ConfigError{Field: filepath.Base(path), Reason: err.Error()}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fc, &glyphatlas.ConfigError{Field: undecoded[0].String(), Reason: "unknown key"}
	}
	return fc, nil
}

// buildConfig is the validated configuration of one build run.
type buildConfig struct {
	Input    string
	Output   string
	Name     string
	Package  string
	Preview  string
	Manifest bool
	Atlas    glyphatlas.Config
	Backend  string

	// FontSizes applies to fonts without an entry in Fonts.
	FontSizes []int
	Fonts     map[string][]int
}

// buildFlags holds the build command's flag values.
type buildFlags struct {
	config    string
	output    string
	name      string
	pkg       string
	preview   string
	manifest  bool
	size      int
	padding   int
	backend   string
	fontSizes []int
}

// resolve merges the config file, the flags for which changed reports true,
// and the positional input directory, then validates the result.
func (f *buildFlags) resolve(changed func(name string) bool, args []string) (*buildConfig, error) {
	var fc fileConfig
	if f.config != "" {
		var err error
		if fc, err = loadConfigFile(f.config); err != nil {
			return nil, err
		}
		// Paths in the file are relative to the file.
		base := filepath.Dir(f.config)
		fc.Input = relativeTo(base, fc.Input)
		fc.Output = relativeTo(base, fc.Output)
		fc.Preview = relativeTo(base, fc.Preview)
	}

	if len(args) > 0 {
		fc.Input = args[0]
	}
	if changed("output") {
		fc.Output = f.output
	}
	if changed("name") {
		fc.Name = f.name
	}
	if changed("package") {
		fc.Package = f.pkg
	}
	if changed("preview") {
		fc.Preview = f.preview
	}
	if changed("manifest") {
		fc.Manifest = &f.manifest
	}
	if changed("size") {
		fc.Size = &f.size
	}
	if changed("padding") {
		fc.Padding = &f.padding
	}
	if changed("backend") {
		fc.Backend = f.backend
	}
	if changed("font-sizes") {
		fc.FontSizes = f.fontSizes
	}

	return fc.build()
}

func relativeTo(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// build applies defaults and validates.
func (fc fileConfig) build() (*buildConfig, error) {
	cfg := &buildConfig{
		Input:     fc.Input,
		Output:    fc.Output,
		Name:      fc.Name,
		Package:   fc.Package,
		Preview:   fc.Preview,
		Manifest:  true,
		Atlas:     glyphatlas.DefaultConfig(),
		Backend:   fc.Backend,
		FontSizes: fc.FontSizes,
		Fonts:     make(map[string][]int, len(fc.Fonts)),
	}
	if fc.Manifest != nil {
		cfg.Manifest = *fc.Manifest
	}
	if fc.Size != nil {
		cfg.Atlas.Size = *fc.Size
	}
	if fc.Padding != nil {
		cfg.Atlas.Padding = *fc.Padding
	}
	if cfg.Output == "" {
		cfg.Output = "."
	}
	if cfg.Name == "" {
		cfg.Name = "atlas"
	}
	if cfg.Package == "" {
		cfg.Package = "atlas"
	}
	if cfg.Backend == "" {
		cfg.Backend = glyph.DefaultBackend
	}
	if len(cfg.FontSizes) == 0 {
		cfg.FontSizes = []int{defaultFontSize}
	}
	for stem, fcfg := range fc.Fonts {
		cfg.Fonts[stem] = fcfg.Sizes
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *buildConfig) validate() error {
	if c.Input == "" {
		return &glyphatlas.ConfigError{Field: "input", Reason: "no input directory"}
	}
	if err := c.Atlas.Validate(); err != nil {
		return err
	}
	if _, err := glyph.Lookup(c.Backend); err != nil {
		return err
	}
	if err := checkSizes("font_sizes", c.FontSizes); err != nil {
		return err
	}
	for stem, sizes := range c.Fonts {
		if len(sizes) == 0 {
			return &glyphatlas.ConfigError{Field: "fonts." + stem + ".sizes", Reason: "empty"}
		}
		if err := checkSizes("fonts."+stem+".sizes", sizes); err != nil {
			return err
		}
	}
	return nil
}

func checkSizes(field string, sizes []int) error {
	for _, s := range sizes {
		if s <= 0 {
			return &glyphatlas.ConfigError{Field: field, Reason: "size " + strconv.Itoa(s) + " must be positive"}
		}
	}
	return nil
}

// sizesFor returns the sorted, deduplicated pixel sizes for the font stem.
func (c *buildConfig) sizesFor(stem string) []int {
	sizes, ok := c.Fonts[stem]
	if !ok {
		sizes = c.FontSizes
	}
	sizes = slices.Clone(sizes)
	slices.Sort(sizes)
	return slices.Compact(sizes)
}

// fontName names one size of a font: the stem alone when the font is built
// at a single size, "<stem>_<size>" otherwise.
func fontName(stem string, size int, sizes int) string {
	if sizes == 1 {
		return stem
	}
	return stem + "_" + strconv.Itoa(size)
}
