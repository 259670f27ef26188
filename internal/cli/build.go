package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/glyphatlas"
	"github.com/gogpu/glyphatlas/codec"
	"github.com/gogpu/glyphatlas/export"
	"github.com/gogpu/glyphatlas/glyph"
)

func (c *CLI) buildCommand() *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build [input-dir]",
		Short: "Pack a directory of icons and fonts into an atlas",
		Long: `Pack every icon (.png, .bmp, .tif) and font (.ttf, .otf) in the input
directory into one atlas, then write <name>.go, <name>.raw and optionally
<name>.json and a PNG preview into the output directory.

Icons are packed first, then fonts, each in file name order. A font built at
several sizes is named <stem>_<size>; at a single size it is named <stem>.`,
		Example: `  glyphatlas build assets -o gen --package icons --size 512
  glyphatlas build --config glyphatlas.toml -v`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd.Flags().Changed, args)
			if err != nil {
				return err
			}
			res, err := runBuild(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			printBuildSummary(cmd.OutOrStdout(), res)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "TOML configuration file")
	flags.StringVarP(&f.output, "output", "o", ".", "output directory")
	flags.StringVar(&f.name, "name", "atlas", "base name of the generated files")
	flags.StringVar(&f.pkg, "package", "atlas", "package clause of the generated Go file")
	flags.StringVar(&f.preview, "preview", "", "write a PNG preview to this path")
	flags.BoolVar(&f.manifest, "manifest", true, "write a JSON manifest")
	flags.IntVarP(&f.size, "size", "s", glyphatlas.DefaultConfig().Size, "atlas width and height in pixels")
	flags.IntVarP(&f.padding, "padding", "p", glyphatlas.DefaultConfig().Padding, "border and gap between tiles in pixels")
	flags.StringVar(&f.backend, "backend", glyph.DefaultBackend, "font rasterizer (see 'glyphatlas backends')")
	flags.IntSliceVar(&f.fontSizes, "font-sizes", []int{defaultFontSize}, "pixel sizes for every font")

	return cmd
}

// buildResult summarizes one build run.
type buildResult struct {
	Atlas  *glyphatlas.Atlas
	Export *export.Result
}

// runBuild packs the input directory and exports the atlas. Files are
// decoded concurrently and packed in scan order. It stops between fonts once
// ctx is done.
func runBuild(ctx context.Context, cfg *buildConfig) (*buildResult, error) {
	logger := loggerFromContext(ctx)

	found, err := scanAssets(cfg.Input)
	if err != nil {
		return nil, err
	}
	logger.Debug("Scanned input", "dir", cfg.Input, "icons", len(found.Icons), "fonts", len(found.Fonts))
	warnUnusedFonts(ctx, cfg, found)

	a, err := glyphatlas.New(cfg.Atlas)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	icons, err := loadAll(ctx, found.Icons, codec.DecodeFile)
	if err != nil {
		return nil, err
	}
	for i, bm := range icons {
		if err := a.AddIcon(glyphatlas.Stem(found.Icons[i]), bm.Width, bm.Height, bm.Pix); err != nil {
			return nil, err
		}
	}
	prog.done(fmt.Sprintf("Packed %d icons", len(icons)))

	prog = newProgress(logger)
	faces, err := loadAll(ctx, found.Fonts, func(path string) (glyph.Face, error) {
		return glyph.ParseFile(path, cfg.Backend)
	})
	if err != nil {
		return nil, err
	}
	var fonts int
	for i, face := range faces {
		stem := glyphatlas.Stem(found.Fonts[i])
		sizes := cfg.sizesFor(stem)
		for _, size := range sizes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := a.AddFont(fontName(stem, size, len(sizes)), face, size); err != nil {
				return nil, err
			}
			fonts++
		}
	}
	prog.done(fmt.Sprintf("Packed %d fonts", fonts))

	if err := os.MkdirAll(cfg.Output, 0o750); err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	res, err := export.Export(a, export.Options{
		Dir:      cfg.Output,
		Name:     cfg.Name,
		Package:  cfg.Package,
		Manifest: cfg.Manifest,
		Preview:  cfg.Preview,
	})
	if err != nil {
		return nil, err
	}
	return &buildResult{Atlas: a, Export: res}, nil
}

// warnUnusedFonts reports [fonts.<stem>] tables that match no input font.
func warnUnusedFonts(ctx context.Context, cfg *buildConfig, found assets) {
	stems := make(map[string]bool, len(found.Fonts))
	for _, path := range found.Fonts {
		stems[glyphatlas.Stem(path)] = true
	}
	for stem := range cfg.Fonts {
		if !stems[stem] {
			loggerFromContext(ctx).Warn("No font matches config table", "table", "fonts."+stem, "dir", filepath.Clean(cfg.Input))
		}
	}
}
