package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// assets lists the input files of a build in the order they are packed.
type assets struct {
	Icons []string
	Fonts []string
}

// scanAssets lists the icons (.png, .bmp, .tif, .tiff) and fonts (.ttf, .otf)
// directly inside dir, sorted by file name. Hidden files, directories and
// other extensions are skipped.
func scanAssets(dir string) (assets, error) {
	var a assets
	entries, err := os.ReadDir(dir)
	if err != nil {
		return a, fmt.Errorf("scan input: %w", err)
	}
	// os.ReadDir sorts by file name.
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		path := filepath.Join(dir, name)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".png", ".bmp", ".tif", ".tiff":
			a.Icons = append(a.Icons, path)
		case ".ttf", ".otf":
			a.Fonts = append(a.Fonts, path)
		}
	}
	return a, nil
}
