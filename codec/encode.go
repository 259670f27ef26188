package codec

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// EncodeGray writes a single-channel width x height bitmap to w as an 8-bit
// grayscale PNG.
func EncodeGray(w io.Writer, width, height int, pix []byte) error {
	if width < 0 || height < 0 || len(pix) != width*height {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrSizeMismatch, width, height, len(pix))
	}

	img := &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("codec: encode PNG: %w", err)
	}
	return nil
}

// SaveGray writes a single-channel bitmap to path as a grayscale PNG.
func SaveGray(path string, width, height int, pix []byte) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("codec: create file: %w", err)
	}

	if err := EncodeGray(f, width, height, pix); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("codec: close file: %w", err)
	}
	return nil
}
