// Package codec loads icon images as single-channel bitmaps and writes
// single-channel bitmaps as grayscale PNG files.
//
// PNG, BMP and TIFF inputs are supported. Multi-channel images are reduced to
// one channel with a fixed policy:
//
//   - grayscale: the gray value
//   - grayscale with alpha: the alpha channel
//   - RGB: the unweighted average of the three channels, truncated
//   - RGBA: the alpha channel
//   - indexed color: rejected with [ErrIndexedColor]
//
// 16-bit channels are normalized to 8 bits by keeping the high byte.
//
// Whether a source carries alpha is read from the file header, not from the
// decoded Go image type: a 32-bpp BMP with a BITMAPINFOHEADER is RGB, and a
// TIFF with associated alpha is RGBA.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// Bitmap is a single-channel image, row-major, one byte per pixel.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// DecodeFile decodes the image at path and reduces it to one channel.
func DecodeFile(path string) (*Bitmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("codec: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	bm, err := Decode(f)
	if err != nil {
		var de *DecodeError
		if errors.As(err, &de) {
			de.Path = path
		}
		return nil, err
	}
	return bm, nil
}

// Decode decodes an image from r, auto-detecting the format, and reduces it
// to one channel.
func Decode(r io.Reader) (*Bitmap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	bm, err := reduce(img, sourceAlpha(format, data, img))
	if err != nil {
		return nil, &DecodeError{Format: format, Err: err}
	}
	return bm, nil
}

// Reduce converts img to a single-channel bitmap using the package
// reduction policy. NRGBA and NRGBA64 images are taken to carry alpha; RGBA
// and RGBA64 images are taken to be opaque RGB.
func Reduce(img image.Image) (*Bitmap, error) {
	return reduce(img, typeAlpha(img))
}

// typeAlpha reports whether img's type implies an alpha channel in the
// source it was decoded from.
func typeAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return true
	}
	return false
}

// reduce converts img to one channel. For color images alpha selects the
// alpha channel; otherwise the color channels are averaged.
func reduce(img image.Image, alpha bool) (*Bitmap, error) {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	bm := &Bitmap{Width: width, Height: height, Pix: make([]byte, width*height)}

	switch src := img.(type) {
	case *image.Gray:
		for y := range height {
			row := src.Pix[y*src.Stride:]
			copy(bm.Pix[y*width:(y+1)*width], row[:width])
		}

	case *image.Gray16:
		for y := range height {
			row := src.Pix[y*src.Stride:]
			for x := range width {
				bm.Pix[y*width+x] = row[x*2] // big-endian high byte
			}
		}

	case *image.NRGBA:
		reduce8(bm, src.Pix, src.Stride, alpha)

	case *image.RGBA:
		reduce8(bm, src.Pix, src.Stride, alpha)

	case *image.NRGBA64:
		reduce16(bm, src.Pix, src.Stride, alpha)

	case *image.RGBA64:
		reduce16(bm, src.Pix, src.Stride, alpha)

	case *image.Paletted:
		return nil, ErrIndexedColor

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedColorModel, img)
	}

	return bm, nil
}

// reduce8 reduces 4-byte RGBA-ordered pixels into bm.
func reduce8(bm *Bitmap, pix []byte, stride int, alpha bool) {
	for y := range bm.Height {
		row := pix[y*stride:]
		for x := range bm.Width {
			px := row[x*4:]
			if alpha {
				bm.Pix[y*bm.Width+x] = px[3]
				continue
			}
			bm.Pix[y*bm.Width+x] = byte((uint32(px[0]) + uint32(px[1]) + uint32(px[2])) / 3)
		}
	}
}

// reduce16 reduces 8-byte big-endian RGBA-ordered pixels into bm, keeping
// the high byte of each channel.
func reduce16(bm *Bitmap, pix []byte, stride int, alpha bool) {
	for y := range bm.Height {
		row := pix[y*stride:]
		for x := range bm.Width {
			px := row[x*8:]
			if alpha {
				bm.Pix[y*bm.Width+x] = px[6]
				continue
			}
			bm.Pix[y*bm.Width+x] = byte((uint32(px[0]) + uint32(px[2]) + uint32(px[4])) / 3)
		}
	}
}
