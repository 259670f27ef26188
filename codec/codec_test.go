package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecode_RGBAverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 254, A: 255})

	bm, err := Decode(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if bm.Width != 2 || bm.Height != 1 {
		t.Fatalf("Dimensions = (%d, %d), want (2, 1)", bm.Width, bm.Height)
	}
	if bm.Pix[0] != 20 {
		t.Errorf("Pix[0] = %d, want 20", bm.Pix[0])
	}
	// (255+255+254)/3 = 254.67, truncated.
	if bm.Pix[1] != 254 {
		t.Errorf("Pix[1] = %d, want 254", bm.Pix[1])
	}
}

func TestDecode_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 40)
	}

	bm, err := Decode(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(bm.Pix, img.Pix) {
		t.Errorf("Pix = %v, want %v", bm.Pix, img.Pix)
	}
}

func TestDecode_AlphaChannel(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 7})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 0, B: 0, A: 200})

	bm, err := Decode(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if bm.Pix[0] != 7 || bm.Pix[1] != 200 {
		t.Errorf("Pix = %v, want [7 200]", bm.Pix)
	}
}

func TestDecode_Gray16HighByte(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 1, 1))
	img.SetGray16(0, 0, color.Gray16{Y: 0xABCD})

	bm, err := Decode(bytes.NewReader(encodePNG(t, img)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if bm.Pix[0] != 0xAB {
		t.Errorf("Pix[0] = %#x, want 0xab", bm.Pix[0])
	}
}

func TestDecode_IndexedRejected(t *testing.T) {
	pal := color.Palette{color.Black, color.White}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), pal)

	_, err := Decode(bytes.NewReader(encodePNG(t, img)))
	if err == nil {
		t.Fatal("Decode() error = nil, want DecodeError")
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
	if de.Format != "png" {
		t.Errorf("Format = %q, want %q", de.Format, "png")
	}
	if !errors.Is(err, ErrIndexedColor) {
		t.Errorf("errors.Is(err, ErrIndexedColor) = false, want true")
	}
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("error type = %T, want *DecodeError", err)
	}
}

func TestDecode_BMP(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 30, G: 60, B: 90, A: 255})

	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}

	bm, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if bm.Pix[0] != 60 {
		t.Errorf("Pix[0] = %d, want 60", bm.Pix[0])
	}
}

func TestDecode_TIFF(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 2))
	copy(img.Pix, []byte{1, 2, 3, 4})

	var buf bytes.Buffer
	if err := tiff.Encode(&buf, img, nil); err != nil {
		t.Fatalf("tiff.Encode() error = %v", err)
	}

	bm, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(bm.Pix, []byte{1, 2, 3, 4}) {
		t.Errorf("Pix = %v, want [1 2 3 4]", bm.Pix)
	}
}

// encodeBMP32 builds a one-row 32-bpp BI_RGB BMP with an info header of
// infoLen bytes. Pixels are given as B, G, R, X.
func encodeBMP32(infoLen int, pixels ...[4]byte) []byte {
	const fileHeaderLen = 14
	le := binary.LittleEndian
	offset := fileHeaderLen + infoLen
	b := make([]byte, offset, offset+4*len(pixels))
	copy(b, "BM")
	le.PutUint32(b[2:], uint32(offset+4*len(pixels)))
	le.PutUint32(b[10:], uint32(offset))
	le.PutUint32(b[14:], uint32(infoLen))
	le.PutUint32(b[18:], uint32(len(pixels))) // width
	le.PutUint32(b[22:], 1)                   // height
	le.PutUint16(b[26:], 1)                   // planes
	le.PutUint16(b[28:], 32)                  // bits per pixel
	for _, px := range pixels {
		b = append(b, px[:]...)
	}
	return b
}

// encodeTIFFRGB builds an uncompressed little-endian 1x1 RGB TIFF with no
// extra samples.
func encodeTIFFRGB(r, g, b byte) []byte {
	const (
		short = 3
		long  = 4
	)
	le := binary.LittleEndian
	entries := []struct {
		tag, typ uint16
		count    uint32
		value    uint32
	}{
		{256, short, 1, 1},   // ImageWidth
		{257, short, 1, 1},   // ImageLength
		{258, short, 3, 122}, // BitsPerSample, stored after the IFD
		{259, short, 1, 1},   // Compression: none
		{262, short, 1, 2},   // PhotometricInterpretation: RGB
		{273, long, 1, 128},  // StripOffsets
		{277, short, 1, 3},   // SamplesPerPixel
		{278, short, 1, 1},   // RowsPerStrip
		{279, long, 1, 3},    // StripByteCounts
	}

	out := make([]byte, 8, 131)
	copy(out, "II")
	le.PutUint16(out[2:], 42)
	le.PutUint32(out[4:], 8)
	out = le.AppendUint16(out, uint16(len(entries)))
	for _, e := range entries {
		out = le.AppendUint16(out, e.tag)
		out = le.AppendUint16(out, e.typ)
		out = le.AppendUint32(out, e.count)
		out = le.AppendUint32(out, e.value)
	}
	out = le.AppendUint32(out, 0) // no next IFD
	for range 3 {
		out = le.AppendUint16(out, 8)
	}
	return append(out, r, g, b)
}

func TestDecode_ChannelLayoutFromHeader(t *testing.T) {
	var rgbaTIFF bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 128})
	if err := tiff.Encode(&rgbaTIFF, img, nil); err != nil {
		t.Fatalf("tiff.Encode() error = %v", err)
	}

	var nrgbaTIFF bytes.Buffer
	nimg := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	nimg.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 77})
	if err := tiff.Encode(&nrgbaTIFF, nimg, nil); err != nil {
		t.Fatalf("tiff.Encode() error = %v", err)
	}

	tests := []struct {
		name string
		data []byte
		want []byte
	}{
		// The fourth byte of a BITMAPINFOHEADER pixel is padding.
		{"BMP32RGB", encodeBMP32(40, [4]byte{30, 20, 10, 0}, [4]byte{30, 20, 10, 200}), []byte{20, 20}},
		{"BMP32V4Alpha", encodeBMP32(108, [4]byte{30, 20, 10, 128}, [4]byte{0, 0, 0, 7}), []byte{128, 7}},
		{"TIFFRGB", encodeTIFFRGB(10, 20, 30), []byte{20}},
		{"TIFFAssociatedAlpha", rgbaTIFF.Bytes(), []byte{128}},
		{"TIFFUnassociatedAlpha", nrgbaTIFF.Bytes(), []byte{77}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := Decode(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(bm.Pix, tt.want) {
				t.Errorf("Pix = %v, want %v", bm.Pix, tt.want)
			}
		})
	}
}

func TestTIFFTag(t *testing.T) {
	data := encodeTIFFRGB(1, 2, 3)
	if v, ok := tiffTag(data, 277); !ok || v != 3 {
		t.Errorf("tiffTag(SamplesPerPixel) = %d, %v, want 3, true", v, ok)
	}
	if _, ok := tiffTag(data, tiffTagExtraSamples); ok {
		t.Error("tiffTag(ExtraSamples) found a tag that is not present")
	}
	for _, bad := range [][]byte{nil, []byte("II*\x00"), data[:20], []byte("XX*\x00\x08\x00\x00\x00")} {
		if _, ok := tiffTag(bad, 277); ok {
			t.Errorf("tiffTag(%q) ok = true, want false", bad)
		}
	}
}

func TestReduce(t *testing.T) {
	rgba64 := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	rgba64.SetRGBA64(0, 0, color.RGBA64{R: 0x0300, G: 0x0600, B: 0x0900, A: 0xFFFF})

	nrgba64 := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	nrgba64.SetNRGBA64(0, 0, color.NRGBA64{R: 0xFFFF, A: 0x4200})

	// Gray+alpha sources decode to NRGBA with equal color channels.
	grayAlpha := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	grayAlpha.SetNRGBA(0, 0, color.NRGBA{R: 90, G: 90, B: 90, A: 33})

	tests := []struct {
		name string
		img  image.Image
		want byte
	}{
		{"RGBA64", rgba64, 6},
		{"NRGBA64", nrgba64, 0x42},
		{"GrayAlpha", grayAlpha, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := Reduce(tt.img)
			if err != nil {
				t.Fatalf("Reduce() error = %v", err)
			}
			if bm.Pix[0] != tt.want {
				t.Errorf("Pix[0] = %d, want %d", bm.Pix[0], tt.want)
			}
		})
	}
}

func TestReduce_SubImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = byte(i)
	}
	sub := img.SubImage(image.Rect(1, 1, 3, 3))

	bm, err := Reduce(sub)
	if err != nil {
		t.Fatalf("Reduce() error = %v", err)
	}
	want := []byte{5, 6, 9, 10}
	if !bytes.Equal(bm.Pix, want) {
		t.Errorf("Pix = %v, want %v", bm.Pix, want)
	}
}

func TestReduce_Unsupported(t *testing.T) {
	img := image.NewCMYK(image.Rect(0, 0, 1, 1))

	_, err := Reduce(img)
	if !errors.Is(err, ErrUnsupportedColorModel) {
		t.Errorf("Reduce() error = %v, want ErrUnsupportedColorModel", err)
	}
}

func TestDecodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "icon.png")

	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.Pix[0], img.Pix[1] = 11, 22
	if err := os.WriteFile(path, encodePNG(t, img), 0o600); err != nil {
		t.Fatal(err)
	}

	bm, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if bm.Pix[0] != 11 || bm.Pix[1] != 22 {
		t.Errorf("Pix = %v, want [11 22]", bm.Pix)
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := DecodeFile(filepath.Join(dir, "missing.png"))
	var pe *os.PathError
	if !errors.As(err, &pe) {
		t.Errorf("missing file: error type = %T, want *os.PathError", err)
	}

	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("garbage"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = DecodeFile(bad)
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("bad file: error type = %T, want *DecodeError", err)
	}
	if de.Path != bad {
		t.Errorf("Path = %q, want %q", de.Path, bad)
	}
}

func TestEncodeGray(t *testing.T) {
	pix := []byte{0, 64, 128, 255, 1, 2}

	var buf bytes.Buffer
	if err := EncodeGray(&buf, 3, 2, pix); err != nil {
		t.Fatalf("EncodeGray() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("decoded type = %T, want *image.Gray", img)
	}
	if !bytes.Equal(gray.Pix, pix) {
		t.Errorf("Pix = %v, want %v", gray.Pix, pix)
	}
}

func TestEncodeGray_SizeMismatch(t *testing.T) {
	err := EncodeGray(&bytes.Buffer{}, 3, 3, make([]byte, 8))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("EncodeGray() error = %v, want ErrSizeMismatch", err)
	}
}

func TestSaveGray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SaveGray(path, 2, 2, []byte{9, 8, 7, 6}); err != nil {
		t.Fatalf("SaveGray() error = %v", err)
	}

	bm, err := DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile() error = %v", err)
	}
	if !bytes.Equal(bm.Pix, []byte{9, 8, 7, 6}) {
		t.Errorf("Pix = %v, want [9 8 7 6]", bm.Pix)
	}
}
