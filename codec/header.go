package codec

import (
	"encoding/binary"
	"image"
)

const (
	bmpInfoHeaderLen    = 40  // BITMAPINFOHEADER
	tiffTagExtraSamples = 338 // ExtraSamples
	tiffAssocAlpha      = 1   // ExtraSamples: associated alpha
)

// sourceAlpha reports whether the encoded image data, already decoded as
// img in the named format, has an alpha channel.
func sourceAlpha(format string, data []byte, img image.Image) bool {
	switch format {
	case "bmp":
		// 32-bpp pixels decode to NRGBA either way. The fourth byte is
		// alpha only with a BITMAPV4HEADER or later; otherwise it is padding.
		if _, ok := img.(*image.NRGBA); !ok || len(data) < 18 {
			return false
		}
		return binary.LittleEndian.Uint32(data[14:18]) > bmpInfoHeaderLen

	case "tiff":
		switch img.(type) {
		case *image.RGBA, *image.RGBA64:
			// Both RGB and associated-alpha RGBA decode to RGBA.
			v, ok := tiffTag(data, tiffTagExtraSamples)
			return ok && v == tiffAssocAlpha
		}
	}
	return typeAlpha(img)
}

// tiffTag returns the first value of a SHORT or LONG tag in the first IFD
// of a TIFF file.
func tiffTag(data []byte, tag uint16) (uint32, bool) {
	if len(data) < 8 {
		return 0, false
	}
	var bo binary.ByteOrder
	switch string(data[:2]) {
	case "II":
		bo = binary.LittleEndian
	case "MM":
		bo = binary.BigEndian
	default:
		return 0, false
	}

	off := uint64(bo.Uint32(data[4:8]))
	if off+2 > uint64(len(data)) {
		return 0, false
	}
	n := uint64(bo.Uint16(data[off:]))
	for i := range n {
		e := off + 2 + i*12
		if e+12 > uint64(len(data)) {
			return 0, false
		}
		entry := data[e : e+12]
		if bo.Uint16(entry[0:2]) != tag {
			continue
		}
		switch bo.Uint16(entry[2:4]) {
		case 3: // SHORT
			return uint32(bo.Uint16(entry[8:10])), true
		case 4: // LONG
			return bo.Uint32(entry[8:12]), true
		}
		return 0, false
	}
	return 0, false
}
