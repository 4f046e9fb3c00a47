// Package header parses and validates the IHDR chunk and computes the
// quantities derived from it that the rest of the decoder needs: bytes
// per pixel for filter reversal, bytes per sample for 16-bit truncation,
// and bytes per scanline for framing the inflated stream.
package header

import (
	"encoding/binary"

	"github.com/pngcore/decoder/internal/pngerr"
)

// ColorType is the IHDR color-type tag.
type ColorType uint8

const (
	Grayscale      ColorType = 0
	RGB            ColorType = 2
	Palette        ColorType = 3
	GrayscaleAlpha ColorType = 4
	RGBA           ColorType = 6
)

// channelsByColorType and allowedBitDepths are the closed, immutable
// lookup tables PNG's color-type/bit-depth combinations are defined by.
var channelsByColorType = map[ColorType]int{
	Grayscale:      1,
	RGB:            3,
	Palette:        1,
	GrayscaleAlpha: 2,
	RGBA:           4,
}

var allowedBitDepths = map[ColorType]map[uint8]bool{
	Grayscale:      {1: true, 2: true, 4: true, 8: true, 16: true},
	RGB:            {8: true, 16: true},
	Palette:        {1: true, 2: true, 4: true, 8: true},
	GrayscaleAlpha: {8: true, 16: true},
	RGBA:           {8: true, 16: true},
}

// Header holds the parsed and validated IHDR contents plus the
// quantities derived from them.
type Header struct {
	Width             uint32
	Height            uint32
	BitDepth          uint8
	ColorType         ColorType
	CompressionMethod uint8
	FilterMethod      uint8
	InterlaceMethod   uint8

	Channels         int
	BytesPerPixel    int // bpp, minimum 1, used as the filter left-neighbor stride
	BytesPerSample   int // max(1, bitDepth/8)
	BytesPerScanline int // for the non-interlaced, full-width case
}

// Parse validates the 13-byte IHDR payload and returns the populated
// Header, including its derived quantities.
func Parse(payload []byte) (Header, error) {
	if len(payload) != 13 {
		return Header{}, pngerr.Newf(pngerr.TruncatedStream, "IHDR payload must be 13 bytes, got %d", len(payload))
	}

	h := Header{
		Width:             binary.BigEndian.Uint32(payload[0:4]),
		Height:            binary.BigEndian.Uint32(payload[4:8]),
		BitDepth:          payload[8],
		ColorType:         ColorType(payload[9]),
		CompressionMethod: payload[10],
		FilterMethod:      payload[11],
		InterlaceMethod:   payload[12],
	}

	if h.Width == 0 || h.Height == 0 {
		return Header{}, pngerr.Newf(pngerr.UnsupportedColorType, "width and height must both be >= 1, got %dx%d", h.Width, h.Height)
	}

	channels, ok := channelsByColorType[h.ColorType]
	if !ok {
		return Header{}, pngerr.Newf(pngerr.UnsupportedColorType, "unsupported color type %d", h.ColorType)
	}
	if !allowedBitDepths[h.ColorType][h.BitDepth] {
		return Header{}, pngerr.Newf(pngerr.UnsupportedBitDepth, "bit depth %d not legal for color type %d", h.BitDepth, h.ColorType)
	}
	if h.CompressionMethod != 0 {
		return Header{}, pngerr.Newf(pngerr.UnsupportedCompressionMethod, "compression method %d", h.CompressionMethod)
	}
	if h.FilterMethod != 0 {
		return Header{}, pngerr.Newf(pngerr.UnsupportedFilterMethod, "filter method %d", h.FilterMethod)
	}
	if h.InterlaceMethod != 0 && h.InterlaceMethod != 1 {
		return Header{}, pngerr.Newf(pngerr.UnsupportedInterlaceMethod, "interlace method %d", h.InterlaceMethod)
	}

	h.Channels = channels
	h.BytesPerPixel = bytesPerPixel(channels, h.BitDepth)
	h.BytesPerSample = bytesPerSample(h.BitDepth)
	h.BytesPerScanline = ScanlineBytes(int(h.Width), channels, h.BitDepth)

	return h, nil
}

// Interlaced reports whether Adam7 interlacing is in effect.
func (h Header) Interlaced() bool { return h.InterlaceMethod == 1 }

// ScanlineBytesFor returns the byte count of one defiltered scanline
// (excluding the filter-type tag) for a sub-image of the given width,
// using this header's channel count and bit depth. Used by the Adam7
// reassembler, whose seven passes each have their own sub-image width.
func (h Header) ScanlineBytesFor(width int) int {
	return ScanlineBytes(width, h.Channels, h.BitDepth)
}

func bytesPerPixel(channels int, bitDepth uint8) int {
	bpp := (channels*int(bitDepth) + 7) / 8
	if bpp < 1 {
		return 1
	}
	return bpp
}

func bytesPerSample(bitDepth uint8) int {
	if bitDepth < 8 {
		return 1
	}
	return int(bitDepth) / 8
}

// ScanlineBytes returns ceil(width*channels*bitDepth/8), the byte count
// of one defiltered scanline (excluding the filter-type tag) for an
// image or Adam7 sub-image of the given width.
func ScanlineBytes(width, channels int, bitDepth uint8) int {
	bits := width * channels * int(bitDepth)
	return (bits + 7) / 8
}
