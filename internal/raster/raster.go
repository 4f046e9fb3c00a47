// Package raster holds the decoded RGBA pixel buffer and the sample
// unpacker that converts one defiltered scanline into RGBA samples for
// every PNG color type and legal bit depth.
package raster

import (
	"github.com/pngcore/decoder/internal/header"
	"github.com/pngcore/decoder/internal/palette"
)

// Raster is a row-major, 8-bit-per-channel RGBA pixel buffer. It is the
// redesign's fixed output representation: format conversion is the
// sink's job, not the unpacker's.
type Raster struct {
	Width, Height int
	Pix           []byte // len == Width*Height*4
}

// New allocates a zeroed raster (fully transparent black) of the given
// size.
func New(width, height int) *Raster {
	return &Raster{Width: width, Height: height, Pix: make([]byte, width*height*4)}
}

// Set writes one RGBA sample at raster position (x, y).
func (r *Raster) Set(x, y int, rr, gg, bb, aa byte) {
	o := (y*r.Width + x) * 4
	r.Pix[o+0] = rr
	r.Pix[o+1] = gg
	r.Pix[o+2] = bb
	r.Pix[o+3] = aa
}

// UnpackRow decodes one defiltered scanline (filter-type byte already
// stripped) of width subWidth into dst at row y, for the given header
// and, for palette images, palette table. x0/xStride/y let the Adam7
// reassembler scatter samples into the final raster instead of a
// contiguous sub-raster; the non-interlaced path passes x0=0, xStride=1.
func UnpackRow(row []byte, h header.Header, pal *palette.Palette, subWidth int, dst *Raster, x0, xStride, y int) {
	switch h.ColorType {
	case header.Grayscale:
		samples := unpackSamples(row, subWidth, h.BitDepth)
		for k := 0; k < subWidth; k++ {
			v := samples[k]
			dst.Set(x0+k*xStride, y, v, v, v, 255)
		}
	case header.GrayscaleAlpha:
		bps := h.BytesPerSample
		for k := 0; k < subWidth; k++ {
			base := k * 2 * bps
			v := row[base]
			a := row[base+bps]
			dst.Set(x0+k*xStride, y, v, v, v, a)
		}
	case header.RGB:
		bps := h.BytesPerSample
		for k := 0; k < subWidth; k++ {
			base := k * 3 * bps
			rr := row[base]
			gg := row[base+bps]
			bb := row[base+2*bps]
			dst.Set(x0+k*xStride, y, rr, gg, bb, 255)
		}
	case header.RGBA:
		bps := h.BytesPerSample
		for k := 0; k < subWidth; k++ {
			base := k * 4 * bps
			rr := row[base]
			gg := row[base+bps]
			bb := row[base+2*bps]
			a := row[base+3*bps]
			dst.Set(x0+k*xStride, y, rr, gg, bb, a)
		}
	case header.Palette:
		indices := unpackSamples(row, subWidth, h.BitDepth)
		for k := 0; k < subWidth; k++ {
			rr, gg, bb, a := pal.Lookup(int(indices[k]))
			dst.Set(x0+k*xStride, y, rr, gg, bb, a)
		}
	}
}

// unpackSamples splits row into subWidth samples of bitDepth bits each,
// MSB-first within each byte, as PNG packs sub-byte samples. At bit
// depth 8 or 16 this just reads one (or the high) byte per sample, so
// the same helper covers grayscale and palette at every legal depth.
func unpackSamples(row []byte, count int, bitDepth uint8) []byte {
	out := make([]byte, count)
	switch bitDepth {
	case 16:
		for i := 0; i < count; i++ {
			out[i] = row[i*2]
		}
	case 8:
		copy(out, row[:count])
	default:
		perByte := 8 / int(bitDepth)
		mask := byte(1<<bitDepth) - 1
		for i := 0; i < count; i++ {
			byteIdx := i / perByte
			slot := i % perByte
			shift := 8 - bitDepth - uint8(slot)*bitDepth
			out[i] = (row[byteIdx] >> shift) & mask
		}
	}
	return out
}
