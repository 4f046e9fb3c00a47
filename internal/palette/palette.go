// Package palette holds the PLTE color table and optional tRNS alpha
// table used by indexed (color type 3) images.
package palette

import "github.com/pngcore/decoder/internal/pngerr"

// Palette is the PLTE/tRNS state for one decode.
type Palette struct {
	RGB   [][3]byte // up to 256 entries
	Alpha []byte    // parallel tRNS table, may be shorter than RGB or absent
}

// Parse validates and stores a PLTE payload. The payload length must be
// a multiple of 3 (one RGB triplet per palette entry).
func Parse(payload []byte) (Palette, error) {
	if len(payload)%3 != 0 {
		return Palette{}, pngerr.Newf(pngerr.UnsupportedColorType, "PLTE length %d is not a multiple of 3", len(payload))
	}
	n := len(payload) / 3
	rgb := make([][3]byte, n)
	for i := 0; i < n; i++ {
		rgb[i] = [3]byte{payload[3*i], payload[3*i+1], payload[3*i+2]}
	}
	return Palette{RGB: rgb}, nil
}

// SetAlpha stores a tRNS payload as the palette's alpha table. Entries
// beyond len(Alpha) default to fully opaque (255) at lookup time.
func (p *Palette) SetAlpha(payload []byte) {
	p.Alpha = append([]byte(nil), payload...)
}

// Lookup returns the RGBA color for palette index i. An index beyond
// the PLTE table is treated as fully transparent black, since it can
// only arise from a malformed stream and there is no color to return.
func (p Palette) Lookup(i int) (r, g, b, a byte) {
	if i < 0 || i >= len(p.RGB) {
		return 0, 0, 0, 0
	}
	a = 255
	if i < len(p.Alpha) {
		a = p.Alpha[i]
	}
	if a == 0 {
		return 0, 0, 0, 0
	}
	c := p.RGB[i]
	return c[0], c[1], c[2], a
}

// Len reports the number of PLTE entries.
func (p Palette) Len() int { return len(p.RGB) }
