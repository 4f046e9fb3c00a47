// Package filter reverses the five PNG scanline prediction filters.
// Reversal happens in place over the current scanline's bytes, using
// the previous scanline and the bpp-wide left neighbor as inputs.
package filter

import "github.com/pngcore/decoder/internal/pngerr"

const (
	None    = 0
	Sub     = 1
	Up      = 2
	Average = 3
	Paeth   = 4
)

// Reverse undoes the filter named by filterType on cur in place. prev
// is the previous scanline's already-defiltered bytes (all zero for the
// first row of an image or Adam7 pass), and bpp is the bytes-per-pixel
// stride used to find the "left" neighbor. len(cur) must equal
// len(prev).
func Reverse(filterType byte, cur, prev []byte, bpp int) error {
	switch filterType {
	case None:
		return nil
	case Sub:
		for i := range cur {
			cur[i] += left(cur, i, bpp)
		}
	case Up:
		for i := range cur {
			cur[i] += prev[i]
		}
	case Average:
		for i := range cur {
			a := int(left(cur, i, bpp))
			b := int(prev[i])
			cur[i] += byte((a + b) / 2)
		}
	case Paeth:
		for i := range cur {
			a := left(cur, i, bpp)
			b := prev[i]
			var c byte
			if i >= bpp {
				c = prev[i-bpp]
			}
			cur[i] += PredictPaeth(a, b, c)
		}
	default:
		return pngerr.Newf(pngerr.UnknownFilter, "unknown filter type %d", filterType)
	}
	return nil
}

func left(cur []byte, i, bpp int) byte {
	if i < bpp {
		return 0
	}
	return cur[i-bpp]
}

// PredictPaeth picks whichever of a, b, c is closest to p = a + b - c,
// breaking ties in favor of a, then b, then c.
func PredictPaeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
