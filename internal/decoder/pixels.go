package decoder

import (
	"compress/zlib"
	"io"

	"github.com/pngcore/decoder/internal/adam7"
	"github.com/pngcore/decoder/internal/filter"
	"github.com/pngcore/decoder/internal/pngerr"
	"github.com/pngcore/decoder/internal/raster"
)

// decodePixels inflates the accumulated IDAT payload and runs the
// defilter + unpack pipeline, once for a non-interlaced image or seven
// times (once per non-empty Adam7 pass) for an interlaced one.
func (d *Decoder) decodePixels() error {
	zr, err := zlib.NewReader(&d.idat)
	if err != nil {
		return pngerr.Wrap(pngerr.InflateError, err, "opening zlib stream")
	}
	defer zr.Close()

	r := raster.New(int(d.header.Width), int(d.header.Height))

	if d.header.Interlaced() {
		if err := d.decodeAdam7(zr, r); err != nil {
			return err
		}
	} else {
		if err := d.decodeFlat(zr, r); err != nil {
			return err
		}
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			o := (y*r.Width + x) * 4
			d.sink.SetPixel(x, y, r.Pix[o], r.Pix[o+1], r.Pix[o+2], r.Pix[o+3])
		}
	}
	return nil
}

// decodeFlat defilters and unpacks a non-interlaced image: height
// scanlines, each prefixed by a 1-byte filter tag.
func (d *Decoder) decodeFlat(zr io.Reader, r *raster.Raster) error {
	h := d.header
	scanlineBytes := h.BytesPerScanline
	prev := make([]byte, scanlineBytes)
	cur := make([]byte, scanlineBytes)
	tag := make([]byte, 1)

	for y := 0; y < int(h.Height); y++ {
		if _, err := io.ReadFull(zr, tag); err != nil {
			return pngerr.Wrap(pngerr.TruncatedStream, err, "reading scanline filter tag")
		}
		if _, err := io.ReadFull(zr, cur); err != nil {
			return pngerr.Wrap(pngerr.TruncatedStream, err, "reading scanline data")
		}
		if err := filter.Reverse(tag[0], cur, prev, h.BytesPerPixel); err != nil {
			return err
		}

		raster.UnpackRow(cur, h, &d.pal, int(h.Width), r, 0, 1, y)

		cur, prev = prev, cur
	}
	return nil
}

// decodeAdam7 defilters and unpacks each non-empty Adam7 pass
// independently, scattering samples into the final raster at their
// true (startCol + k*colIncr, startRow + j*rowIncr) position.
func (d *Decoder) decodeAdam7(zr io.Reader, r *raster.Raster) error {
	h := d.header
	width, height := int(h.Width), int(h.Height)

	for _, p := range adam7.Passes {
		subW, subH := adam7.SubImageDims(width, height, p)
		if subW == 0 || subH == 0 {
			continue
		}

		scanlineBytes := h.ScanlineBytesFor(subW)
		prev := make([]byte, scanlineBytes)
		cur := make([]byte, scanlineBytes)
		tag := make([]byte, 1)

		for j := 0; j < subH; j++ {
			if _, err := io.ReadFull(zr, tag); err != nil {
				return pngerr.Wrap(pngerr.TruncatedStream, err, "reading Adam7 scanline filter tag")
			}
			if _, err := io.ReadFull(zr, cur); err != nil {
				return pngerr.Wrap(pngerr.TruncatedStream, err, "reading Adam7 scanline data")
			}
			if err := filter.Reverse(tag[0], cur, prev, h.BytesPerPixel); err != nil {
				return err
			}

			y := p.StartRow + j*p.RowIncr
			raster.UnpackRow(cur, h, &d.pal, subW, r, p.StartCol, p.ColIncr, y)

			cur, prev = prev, cur
		}
	}
	return nil
}
