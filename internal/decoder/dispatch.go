package decoder

import (
	"github.com/pngcore/decoder/internal/chunk"
	"github.com/pngcore/decoder/internal/header"
	"github.com/pngcore/decoder/internal/palette"
	"github.com/pngcore/decoder/internal/pngerr"
)

// dispatch routes one validated chunk to its handler and advances the
// parser state. Unrecognized chunks fall through to the uppercase-bit
// convention: ancillary (lowercase) is skipped silently, critical
// (uppercase) fails the decode.
func (d *Decoder) dispatch(c chunk.Chunk) error {
	if !d.haveHeader {
		if c.Type != chunk.IHDR {
			return pngerr.Newf(pngerr.UnsupportedCriticalChunk, "first chunk must be IHDR, got %s", c.Type)
		}
		return d.handleIHDR(c.Data)
	}

	switch c.Type {
	case chunk.IHDR:
		return pngerr.New(pngerr.UnsupportedCriticalChunk, "duplicate IHDR")
	case chunk.PLTE:
		return d.handlePLTE(c.Data)
	case chunk.TRNS:
		d.handleTRNS(c.Data)
		return nil
	case chunk.PHYS:
		d.handlePhys(c.Data)
		return nil
	case chunk.TEXT:
		d.handleText(c.Data)
		return nil
	case chunk.IDAT:
		return d.handleIDAT(c.Data)
	case chunk.IEND:
		d.state = chunk.AfterEnd
		return nil
	default:
		if c.Type.IsCritical() {
			return pngerr.Newf(pngerr.UnsupportedCriticalChunk, "unknown critical chunk %s", c.Type)
		}
		return nil // unknown ancillary chunk: skip silently
	}
}

func (d *Decoder) handleIHDR(payload []byte) error {
	h, err := header.Parse(payload)
	if err != nil {
		return err
	}
	maxW, maxH := d.sink.MaxDimensions()
	if (maxW > 0 && int(h.Width) > maxW) || (maxH > 0 && int(h.Height) > maxH) {
		return pngerr.Newf(pngerr.DimensionsExceedLimit, "image %dx%d exceeds limit %dx%d", h.Width, h.Height, maxW, maxH)
	}

	d.header = h
	d.haveHeader = true
	d.state = chunk.InMetadata
	d.sink.SetSize(int(h.Width), int(h.Height))
	return nil
}

// handlePLTE only takes effect before the first IDAT: a PLTE chunk
// arriving later can't satisfy the "PLTE precedes first IDAT"
// invariant, so it is parsed (to keep CRC/shape validation uniform) but
// not applied — any color-type-3 image still missing a palette will be
// caught as MissingPlte when the first IDAT arrives.
func (d *Decoder) handlePLTE(payload []byte) error {
	pal, err := palette.Parse(payload)
	if err != nil {
		return err
	}
	if d.seenIDAT {
		return nil
	}
	d.pal = pal
	d.sink.SetPaletteSize(pal.Len())
	return nil
}

func (d *Decoder) handleTRNS(payload []byte) {
	if d.seenIDAT {
		return
	}
	d.pal.SetAlpha(payload)
}

func (d *Decoder) handleIDAT(payload []byte) error {
	if !d.seenIDAT {
		if d.header.ColorType == header.Palette && d.pal.Len() == 0 {
			return pngerr.New(pngerr.MissingPlte, "color type 3 requires PLTE before the first IDAT")
		}
		d.seenIDAT = true
		d.state = chunk.InData
	}
	d.idat.Write(payload)
	return nil
}
