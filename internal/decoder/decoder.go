// Package decoder drives the chunk-stream state machine and owns the
// per-decode state: header, palette, IDAT accumulator, and the sink the
// final pixels are written to. Every Decode call creates its own
// Decoder; nothing here is shared across decodes.
package decoder

import (
	"bytes"
	"io"

	"github.com/pngcore/decoder/internal/chunk"
	"github.com/pngcore/decoder/internal/header"
	"github.com/pngcore/decoder/internal/palette"
	"github.com/pngcore/decoder/internal/pngerr"
	"github.com/pngcore/decoder/internal/sink"
)

// Decoder is the chunk parser's state machine plus the state its
// handlers accumulate.
type Decoder struct {
	state      chunk.State
	haveHeader bool
	header     header.Header
	pal        palette.Palette
	seenIDAT   bool
	idat       bytes.Buffer
	sink       sink.Sink
}

// New returns a Decoder that will write its decoded image into sink.
func New(s sink.Sink) *Decoder {
	return &Decoder{state: chunk.ExpectSignature, sink: s}
}

// Decode reads a full PNG stream from r and writes the decoded image
// into sink. It is the package's single public operation: a synchronous
// "decode this stream into this sink" call.
func Decode(r io.Reader, s sink.Sink) error {
	return New(s).run(r)
}

func (d *Decoder) run(r io.Reader) error {
	if err := chunk.SkipSignature(r); err != nil {
		return err
	}
	d.state = chunk.ExpectHeader

	for {
		c, err := chunk.Read(r)
		if err != nil {
			if err == io.EOF {
				if d.state == chunk.AfterEnd {
					break
				}
				return pngerr.New(pngerr.MissingIend, "stream ended before IEND")
			}
			return err
		}

		if d.state == chunk.AfterEnd {
			return pngerr.Newf(pngerr.TrailingData, "chunk %s encountered after IEND", c.Type)
		}

		if err := d.dispatch(c); err != nil {
			return err
		}
	}

	return d.decodePixels()
}
