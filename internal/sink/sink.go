// Package sink defines the output pixel sink contract: an external
// collaborator that accepts a width, height, an RGBA pixel array, and
// optional per-image metadata (DPI, text properties), and declares the
// dimension ceiling the decoder must enforce before allocating pixel
// memory.
package sink

// Property is one arbitrary name/value text pair, as decoded from a
// tEXt chunk.
type Property struct {
	Name  string
	Value string
}

// Sink receives the size and metadata as the decoder walks chunks, and
// the pixels only after every scanline has been decoded. Implementations
// own their own pixel storage; the decoder never exposes its internal
// Raster buffer.
type Sink interface {
	// MaxDimensions returns the largest width and height this sink will
	// accept. A zero value means "no limit" on that axis.
	MaxDimensions() (maxWidth, maxHeight int)

	// SetSize is called once, right after IHDR validates and before any
	// pixel data is written, with the final image dimensions.
	SetSize(width, height int)

	// SetPixel writes one RGBA sample at (x, y).
	SetPixel(x, y int, r, g, b, a byte)

	// SetPaletteSize reports the number of PLTE entries, for sinks that
	// want to expose a palette-quality indicator. Called whenever a PLTE
	// chunk arrives before the first IDAT, whatever the color type.
	SetPaletteSize(n int)

	// SetDPI reports horizontal/vertical resolution decoded from pHYs,
	// when the chunk's unit was meters.
	SetDPI(x, y float64)

	// AddProperty attaches one decoded tEXt name/value pair.
	AddProperty(name, value string)
}
