package sink

import "image"

// Memory is a Sink backed by an in-memory image.NRGBA, letting the CLI
// hand the decoded image straight to the standard library's image/png
// encoder for a round-trip sanity check.
type Memory struct {
	MaxWidth, MaxHeight int

	Img        *image.NRGBA
	PaletteLen int
	DPIX, DPIY float64
	HasDPI     bool
	Properties []Property
}

// NewMemory returns a Memory sink with the given dimension ceiling. A
// zero limit means unlimited on that axis.
func NewMemory(maxWidth, maxHeight int) *Memory {
	return &Memory{MaxWidth: maxWidth, MaxHeight: maxHeight}
}

func (m *Memory) MaxDimensions() (int, int) { return m.MaxWidth, m.MaxHeight }

func (m *Memory) SetSize(width, height int) {
	m.Img = image.NewNRGBA(image.Rect(0, 0, width, height))
}

func (m *Memory) SetPixel(x, y int, r, g, b, a byte) {
	o := m.Img.PixOffset(x, y)
	pix := m.Img.Pix
	pix[o+0] = r
	pix[o+1] = g
	pix[o+2] = b
	pix[o+3] = a
}

func (m *Memory) SetPaletteSize(n int) { m.PaletteLen = n }

func (m *Memory) SetDPI(x, y float64) {
	m.DPIX, m.DPIY = x, y
	m.HasDPI = true
}

func (m *Memory) AddProperty(name, value string) {
	m.Properties = append(m.Properties, Property{Name: name, Value: value})
}
