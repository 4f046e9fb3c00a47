package decoder

import (
	"bytes"
	"encoding/binary"
)

const metersPerInch = 39.3700787

// handlePhys decodes a pHYs payload into DPI when the unit is meters.
// A malformed payload is tolerated by skipping the chunk: pHYs is
// ancillary and never worth failing the whole decode over.
func (d *Decoder) handlePhys(payload []byte) {
	if len(payload) != 9 {
		return
	}
	ppuX := binary.BigEndian.Uint32(payload[0:4])
	ppuY := binary.BigEndian.Uint32(payload[4:8])
	unit := payload[8]
	if unit != 1 {
		return
	}
	d.sink.SetDPI(float64(ppuX)/metersPerInch, float64(ppuY)/metersPerInch)
}

// handleText splits a tEXt payload at the first NUL byte into a Latin-1
// keyword and value. A payload with no NUL is tolerated by skipping it.
func (d *Decoder) handleText(payload []byte) {
	i := bytes.IndexByte(payload, 0)
	if i < 0 {
		return
	}
	keyword := latin1ToUTF8(payload[:i])
	value := latin1ToUTF8(payload[i+1:])
	d.sink.AddProperty(keyword, value)
}

// latin1ToUTF8 decodes a Latin-1 (ISO 8859-1) byte string into a Go
// string, where every byte maps 1:1 to the Unicode code point of the
// same value.
func latin1ToUTF8(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}
