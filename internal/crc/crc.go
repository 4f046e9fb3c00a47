// Package crc wraps github.com/snksoft/crc as the running CRC-32
// accumulator the chunk parser needs: Update gets called once for a
// chunk's type bytes and again for its payload, and Value is read once
// at the end, so a one-shot CalculateCRC call would force a concat of
// two slices on every chunk for no reason.
package crc

import "github.com/snksoft/crc"

// Accumulator is a running CRC-32/PNG checksum.
type Accumulator struct {
	hash *crc.Hash
}

// New returns a fresh accumulator seeded the way a new chunk's checksum
// is seeded: no bytes consumed yet.
func New() *Accumulator {
	return &Accumulator{hash: crc.NewHash(crc.CRC32)}
}

// Update feeds p into the running checksum.
func (a *Accumulator) Update(p []byte) {
	a.hash.Update(p)
}

// Value returns the checksum of everything fed so far.
func (a *Accumulator) Value() uint32 {
	return uint32(a.hash.CRC32())
}

// Checksum is a convenience one-shot helper for callers (tests, mostly)
// that already have the full type-plus-payload slice in hand.
func Checksum(data []byte) uint32 {
	return uint32(crc.CalculateCRC(crc.CRC32, data))
}
