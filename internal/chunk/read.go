package chunk

import (
	"encoding/binary"
	"io"

	"github.com/pngcore/decoder/internal/crc"
	"github.com/pngcore/decoder/internal/pngerr"
)

// SignatureLength is the size of the fixed PNG magic. The decoder skips past it
// without checking its contents.
const SignatureLength = 8

// Chunk is one length-prefixed, type-tagged, CRC-checked record.
type Chunk struct {
	Length uint32
	Type   Type
	Data   []byte
	CRC    uint32
}

// SkipSignature advances r past the 8-byte PNG signature.
func SkipSignature(r io.Reader) error {
	buf := make([]byte, SignatureLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return pngerr.Wrap(pngerr.TruncatedStream, err, "reading PNG signature")
	}
	return nil
}

// Read reads one chunk: length, type, payload, and CRC, and validates
// the stored CRC against one computed over type‖payload.
//
// If the stream ends cleanly (zero bytes read) before the length field,
// Read returns io.EOF verbatim so the caller can tell "no more chunks"
// apart from a stream truncated mid-chunk, which instead surfaces as a
// pngerr TruncatedStream.
func Read(r io.Reader) (Chunk, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		if err == io.EOF {
			return Chunk{}, io.EOF
		}
		return Chunk{}, pngerr.Wrap(pngerr.TruncatedStream, err, "reading chunk length")
	}
	length := binary.BigEndian.Uint32(lenBuf[:])

	var typeBuf [4]byte
	if _, err := io.ReadFull(r, typeBuf[:]); err != nil {
		return Chunk{}, pngerr.Wrap(pngerr.TruncatedStream, err, "reading chunk type")
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return Chunk{}, pngerr.Wrap(pngerr.TruncatedStream, err, "reading chunk payload")
	}

	var crcBuf [4]byte
	if _, err := io.ReadFull(r, crcBuf[:]); err != nil {
		return Chunk{}, pngerr.Wrap(pngerr.TruncatedStream, err, "reading chunk CRC")
	}
	stored := binary.BigEndian.Uint32(crcBuf[:])

	acc := crc.New()
	acc.Update(typeBuf[:])
	acc.Update(data)
	computed := acc.Value()
	if computed != stored {
		return Chunk{}, pngerr.Newf(pngerr.CrcMismatch, "chunk %s: stored CRC %08x != computed %08x", string(typeBuf[:]), stored, computed)
	}

	return Chunk{
		Length: length,
		Type:   FromBytes(typeBuf),
		Data:   data,
		CRC:    stored,
	}, nil
}
