package raster

import (
	"testing"

	"github.com/pngcore/decoder/internal/header"
	"github.com/pngcore/decoder/internal/palette"
)

func TestUnpackRowGrayscale8(t *testing.T) {
	h := header.Header{ColorType: header.Grayscale, BitDepth: 8, Channels: 1, BytesPerSample: 1}
	dst := New(1, 1)
	UnpackRow([]byte{0x80}, h, nil, 1, dst, 0, 1, 0)
	r, g, b, a := dst.Pix[0], dst.Pix[1], dst.Pix[2], dst.Pix[3]
	if r != 128 || g != 128 || b != 128 || a != 255 {
		t.Fatalf("got %d,%d,%d,%d want 128,128,128,255", r, g, b, a)
	}
}

func TestUnpackRowGrayscaleSubByte(t *testing.T) {
	h := header.Header{ColorType: header.Grayscale, BitDepth: 1, Channels: 1, BytesPerSample: 1}
	dst := New(4, 1)
	// one byte, MSB first: 1,0,1,1
	UnpackRow([]byte{0b10110000}, h, nil, 4, dst, 0, 1, 0)
	want := []byte{1, 0, 1, 1}
	for x, w := range want {
		if dst.Pix[x*4] != w {
			t.Fatalf("pixel %d gray = %d, want %d", x, dst.Pix[x*4], w)
		}
	}
}

func TestUnpackRowRGB8(t *testing.T) {
	h := header.Header{ColorType: header.RGB, BitDepth: 8, Channels: 3, BytesPerSample: 1}
	dst := New(2, 1)
	row := []byte{10, 20, 30, 40, 50, 60}
	UnpackRow(row, h, nil, 2, dst, 0, 1, 0)
	if dst.Pix[0] != 10 || dst.Pix[1] != 20 || dst.Pix[2] != 30 || dst.Pix[3] != 255 {
		t.Fatalf("pixel0 = %v", dst.Pix[0:4])
	}
	if dst.Pix[4] != 40 || dst.Pix[5] != 50 || dst.Pix[6] != 60 || dst.Pix[7] != 255 {
		t.Fatalf("pixel1 = %v", dst.Pix[4:8])
	}
}

func TestUnpackRowRGBA16TakesHighByte(t *testing.T) {
	h := header.Header{ColorType: header.RGBA, BitDepth: 16, Channels: 4, BytesPerSample: 2}
	dst := New(1, 1)
	row := []byte{0x11, 0xAA, 0x22, 0xBB, 0x33, 0xCC, 0x44, 0xDD}
	UnpackRow(row, h, nil, 1, dst, 0, 1, 0)
	want := []byte{0x11, 0x22, 0x33, 0x44}
	for i, w := range want {
		if dst.Pix[i] != w {
			t.Fatalf("channel %d = %#x, want %#x", i, dst.Pix[i], w)
		}
	}
}

func TestUnpackRowPalette(t *testing.T) {
	pal, err := palette.Parse([]byte{255, 0, 0, 0, 255, 0})
	if err != nil {
		t.Fatal(err)
	}
	h := header.Header{ColorType: header.Palette, BitDepth: 8, Channels: 1, BytesPerSample: 1}
	dst := New(2, 1)
	UnpackRow([]byte{0, 1}, h, &pal, 2, dst, 0, 1, 0)
	if dst.Pix[0] != 255 || dst.Pix[1] != 0 || dst.Pix[2] != 0 || dst.Pix[3] != 255 {
		t.Fatalf("pixel0 = %v", dst.Pix[0:4])
	}
	if dst.Pix[4] != 0 || dst.Pix[5] != 255 || dst.Pix[6] != 0 || dst.Pix[7] != 255 {
		t.Fatalf("pixel1 = %v", dst.Pix[4:8])
	}
}

func TestScatterWithStride(t *testing.T) {
	h := header.Header{ColorType: header.Grayscale, BitDepth: 8, Channels: 1, BytesPerSample: 1}
	dst := New(4, 1)
	// two samples scattered at x=1 and x=3 (x0=1, stride=2), as an Adam7
	// pass would.
	UnpackRow([]byte{9, 99}, h, nil, 2, dst, 1, 2, 0)
	if dst.Pix[1*4] != 9 {
		t.Fatalf("x=1 gray = %d, want 9", dst.Pix[1*4])
	}
	if dst.Pix[3*4] != 99 {
		t.Fatalf("x=3 gray = %d, want 99", dst.Pix[3*4])
	}
	if dst.Pix[0*4] != 0 || dst.Pix[2*4] != 0 {
		t.Fatalf("untouched columns should stay zero")
	}
}
