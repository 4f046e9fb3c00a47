package adam7

import "testing"

func TestSubImageDims8x8(t *testing.T) {
	// An 8x8 image: each pass should get exactly the row/col it expects,
	// summing back to the full 64 pixels across all seven passes.
	total := 0
	for _, p := range Passes {
		w, h := SubImageDims(8, 8, p)
		total += w * h
	}
	if total != 64 {
		t.Fatalf("sum of pass pixel counts = %d, want 64", total)
	}
}

func TestSubImageDimsSmallImageSkipsPasses(t *testing.T) {
	// A 1x1 image: only pass 1 (start 0,0 stride 8,8) covers pixel (0,0).
	nonEmpty := 0
	for _, p := range Passes {
		w, h := SubImageDims(1, 1, p)
		if w > 0 && h > 0 {
			nonEmpty++
		}
	}
	if nonEmpty != 1 {
		t.Fatalf("non-empty passes for 1x1 image = %d, want 1", nonEmpty)
	}
}

func TestSubImageDimsCeilDivision(t *testing.T) {
	w, h := SubImageDims(9, 9, Passes[0]) // start 0,0 stride 8,8
	if w != 2 || h != 2 {
		t.Fatalf("pass1 dims for 9x9 = %dx%d, want 2x2", w, h)
	}
}
