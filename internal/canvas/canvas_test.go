package canvas

import "testing"

func TestSetDepthOrdering(t *testing.T) {
	tests := []struct {
		name       string
		firstDepth float64
		thenDepth  float64
		wantGlyph  rune
	}{
		{"nearer wins", 1.0, 2.0, 'b'},
		{"farther loses", 2.0, 1.0, 'a'},
		{"tie goes to later writer", 1.0, 1.0, 'b'},
	}

	for _, tt := range tests {
		b := New(4, 4)
		b.Set(1, 1, 'a', RGB{255, 0, 0}, RGB{}, tt.firstDepth)
		b.Set(1, 1, 'b', RGB{0, 255, 0}, RGB{}, tt.thenDepth)

		cell, ok := b.At(1, 1)
		if !ok || !cell.Painted {
			t.Fatalf("%s: cell not painted", tt.name)
		}
		if cell.Glyph != tt.wantGlyph {
			t.Errorf("%s: glyph = %q, want %q", tt.name, cell.Glyph, tt.wantGlyph)
		}
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	b := New(3, 3)
	// None of these should panic or paint anything
	b.Set(-1, 0, 'x', RGB{}, RGB{}, 1)
	b.Set(0, -1, 'x', RGB{}, RGB{}, 1)
	b.Set(3, 0, 'x', RGB{}, RGB{}, 1)
	b.Set(0, 3, 'x', RGB{}, RGB{}, 1)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if cell, _ := b.At(x, y); cell.Painted {
				t.Errorf("cell (%d,%d) unexpectedly painted", x, y)
			}
		}
	}
	if _, ok := b.At(5, 5); ok {
		t.Error("At(5,5) should report out of bounds")
	}
}

func TestResizeClears(t *testing.T) {
	b := New(4, 4)
	b.Set(0, 0, 'x', RGB{}, RGB{}, 1)
	b.Resize(2, 2)
	if b.Width() != 2 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 2x2", b.Width(), b.Height())
	}
	if cell, _ := b.At(0, 0); cell.Painted {
		t.Error("resize should clear painted cells")
	}
}

func TestResizeNegativeDimensionsClamp(t *testing.T) {
	b := New(4, 4)
	b.Resize(-3, -2)
	if b.Width() != 0 || b.Height() != 0 {
		t.Fatalf("size = %dx%d, want 0x0", b.Width(), b.Height())
	}
	// A zero-size buffer still accepts (and ignores) writes.
	b.Set(0, 0, 'x', RGB{}, RGB{}, 1)
	if _, ok := b.At(0, 0); ok {
		t.Error("At(0,0) should report out of bounds on an empty buffer")
	}

	b.Resize(2, -1)
	if b.Width() != 2 || b.Height() != 0 {
		t.Fatalf("size = %dx%d, want 2x0", b.Width(), b.Height())
	}
}

func TestRGBHelpers(t *testing.T) {
	if got := Clamp8(-5); got != 0 {
		t.Errorf("Clamp8(-5) = %d, want 0", got)
	}
	if got := Clamp8(300); got != 255 {
		t.Errorf("Clamp8(300) = %d, want 255", got)
	}

	a := RGB{0, 100, 200}
	bcol := RGB{100, 200, 255}
	mid := a.Lerp(bcol, 0.5)
	if mid.R != 50 || mid.G != 150 {
		t.Errorf("Lerp midpoint = %+v", mid)
	}
	if a.Lerp(bcol, -1) != a || a.Lerp(bcol, 2) != bcol {
		t.Error("Lerp should clamp t to [0,1]")
	}

	if got := (RGB{200, 200, 200}).Add(RGB{100, 100, 100}); got.R != 255 {
		t.Errorf("Add should clamp, got %+v", got)
	}
	if got := (RGB{100, 100, 100}).Scale(3); got.R != 255 {
		t.Errorf("Scale should clamp, got %+v", got)
	}
}
