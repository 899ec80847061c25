package raster

import "testing"

func TestGridSetPixelOutOfBoundsIsNoop(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetPixel(-1, 0, Color{1, 1, 1})
	g.SetPixel(0, -1, Color{1, 1, 1})
	g.SetPixel(4, 0, Color{1, 1, 1})
	g.SetPixel(0, 4, Color{1, 1, 1})
	for _, b := range g.Bytes() {
		if b != 0 {
			t.Fatalf("expected untouched grid, got non-zero byte %d", b)
		}
	}
}

func TestGridBytesLength(t *testing.T) {
	g := NewGrid(3, 5)
	if got, want := len(g.Bytes()), 4*3*5; got != want {
		t.Errorf("len(Bytes()) = %d, want %d", got, want)
	}
}

func TestGridBytesAlphaAlwaysOpaque(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetPixel(0, 0, Color{1, 0, 0})
	b := g.Bytes()
	for i := 3; i < len(b); i += 4 {
		if b[i] != 255 {
			t.Errorf("alpha byte at pixel %d = %d, want 255", i/4, b[i])
		}
	}
}

func fillWith(g *Grid, v byte) {
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			g.Set(i, j, [4]byte{v, v, v, 255})
		}
	}
}

func TestDisplaceAboveBelow(t *testing.T) {
	g := NewGrid(4, 2)
	fillWith(g, 1)

	strip := NewGrid(1, 2)
	fillWith(strip, 9)

	g.DisplaceAbove(strip)
	if g.Get(0, 0) != [4]byte{9, 9, 9, 255} {
		t.Fatalf("row 0 not replaced by strip: %v", g.Get(0, 0))
	}
	if g.Get(1, 0) != [4]byte{1, 1, 1, 255} {
		t.Fatalf("row 1 should hold old row 0: %v", g.Get(1, 0))
	}
	if g.Get(3, 0) != [4]byte{1, 1, 1, 255} {
		t.Fatalf("row 3 should hold old row 2: %v", g.Get(3, 0))
	}

	g2 := NewGrid(4, 2)
	fillWith(g2, 1)
	g2.DisplaceBelow(strip)
	if g2.Get(3, 0) != [4]byte{9, 9, 9, 255} {
		t.Fatalf("last row not replaced by strip: %v", g2.Get(3, 0))
	}
	if g2.Get(2, 0) != [4]byte{1, 1, 1, 255} {
		t.Fatalf("row 2 should hold old row 3: %v", g2.Get(2, 0))
	}
}

func TestDisplaceLeftRight(t *testing.T) {
	g := NewGrid(2, 4)
	fillWith(g, 1)

	strip := NewGrid(2, 1)
	fillWith(strip, 9)

	g.DisplaceLeft(strip)
	if g.Get(0, 0) != [4]byte{9, 9, 9, 255} {
		t.Fatalf("col 0 not replaced: %v", g.Get(0, 0))
	}
	if g.Get(0, 1) != [4]byte{1, 1, 1, 255} {
		t.Fatalf("col 1 should hold old col 0: %v", g.Get(0, 1))
	}

	g2 := NewGrid(2, 4)
	fillWith(g2, 1)
	g2.DisplaceRight(strip)
	if g2.Get(0, 3) != [4]byte{9, 9, 9, 255} {
		t.Fatalf("last col not replaced: %v", g2.Get(0, 3))
	}
}

func TestDisplaceDimensionMismatchPanics(t *testing.T) {
	g := NewGrid(4, 4)
	bad := NewGrid(1, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on column mismatch")
		}
	}()
	g.DisplaceAbove(bad)
}
