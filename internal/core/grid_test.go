package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(5, 4)
	cases := []struct{ x, y, wantX, wantY int }{
		{0, 0, 0, 0},
		{5, 4, 0, 0},
		{-1, -1, 4, 3},
		{7, -6, 2, 2},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wantX || y != c.wantY {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wantX, c.wantY)
		}
	}
}

func TestGridAtWrapsAround(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Cells()[g.Index(2, 2)] = 7
	if got := g.At(-1, -1); got != 7 {
		t.Fatalf("At(-1,-1) = %d, want 7", got)
	}

	f := NewFloatGrid(3, 3)
	f.Cells()[f.Index(0, 0)] = 0.25
	if got := f.At(3, 3); got != 0.25 {
		t.Fatalf("At(3,3) = %v, want 0.25", got)
	}
}
