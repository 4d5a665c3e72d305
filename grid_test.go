package convo

import "testing"

func TestGridBasic(t *testing.T) {
	g := NewGrid(3, 2)

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("NewGrid(3, 2) = %dx%d", g.Width(), g.Height())
	}
	if len(g.Data()) != 6 {
		t.Fatalf("Data() len = %d, want 6", len(g.Data()))
	}

	g.Set(2, 1, 4.5)
	if got := g.At(2, 1); got != 4.5 {
		t.Errorf("At(2, 1) = %v, want 4.5", got)
	}
	if got := g.At(0, 0); got != 0 {
		t.Errorf("At(0, 0) = %v, want 0", got)
	}
}

func TestGridOutOfRange(t *testing.T) {
	g := NewGrid(2, 2)
	g.Fill(7)

	// Reads outside the grid return 0, writes are dropped.
	for _, c := range []struct{ x, y int }{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := g.At(c.x, c.y); got != 0 {
			t.Errorf("At(%d, %d) = %v, want 0", c.x, c.y, got)
		}
		g.Set(c.x, c.y, 99)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := g.At(x, y); got != 7 {
				t.Errorf("At(%d, %d) = %v after out-of-range writes, want 7", x, y, got)
			}
		}
	}
}

func TestGridNonPositiveDimensions(t *testing.T) {
	g := NewGrid(-3, 5)
	if g.Width() != 0 {
		t.Errorf("Width() = %d, want 0", g.Width())
	}
	if got := g.At(0, 0); got != 0 {
		t.Errorf("At(0, 0) = %v, want 0", got)
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid(4, 4)
	g.Fill(-2.5)
	for _, v := range g.Data() {
		if v != -2.5 {
			t.Fatalf("Fill left value %v, want -2.5", v)
		}
	}
}

func TestGridIsSampler(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(1, 0, 3)

	var s Sampler = g
	if got := s.Sample(1, 0); got != 3 {
		t.Errorf("Sample(1, 0) = %v, want 3", got)
	}
}
