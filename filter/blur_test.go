package filter

import (
	"image/color"
	"testing"
)

func TestBoxBlurUniform(t *testing.T) {
	// Channel values divisible by 4 so the border averages are exact.
	c := color.NRGBA{R: 100, G: 160, B: 200, A: 255}
	out, err := BoxBlur(uniform(8, 8, c))
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}

	// Interior: 4 neighbors in domain, (4*v)/4 = v.
	if got := out.NRGBAAt(4, 4); got != c {
		t.Errorf("interior = %v, want %v", got, c)
	}

	// Corner: 2 of 4 neighbors in domain, (2*v)/4 = v/2.
	wantCorner := color.NRGBA{R: 50, G: 80, B: 100, A: 255}
	if got := out.NRGBAAt(0, 0); got != wantCorner {
		t.Errorf("corner = %v, want %v", got, wantCorner)
	}

	// Edge midpoint: 3 of 4 neighbors in domain, (3*v)/4.
	wantEdge := color.NRGBA{R: 75, G: 120, B: 150, A: 255}
	if got := out.NRGBAAt(4, 0); got != wantEdge {
		t.Errorf("edge = %v, want %v", got, wantEdge)
	}
}

func TestGaussianBlurUniform(t *testing.T) {
	c := color.NRGBA{R: 96, G: 160, B: 224, A: 255}
	out, err := GaussianBlur(uniform(8, 8, c))
	if err != nil {
		t.Fatalf("GaussianBlur() error = %v", err)
	}

	// Interior: full kernel in domain, (16*v)/16 = v.
	if got := out.NRGBAAt(4, 4); got != c {
		t.Errorf("interior = %v, want %v", got, c)
	}

	// Corner: surviving weights are 4+2+2+1 = 9 of 16, so (9*v)/16.
	wantCorner := color.NRGBA{R: 54, G: 90, B: 126, A: 255}
	if got := out.NRGBAAt(0, 0); got != wantCorner {
		t.Errorf("corner = %v, want %v", got, wantCorner)
	}
}

func TestBoxBlurLargeImageParallelPath(t *testing.T) {
	// 80x80 crosses the fan-out threshold; the parallel path must give
	// the same uniform-interior invariant as the sequential one.
	c := color.NRGBA{R: 100, G: 160, B: 200, A: 255}
	out, err := BoxBlur(uniform(80, 80, c))
	if err != nil {
		t.Fatalf("BoxBlur() error = %v", err)
	}

	for y := 1; y < 79; y++ {
		for x := 1; x < 79; x++ {
			if got := out.NRGBAAt(x, y); got != c {
				t.Fatalf("interior (%d, %d) = %v, want %v", x, y, got, c)
			}
		}
	}
}
