package convo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyParallelMatchesApply(t *testing.T) {
	k, err := New([][]float64{{1, 2, 1}, {2, 4, 2}, {1, 2, 1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	src := SamplerFunc(func(x, y int) float64 {
		return float64((x*131 + y*17) % 255)
	})

	const w, h = 64, 48
	want := k.Apply(src, w, h, k.Sum(), 0)

	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		got := k.ApplyParallel(src, w, h, k.Sum(), 0, workers)
		if diff := cmp.Diff(want.Data(), got.Data()); diff != "" {
			t.Errorf("ApplyParallel(workers=%d) differs from Apply (-want +got):\n%s", workers, diff)
		}
	}
}

func TestApplyParallelSmallDomain(t *testing.T) {
	// Domains below the fan-out threshold run sequentially but must
	// produce the same result shape.
	k, err := New([][]float64{{1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	src := SamplerFunc(func(x, y int) float64 { return float64(y) })

	out := k.ApplyParallel(src, 3, 2, 1, 0, 4)
	if out.Width() != 3 || out.Height() != 2 {
		t.Fatalf("output = %dx%d, want 3x2", out.Width(), out.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := out.At(x, y); got != float64(y) {
				t.Errorf("out.At(%d, %d) = %v, want %v", x, y, got, float64(y))
			}
		}
	}
}

func TestApplyParallelNonZeroFill(t *testing.T) {
	ones, err := New([][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const c = 12.0
	src := SamplerFunc(func(x, y int) float64 { return c })

	want := ones.Apply(src, 40, 40, 9, c)
	got := ones.ApplyParallel(src, 40, 40, 9, c, 4)

	if diff := cmp.Diff(want.Data(), got.Data()); diff != "" {
		t.Errorf("ApplyParallel differs from Apply (-want +got):\n%s", diff)
	}
}
