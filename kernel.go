package convo

import "fmt"

// Kernel is a convolution kernel: a fixed-shape matrix of real weights with
// a designated anchor cell. The shape is immutable after construction;
// individual weights and the anchor may be reassigned in place.
//
// The anchor identifies which kernel cell nominally aligns with the current
// output position. It is validated against the matrix bounds at all times,
// but the sliding-window offset used by [Kernel.Apply] is always computed
// from the kernel's geometric center, not from the anchor (see Apply).
type Kernel struct {
	width   int
	height  int
	anchorX int
	anchorY int
	weights []float64 // row-major, width*height
}

// New creates a kernel from a rectangular matrix of weights, addressed as
// matrix[y][x], with a centered anchor. Both dimensions must be odd; a
// matrix with an even dimension has no center cell and construction fails
// with [ErrAnchorUndetermined].
//
// The matrix is deep-copied: later mutation of the caller's slices does not
// affect the kernel.
func New(matrix [][]float64) (*Kernel, error) {
	width, height, err := matrixShape(matrix)
	if err != nil {
		return nil, err
	}
	if width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrAnchorUndetermined, width, height)
	}
	return newKernel(matrix, width, height, (width-1)/2, (height-1)/2), nil
}

// NewAnchored creates a kernel from a rectangular matrix of weights,
// addressed as matrix[y][x], with an explicit anchor at (ax, ay). The
// anchor must lie inside the matrix, else construction fails with
// [ErrAnchorOutOfRange].
//
// The matrix is deep-copied, as with [New].
func NewAnchored(matrix [][]float64, ax, ay int) (*Kernel, error) {
	width, height, err := matrixShape(matrix)
	if err != nil {
		return nil, err
	}
	if ax < 0 || ax >= width || ay < 0 || ay >= height {
		return nil, fmt.Errorf("%w: anchor (%d, %d), matrix %dx%d", ErrAnchorOutOfRange, ax, ay, width, height)
	}
	return newKernel(matrix, width, height, ax, ay), nil
}

// matrixShape validates that matrix is non-empty and rectangular and
// returns its dimensions.
func matrixShape(matrix [][]float64) (width, height int, err error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return 0, 0, ErrEmptyMatrix
	}
	width = len(matrix[0])
	height = len(matrix)
	for y, row := range matrix[1:] {
		if len(row) != width {
			return 0, 0, fmt.Errorf("%w: row 0 has %d columns, row %d has %d", ErrRaggedMatrix, width, y+1, len(row))
		}
	}
	return width, height, nil
}

// newKernel copies matrix into kernel-owned storage. Shape and anchor are
// assumed validated.
func newKernel(matrix [][]float64, width, height, ax, ay int) *Kernel {
	weights := make([]float64, width*height)
	for y, row := range matrix {
		copy(weights[y*width:(y+1)*width], row)
	}
	return &Kernel{
		width:   width,
		height:  height,
		anchorX: ax,
		anchorY: ay,
		weights: weights,
	}
}

// Width returns the number of kernel columns.
func (k *Kernel) Width() int {
	return k.width
}

// Height returns the number of kernel rows.
func (k *Kernel) Height() int {
	return k.height
}

// Anchor returns the current anchor position.
func (k *Kernel) Anchor() (x, y int) {
	return k.anchorX, k.anchorY
}

// SetAnchor moves the anchor to (x, y). The position is validated against
// the kernel shape before anything changes: on [ErrAnchorOutOfRange] the
// previous anchor remains in place.
func (k *Kernel) SetAnchor(x, y int) error {
	if x < 0 || x >= k.width || y < 0 || y >= k.height {
		return fmt.Errorf("%w: anchor (%d, %d), matrix %dx%d", ErrAnchorOutOfRange, x, y, k.width, k.height)
	}
	k.anchorX = x
	k.anchorY = y
	return nil
}

// At returns the weight at (x, y), or [ErrIndexOutOfRange] if the position
// lies outside the matrix.
func (k *Kernel) At(x, y int) (float64, error) {
	if x < 0 || x >= k.width || y < 0 || y >= k.height {
		return 0, fmt.Errorf("%w: (%d, %d), matrix %dx%d", ErrIndexOutOfRange, x, y, k.width, k.height)
	}
	return k.weights[y*k.width+x], nil
}

// Set replaces the weight at (x, y), or returns [ErrIndexOutOfRange] if the
// position lies outside the matrix. A failed Set leaves the kernel
// untouched.
func (k *Kernel) Set(x, y int, v float64) error {
	if x < 0 || x >= k.width || y < 0 || y >= k.height {
		return fmt.Errorf("%w: (%d, %d), matrix %dx%d", ErrIndexOutOfRange, x, y, k.width, k.height)
	}
	k.weights[y*k.width+x] = v
	return nil
}

// Sum returns the total of all kernel weights. Passing the sum as the
// weight argument of [Kernel.Apply] turns a summing kernel into an
// averaging one.
func (k *Kernel) Sum() float64 {
	var total float64
	for _, v := range k.weights {
		total += v
	}
	return total
}

// Apply convolves the kernel over the domain [0,width) x [0,height),
// reading values through src and returning a newly allocated grid of the
// same dimensions.
//
// For each output position, every kernel cell is mapped to a source
// coordinate offset by the kernel's geometric center ((width-1)/2,
// (height-1)/2 of the kernel). Note that this offset deliberately ignores
// the anchor: a kernel with a non-centered anchor convolves exactly like
// one with a centered anchor.
//
// Source coordinates inside the domain are read through src; coordinates
// outside it contribute fill instead. The weighted sum at each position is
// divided by weight. Pass weight 1 for a plain weighted sum, or
// [Kernel.Sum] for a weighted average; weight must be non-zero.
//
// Apply never mutates the kernel and never samples outside the domain. It
// is a pure function of its inputs: repeated calls with the same arguments
// produce identical grids.
func (k *Kernel) Apply(src Sampler, width, height int, weight, fill float64) *Grid {
	out := NewGrid(width, height)
	k.applyRows(src, out, 0, out.height, weight, fill)
	return out
}

// applyRows convolves output rows [y0, y1) into out. Each output cell is
// written exactly once, so disjoint row bands may run concurrently as long
// as src is safe for concurrent reads.
func (k *Kernel) applyRows(src Sampler, out *Grid, y0, y1 int, weight, fill float64) {
	offX := (k.width - 1) / 2
	offY := (k.height - 1) / 2

	for oy := y0; oy < y1; oy++ {
		for ox := 0; ox < out.width; ox++ {
			var total float64

			for ky := 0; ky < k.height; ky++ {
				sy := oy + ky - offY
				for kx := 0; kx < k.width; kx++ {
					sx := ox + kx - offX
					w := k.weights[ky*k.width+kx]

					if sx >= 0 && sx < out.width && sy >= 0 && sy < out.height {
						total += src.Sample(sx, sy) * w
					} else {
						total += fill * w
					}
				}
			}

			out.data[oy*out.width+ox] = total / weight
		}
	}
}
