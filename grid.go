package convo

// Grid is a rectangular buffer of real values addressed by (x, y).
// The shape is fixed at construction; values are stored contiguously in
// row-major order.
//
// Grid implements [Sampler], so a convolution result can be fed straight
// into another convolution.
type Grid struct {
	width  int
	height int
	data   []float64
}

// NewGrid creates a zero-filled grid with the given dimensions.
// Non-positive dimensions yield an empty grid.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		width:  width,
		height: height,
		data:   make([]float64, width*height),
	}
}

// Width returns the width of the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid.
func (g *Grid) Height() int {
	return g.height
}

// At returns the value at (x, y). Out-of-range positions read as 0.
func (g *Grid) At(x, y int) float64 {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return 0
	}
	return g.data[y*g.width+x]
}

// Set stores v at (x, y). Out-of-range positions are ignored.
func (g *Grid) Set(x, y int, v float64) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.data[y*g.width+x] = v
}

// Fill sets every cell to v.
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Data returns the raw backing slice in row-major order.
func (g *Grid) Data() []float64 {
	return g.data
}

// Sample implements [Sampler].
func (g *Grid) Sample(x, y int) float64 {
	return g.At(x, y)
}
