package convo

// Sampler is a read accessor over a rectangular data domain. It stands in
// for one channel of the data being filtered, decoupling the convolution
// engine from the caller's storage representation.
//
// A sampler must return a finite value for every coordinate inside the
// domain handed to [Kernel.Apply]; the engine never samples outside it.
type Sampler interface {
	Sample(x, y int) float64
}

// SamplerFunc adapts an ordinary function to the [Sampler] interface.
type SamplerFunc func(x, y int) float64

// Sample implements [Sampler].
func (f SamplerFunc) Sample(x, y int) float64 {
	return f(x, y)
}

// Memoize evaluates src once for every coordinate in [0,width) x [0,height)
// and returns the results as a [Grid].
//
// A convolution samples each domain coordinate up to kernelWidth *
// kernelHeight times. When the sampler derives its value per call (for
// example a per-pixel brightness computed from three channels), memoizing
// before the convolution avoids repeating that work.
func Memoize(src Sampler, width, height int) *Grid {
	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.Set(x, y, src.Sample(x, y))
		}
	}
	return g
}
