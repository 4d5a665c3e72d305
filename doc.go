// Package convo provides a 2D convolution kernel for filtering sampled
// grid data, most commonly image channels.
//
// # Overview
//
// The central type is [Kernel]: a fixed-shape matrix of real weights with a
// designated anchor cell. A kernel is slid over every position of a caller
// supplied data domain, computing a weighted sum of the neighborhood at each
// position. The data itself is never handed to the kernel; instead the
// caller provides a [Sampler], a read accessor mapping a coordinate to a
// numeric value. This keeps the engine independent of how the data is
// stored (a flat buffer, a derived table, or a live resource).
//
// # Quick Start
//
//	import "github.com/lucasbarrosxd/convo"
//
//	// 3x3 box blur kernel with a centered anchor.
//	k, err := convo.New([][]float64{
//		{0, 1, 0},
//		{1, 0, 1},
//		{0, 1, 0},
//	})
//	if err != nil {
//		// ...
//	}
//
//	// Convolve over a 640x480 domain, averaging by the kernel sum and
//	// substituting 0 for neighbors outside the domain.
//	out := k.Apply(src, 640, 480, k.Sum(), 0)
//
// # Border handling
//
// Neighbors that fall outside the domain are replaced by a caller chosen
// constant (the fill value). There is no clamping to the nearest in-domain
// sample and no wraparound.
//
// # Concurrency
//
// [Kernel.Apply] is pure and safe to call from multiple goroutines.
// [Kernel.ApplyParallel] distributes output rows across a worker pool; it
// requires the sampler to be safe for concurrent reads. Mutating a kernel
// (cell or anchor writes) is not synchronized and must be serialized
// externally if the kernel is shared.
//
// The filter subpackage applies ready-made kernels (blur, sharpen, edge
// detection, embossing) to images.
package convo
