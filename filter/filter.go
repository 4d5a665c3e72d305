// Package filter applies convolution-based image filters: blurs, sharpen,
// edge detection, and embossing.
//
// Each filter builds a [convo.Kernel] with filter-specific weights,
// convolves it over one or more channels of the source image, and
// recomposes the numeric results into an NRGBA image. The alpha channel is
// always carried over from the source unmodified.
package filter

import (
	"errors"
	"image"
	"image/draw"
	"runtime"

	"github.com/lucasbarrosxd/convo"
)

// ErrNilImage reports a nil source image.
var ErrNilImage = errors.New("filter: nil source image")

// parallelThreshold is the pixel count above which a channel convolution
// fans out across GOMAXPROCS workers. Below it the fixed cost of the pool
// outweighs the convolution itself.
const parallelThreshold = 64 * 64

// prepare normalizes src into an origin-aligned NRGBA buffer so channel
// samplers can read raw bytes instead of going through color.Color per
// sample. Channel values stay non-premultiplied.
func prepare(src image.Image, name string) (*image.NRGBA, error) {
	if src == nil {
		return nil, ErrNilImage
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)

	convo.Logger().Debug("filter: apply",
		"filter", name, "width", b.Dx(), "height", b.Dy())

	return img, nil
}

// channel returns a sampler over one byte channel of img.
// offset selects the channel: 0=R, 1=G, 2=B, 3=A.
func channel(img *image.NRGBA, offset int) convo.SamplerFunc {
	pix := img.Pix
	stride := img.Stride
	return func(x, y int) float64 {
		return float64(pix[y*stride+x*4+offset])
	}
}

// applyChannel convolves one channel, in parallel when the domain is large
// enough to pay for the fan-out. Both paths produce identical grids.
func applyChannel(k *convo.Kernel, src convo.Sampler, width, height int, weight float64) *convo.Grid {
	if width*height >= parallelThreshold {
		return k.ApplyParallel(src, width, height, weight, 0, runtime.GOMAXPROCS(0))
	}
	return k.Apply(src, width, height, weight, 0)
}

// convolveRGB convolves each of the R, G and B channels of img with k,
// maps every result value through post, and recomposes the channels with
// the source alpha.
func convolveRGB(img *image.NRGBA, k *convo.Kernel, weight float64, post func(float64) uint8) *image.NRGBA {
	w := img.Rect.Dx()
	h := img.Rect.Dy()

	outR := applyChannel(k, channel(img, 0), w, h, weight)
	outG := applyChannel(k, channel(img, 1), w, h, weight)
	outB := applyChannel(k, channel(img, 2), w, h, weight)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*dst.Stride + x*4
			dst.Pix[i+0] = post(outR.At(x, y))
			dst.Pix[i+1] = post(outG.At(x, y))
			dst.Pix[i+2] = post(outB.At(x, y))
			dst.Pix[i+3] = img.Pix[y*img.Stride+x*4+3]
		}
	}
	return dst
}

// mustKernel builds a kernel from static filter weights. The weight tables
// in this package are rectangular with in-range anchors, so construction
// cannot fail.
func mustKernel(matrix [][]float64, ax, ay int) *convo.Kernel {
	k, err := convo.NewAnchored(matrix, ax, ay)
	if err != nil {
		panic(err)
	}
	return k
}

// clampByte clamps v to [0, 255] and truncates to a byte.
func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
