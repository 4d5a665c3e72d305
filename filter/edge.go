package filter

import (
	"image"
	"math"

	"github.com/lucasbarrosxd/convo"
)

// EdgeDetect returns a grayscale image highlighting brightness edges in
// src. Pixel brightness (the mean of R, G and B) is convolved with a
// gradient kernel; the result, which lies in [-510, 510], is mapped to gray
// as |v|/2. The alpha channel is carried over from the source.
func EdgeDetect(src image.Image) (*image.NRGBA, error) {
	img, err := prepare(src, "edge detect")
	if err != nil {
		return nil, err
	}

	w := img.Rect.Dx()
	h := img.Rect.Dy()

	k := mustKernel([][]float64{
		{0, -1, 0},
		{-1, 0, 1},
		{0, 1, 0},
	}, 1, 1)

	// The convolution reads each pixel up to nine times; memoize the
	// derived brightness rather than averaging three channels per read.
	brightness := convo.Memoize(convo.SamplerFunc(func(x, y int) float64 {
		i := y*img.Stride + x*4
		return (float64(img.Pix[i]) + float64(img.Pix[i+1]) + float64(img.Pix[i+2])) / 3
	}), w, h)

	out := applyChannel(k, brightness, w, h, 1)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*dst.Stride + x*4
			v := clampByte(math.Abs(out.At(x, y)) / 2)
			dst.Pix[i+0] = v
			dst.Pix[i+1] = v
			dst.Pix[i+2] = v
			dst.Pix[i+3] = img.Pix[y*img.Stride+x*4+3]
		}
	}
	return dst, nil
}
