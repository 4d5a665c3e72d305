package filter

import "image"

// Sharpen returns a sharpened copy of src. The kernel amplifies each pixel
// and subtracts its four direct neighbors, exaggerating local contrast.
// Results outside display range are clamped to [0, 255].
func Sharpen(src image.Image) (*image.NRGBA, error) {
	img, err := prepare(src, "sharpen")
	if err != nil {
		return nil, err
	}

	k := mustKernel([][]float64{
		{0, -1, 0},
		{-1, 5, -1},
		{0, -1, 0},
	}, 1, 1)

	return convolveRGB(img, k, 1, clampByte), nil
}
