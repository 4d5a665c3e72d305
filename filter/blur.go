package filter

import "image"

// BoxBlur returns a blurred copy of src using a 3x3 cross-shaped box
// kernel. Each pixel becomes the average of its four direct neighbors;
// neighbors outside the image count as black, so edge pixels come out
// slightly darkened.
func BoxBlur(src image.Image) (*image.NRGBA, error) {
	img, err := prepare(src, "box blur")
	if err != nil {
		return nil, err
	}

	k := mustKernel([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, 1, 1)

	// Dividing by the kernel sum turns the summing kernel into an average.
	return convolveRGB(img, k, k.Sum(), clampByte), nil
}

// GaussianBlur returns a blurred copy of src using a 3x3 Gaussian
// approximation kernel. Compared to BoxBlur the center pixel dominates,
// giving a softer falloff. Neighbors outside the image count as black.
func GaussianBlur(src image.Image) (*image.NRGBA, error) {
	img, err := prepare(src, "gaussian blur")
	if err != nil {
		return nil, err
	}

	k := mustKernel([][]float64{
		{1, 2, 1},
		{2, 4, 2},
		{1, 2, 1},
	}, 1, 1)

	return convolveRGB(img, k, k.Sum(), clampByte), nil
}
