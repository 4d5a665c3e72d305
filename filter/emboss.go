package filter

import "image"

// Emboss returns an embossed copy of src, giving it a stamped-metal look.
// The kernel takes a directional difference across each pixel, producing
// per-channel results in [-765, 765] which are mapped linearly into
// [0, 255]; flat regions land on middle gray.
func Emboss(src image.Image) (*image.NRGBA, error) {
	img, err := prepare(src, "emboss")
	if err != nil {
		return nil, err
	}

	k := mustKernel([][]float64{
		{0, 1, 1},
		{-1, 0, 1},
		{-1, -1, 0},
	}, 1, 1)

	return convolveRGB(img, k, 1, func(v float64) uint8 {
		return clampByte((v + 765) / 6)
	}), nil
}
