// Command convodemo applies a convolution filter to a PNG image.
//
// Usage:
//
//	convodemo -input photo.png -filter emboss -output embossed.png
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/draw"

	"github.com/lucasbarrosxd/convo"
	"github.com/lucasbarrosxd/convo/filter"
)

// filters maps the -filter flag values to their implementations.
var filters = map[string]func(image.Image) (*image.NRGBA, error){
	"edge":     filter.EdgeDetect,
	"box":      filter.BoxBlur,
	"gaussian": filter.GaussianBlur,
	"sharpen":  filter.Sharpen,
	"emboss":   filter.Emboss,
}

func main() {
	var (
		input   = flag.String("input", "", "input PNG file")
		output  = flag.String("output", "out.png", "output PNG file")
		name    = flag.String("filter", "box", "filter to apply: edge, box, gaussian, sharpen, emboss")
		scale   = flag.Float64("scale", 1.0, "rescale factor applied before filtering")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *verbose {
		convo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	apply, ok := filters[*name]
	if !ok {
		log.Fatalf("Unknown filter %q", *name)
	}

	img, err := loadPNG(*input)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *input, err)
	}

	if *scale > 0 && *scale != 1.0 {
		img = rescale(img, *scale)
	}

	result, err := apply(img)
	if err != nil {
		log.Fatalf("Failed to apply %s: %v", *name, err)
	}

	if err := savePNG(*output, result); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	b := result.Bounds()
	log.Printf("Saved %s to %s (%dx%d)\n", *name, *output, b.Dx(), b.Dy())
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, img)
}

// rescale resizes img by factor using Catmull-Rom resampling.
func rescale(img image.Image, factor float64) image.Image {
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
