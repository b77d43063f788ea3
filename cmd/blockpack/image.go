package main

import (
	"image/color"
	"image/png"
	"os"

	"github.com/pkg/errors"
)

// grayPlane is a flat, row-major grayscale sample plane, one float64
// per pixel in [0, 255].
type grayPlane struct {
	pix           []float64
	width, height int
}

func (p *grayPlane) at(x, y int) float64 {
	// Edge-replicate past the image bounds so the last row/column of
	// blocks in a non-multiple-of-4 image still gets a well-defined
	// value instead of an artificial hard edge at zero.
	if x < 0 {
		x = 0
	}
	if x >= p.width {
		x = p.width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= p.height {
		y = p.height - 1
	}
	return p.pix[y*p.width+x]
}

func loadGrayPlane(path string) (*grayPlane, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rect := img.Bounds()
	width, height := rect.Dx(), rect.Dy()
	pix := make([]float64, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(rect.Min.X+x, rect.Min.Y+y)
			r, g, b, _ := c.RGBA()
			gray := color.GrayModel.Convert(color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xFFFF}).(color.Gray)
			pix[y*width+x] = float64(gray.Y)
		}
	}
	return &grayPlane{pix: pix, width: width, height: height}, nil
}
