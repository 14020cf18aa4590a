package sampler

import (
	"image"
	"image/color"
)

// gradientImage returns a w x h image whose red channel at row y is y mod 256
// and whose green channel is constant.
func gradientImage(w, h int, green uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(y % 256), G: green, B: 9, A: 255})
		}
	}
	return img
}
