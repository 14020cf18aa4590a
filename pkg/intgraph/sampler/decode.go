// Package sampler reads a pixel column out of a raster image and turns it
// into a normalized signal.
package sampler

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"os"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// ErrImageDecode indicates the input could not be opened or decoded as an image.
var ErrImageDecode = errors.New("image decode failure")

// Decoder turns a path into a decoded image.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (image.Image, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (image.Image, error) {
	return f(path)
}

// FileDecoder decodes images from the filesystem using the registered
// formats (PNG, JPEG, GIF, BMP, TIFF, WebP).
type FileDecoder struct{}

// Decode opens and decodes the image at path.
func (FileDecoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, path, err)
	}
	return img, nil
}
