package sampler

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

// ErrOutOfBounds indicates the sampled column does not fit inside the image.
var ErrOutOfBounds = errors.New("sample out of bounds")

// SampleColumn reads rows pixels downward from the top of the given column
// and returns the selected channel value of each.
// Offsets are relative to the image's bounds origin.
// An unknown channel yields no samples, but the geometry is still checked.
func SampleColumn(img image.Image, column, rows int, ch models.Channel) ([]models.Sample, error) {
	if column < 0 || rows < 0 {
		return nil, fmt.Errorf("%w: column %d, rows %d", ErrOutOfBounds, column, rows)
	}
	b := img.Bounds()
	if b.Dx() <= column || b.Dy() < rows {
		return nil, fmt.Errorf("%w: column %d x %d rows does not fit %dx%d image",
			ErrOutOfBounds, column, rows, b.Dx(), b.Dy())
	}
	if !ch.Known() {
		return nil, nil
	}

	samples := make([]models.Sample, 0, rows)
	x := b.Min.X + column
	for i := 0; i < rows; i++ {
		px := color.NRGBAModel.Convert(img.At(x, b.Min.Y+i)).(color.NRGBA)
		v, _ := ch.Value(px)
		samples = append(samples, models.Sample{Index: i, Intensity: v})
	}
	return samples, nil
}

// BuildSignal maps samples onto plot coordinates: X is the row index scaled
// by xScale and Y is the raw intensity.
func BuildSignal(samples []models.Sample, column int, ch models.Channel, xScale float64) *models.Signal {
	points := make([]models.Point, 0, len(samples))
	for _, s := range samples {
		points = append(points, models.Point{
			X: float64(s.Index) * xScale,
			Y: float64(s.Intensity),
		})
	}
	return &models.Signal{
		Channel: ch,
		Column:  column,
		Points:  points,
	}
}
