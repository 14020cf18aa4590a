// Package render draws a normalized signal onto the fixed plot layout and
// writes it out as a PNG.
package render

import (
	"io"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

// Backend draws points onto a canvas described by layout and encodes the
// result to w. Points are already clipped to the layout's domains.
type Backend interface {
	Draw(layout models.Chart, points []models.Point, w io.Writer) error
}
