package render

import (
	"fmt"
	"image/color"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

// meshColor is the grid line color.
var meshColor = drawing.Color{R: 220, G: 220, B: 220, A: 255}

// GoChart renders with github.com/wcharczuk/go-chart.
type GoChart struct{}

// Draw renders a scatter chart of points as PNG.
func (GoChart) Draw(layout models.Chart, points []models.Point, w io.Writer) error {
	mesh := chart.Style{StrokeColor: meshColor, StrokeWidth: 1}
	background := toDrawing(layout.Background)
	yTicks := DomainTicks(layout.YRange, layout.YLabels, layout.YLabelFormat)

	series := []chart.Series{frameSeries(layout)}
	if len(points) > 0 {
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i], ys[i] = p.X, p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    "signal",
			XValues: xs,
			YValues: ys,
			YAxis:   chart.YAxisSecondary,
			Style:   markerStyle(layout),
		})
	}

	ch := chart.Chart{
		Width:  layout.Width,
		Height: layout.Height,
		Background: chart.Style{
			FillColor: background,
			Padding: chart.Box{
				Top:    layout.MarginTop,
				Left:   layout.YLabelArea,
				Right:  layout.MarginRight,
				Bottom: layout.XLabelArea,
			},
		},
		Canvas: chart.Style{FillColor: background},
		XAxis: chart.XAxis{
			Range:          &chart.ContinuousRange{Min: layout.XRange.Min, Max: layout.XRange.Max},
			Ticks:          DomainTicks(layout.XRange, layout.XLabels, layout.XLabelFormat),
			ValueFormatter: labelFormatter(layout.XLabelFormat),
			GridMajorStyle: mesh,
			GridMinorStyle: mesh,
		},
		// go-chart puts the secondary Y axis on the left; the primary one
		// stays hidden. go-chart reads the secondary range from the primary
		// axis ticks, so both carry the same ones.
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: layout.YRange.Min, Max: layout.YRange.Max},
			Ticks: yTicks,
		},
		YAxisSecondary: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: layout.YRange.Min, Max: layout.YRange.Max},
			Ticks:          yTicks,
			ValueFormatter: labelFormatter(layout.YLabelFormat),
			GridMajorStyle: mesh,
			GridMinorStyle: mesh,
		},
		Series: series,
	}
	return ch.Render(chart.PNG, w)
}

// markerStyle draws filled dots without connecting lines.
func markerStyle(layout models.Chart) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    layout.MarkerRadius,
		DotColor:    toDrawing(layout.MarkerColor),
	}
}

// frameSeries spans the domain corners so go-chart always has a visible
// series, including when no point is inside the domains. It has neither
// stroke nor dots, so nothing is drawn.
func frameSeries(layout models.Chart) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    "frame",
		XValues: []float64{layout.XRange.Min, layout.XRange.Max},
		YValues: []float64{layout.YRange.Min, layout.YRange.Max},
		YAxis:   chart.YAxisSecondary,
		Style:   chart.Style{StrokeWidth: chart.Disabled},
	}
}

func labelFormatter(format string) chart.ValueFormatter {
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return fmt.Sprintf(format, f)
		}
		return fmt.Sprint(v)
	}
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
