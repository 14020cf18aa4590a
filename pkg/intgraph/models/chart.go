package models

import "image/color"

// Range is a closed numeric interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Chart describes the fixed plot layout a signal is rendered into.
type Chart struct {
	// Width is the canvas width in pixels.
	Width int `json:"width"`
	// Height is the canvas height in pixels.
	Height int `json:"height"`
	// XRange is the X axis domain.
	XRange Range `json:"x_range"`
	// YRange is the Y axis domain. The top is slightly above 1 so a
	// normalized maximum does not touch the border.
	YRange Range `json:"y_range"`
	// XLabels is the maximum number of X tick labels.
	XLabels int `json:"x_labels"`
	// YLabels is the maximum number of Y tick labels.
	YLabels int `json:"y_labels"`
	// XLabelFormat is the fmt verb used for X tick labels.
	XLabelFormat string `json:"x_label_format"`
	// YLabelFormat is the fmt verb used for Y tick labels.
	YLabelFormat string `json:"y_label_format"`
	// XLabelArea is the space reserved below the X axis.
	XLabelArea int `json:"x_label_area"`
	// YLabelArea is the space reserved left of the Y axis.
	YLabelArea int `json:"y_label_area"`
	// MarginTop is the space above the plot area.
	MarginTop int `json:"margin_top"`
	// MarginRight is the space right of the plot area.
	MarginRight int `json:"margin_right"`
	// MarkerRadius is the radius of each point marker.
	MarkerRadius float64 `json:"marker_radius"`
	// MarkerColor is the marker fill.
	MarkerColor color.RGBA `json:"-"`
	// Background is the canvas fill.
	Background color.RGBA `json:"-"`
}

// DefaultChart returns the 1000x300 layout used for every plot.
func DefaultChart() Chart {
	return Chart{
		Width:        1000,
		Height:       300,
		XRange:       Range{Min: 0, Max: 120},
		YRange:       Range{Min: 0, Max: 1.01},
		XLabels:      15,
		YLabels:      5,
		XLabelFormat: "%g",
		YLabelFormat: "%.3f",
		XLabelArea:   30,
		YLabelArea:   40,
		MarginTop:    10,
		MarginRight:  5,
		MarkerRadius: 3,
		MarkerColor:  color.RGBA{R: 255, A: 255},
		Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Contains reports whether p lies inside both axis domains.
func (c Chart) Contains(p Point) bool {
	return c.XRange.Contains(p.X) && c.YRange.Contains(p.Y)
}
