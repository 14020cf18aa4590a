// Package intgraph extracts a brightness signal from one pixel column of an
// image and plots it.
package intgraph

import (
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/render"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/sampler"
)

const (
	// DefaultColumn is the sampled horizontal offset.
	DefaultColumn = 7
	// DefaultRowCount is the number of rows sampled from the top.
	DefaultRowCount = 440
	// DefaultXScale maps a row index to a plot X unit.
	DefaultXScale = 0.265
	// DefaultInputDir is where source images are looked up by name.
	DefaultInputDir = "images"
	// DefaultOutputPath is where the plot is written.
	DefaultOutputPath = "images/plot.png"
)

// Options configures extraction and rendering.
type Options struct {
	// Column is the sampled horizontal offset.
	// If nil, defaults to DefaultColumn.
	Column *int
	// RowCount is the number of rows to sample. Zero means DefaultRowCount.
	RowCount int
	// XScale maps row index to X. Zero means DefaultXScale.
	XScale float64
	// Flat decides how a zero-range signal is handled. Empty means FlatError.
	Flat sampler.FlatPolicy
	// Decoder loads source images. Nil means sampler.FileDecoder.
	Decoder sampler.Decoder
	// Backend draws the chart. Nil means render.GoChart.
	Backend render.Backend
}

// DefaultOptions returns the options of the original plotting setup.
func DefaultOptions() Options {
	column := DefaultColumn
	return Options{
		Column:   &column,
		RowCount: DefaultRowCount,
		XScale:   DefaultXScale,
		Flat:     sampler.FlatError,
	}
}

// SampleColumn returns the column to sample.
func (o Options) SampleColumn() int {
	if o.Column != nil {
		return *o.Column
	}
	return DefaultColumn
}

// SampleRows returns the number of rows to sample.
func (o Options) SampleRows() int {
	if o.RowCount > 0 {
		return o.RowCount
	}
	return DefaultRowCount
}

// Scale returns the row-to-X scale factor.
func (o Options) Scale() float64 {
	if o.XScale > 0 {
		return o.XScale
	}
	return DefaultXScale
}

// FlatPolicy returns the zero-range policy.
func (o Options) FlatPolicy() sampler.FlatPolicy {
	if o.Flat == "" {
		return sampler.FlatError
	}
	return o.Flat
}

func (o Options) decoder() sampler.Decoder {
	if o.Decoder != nil {
		return o.Decoder
	}
	return sampler.FileDecoder{}
}

func (o Options) backend() render.Backend {
	if o.Backend != nil {
		return o.Backend
	}
	return render.GoChart{}
}
