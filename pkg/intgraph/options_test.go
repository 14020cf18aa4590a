package intgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/render"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/sampler"
)

func TestOptionsDefaults(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		column int
		rows   int
		scale  float64
		flat   sampler.FlatPolicy
	}{
		{"zero value", Options{}, 7, 440, 0.265, sampler.FlatError},
		{"defaults", DefaultOptions(), 7, 440, 0.265, sampler.FlatError},
		{"explicit column zero", Options{Column: intPtr(0), RowCount: 3, XScale: 1, Flat: sampler.FlatMidpoint}, 0, 3, 1, sampler.FlatMidpoint},
		{"negative rows fall back", Options{RowCount: -4, XScale: -1}, 7, 440, 0.265, sampler.FlatError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.column, tt.opts.SampleColumn(), tt.name)
		assert.Equal(t, tt.rows, tt.opts.SampleRows(), tt.name)
		assert.Equal(t, tt.scale, tt.opts.Scale(), tt.name)
		assert.Equal(t, tt.flat, tt.opts.FlatPolicy(), tt.name)
	}
}

func TestOptionsCollaborators(t *testing.T) {
	var opts Options
	assert.IsType(t, sampler.FileDecoder{}, opts.decoder())
	assert.IsType(t, render.GoChart{}, opts.backend())
}

func intPtr(v int) *int { return &v }
