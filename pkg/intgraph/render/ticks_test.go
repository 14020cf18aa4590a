package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

func TestTicksDefaultAxes(t *testing.T) {
	x := Ticks(0, 120, 15, "%g")
	require.Len(t, x, 13)
	for i, tick := range x {
		assert.InDelta(t, float64(i*10), tick.Value, 1e-9)
	}
	assert.Equal(t, "0", x[0].Label)
	assert.Equal(t, "120", x[12].Label)

	y := Ticks(0, 1.01, 5, "%.3f")
	labels := make([]string, len(y))
	for i, tick := range y {
		labels[i] = tick.Label
	}
	assert.Equal(t, []string{"0.000", "0.250", "0.500", "0.750", "1.000"}, labels)
}

func TestTicksLimit(t *testing.T) {
	tests := []struct {
		min, max  float64
		maxLabels int
	}{
		{0, 120, 15},
		{0, 120, 2},
		{0, 1.01, 5},
		{-3, 7, 4},
		{0.001, 0.002, 6},
		{100, 1e6, 8},
	}

	for _, tt := range tests {
		ticks := Ticks(tt.min, tt.max, tt.maxLabels, "%g")
		require.NotEmpty(t, ticks, "%v", tt)
		assert.LessOrEqual(t, len(ticks), tt.maxLabels, "%v", tt)
		for i, tick := range ticks {
			assert.GreaterOrEqual(t, tick.Value, tt.min-1e-9, "%v", tt)
			assert.LessOrEqual(t, tick.Value, tt.max+1e-9, "%v", tt)
			if i > 0 {
				assert.Greater(t, tick.Value, ticks[i-1].Value, "%v", tt)
			}
		}
	}
}

func TestTicksInvalid(t *testing.T) {
	assert.Nil(t, Ticks(0, 1, 1, "%g"))
	assert.Nil(t, Ticks(1, 1, 5, "%g"))
	assert.Nil(t, Ticks(2, 1, 5, "%g"))
	assert.Nil(t, Ticks(math.NaN(), 1, 5, "%g"))
	assert.Nil(t, Ticks(0, math.Inf(1), 5, "%g"))
}

func TestDomainTicksPinsAxisEnds(t *testing.T) {
	layout := models.DefaultChart()

	y := DomainTicks(layout.YRange, layout.YLabels, layout.YLabelFormat)
	require.NotEmpty(t, y)
	assert.InDelta(t, 0, y[0].Value, 1e-9)
	assert.InDelta(t, 1.01, y[len(y)-1].Value, 1e-9)
	assert.Empty(t, y[len(y)-1].Label, "edge tick is unlabelled")

	labelled := 0
	for _, tick := range y {
		if tick.Label != "" {
			labelled++
		}
	}
	assert.Equal(t, 5, labelled)

	// 0..120 in steps of 10 already reaches both ends.
	x := DomainTicks(layout.XRange, layout.XLabels, layout.XLabelFormat)
	assert.Equal(t, Ticks(0, 120, 15, "%g"), x)
}

func TestDomainTicksEdges(t *testing.T) {
	ticks := DomainTicks(models.Range{Min: 0.05, Max: 1.4}, 5, "%.1f")
	require.GreaterOrEqual(t, len(ticks), 3)
	assert.Equal(t, 0.05, ticks[0].Value)
	assert.Empty(t, ticks[0].Label)
	assert.Equal(t, 1.4, ticks[len(ticks)-1].Value)
	assert.Empty(t, ticks[len(ticks)-1].Label)

	assert.Equal(t, []chart.Tick{{Value: 0}, {Value: 1}}, DomainTicks(models.Range{Min: 0, Max: 1}, 1, "%g"))
	assert.Nil(t, DomainTicks(models.Range{Min: 1, Max: 1}, 5, "%g"))
	assert.Nil(t, DomainTicks(models.Range{Min: math.NaN(), Max: 1}, 5, "%g"))
}
