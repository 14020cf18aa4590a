package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

// tickSteps are the preferred multipliers of a power of ten.
var tickSteps = []float64{1, 2, 2.5, 5}

// Ticks returns evenly spaced ticks inside [min, max] at a 1, 2, 2.5 or 5
// times power-of-ten step, using the smallest step that keeps the tick count
// at or below maxLabels. Labels are produced with format.
func Ticks(min, max float64, maxLabels int, format string) []chart.Tick {
	if maxLabels < 2 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max <= min {
		return nil
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(maxLabels-1))))

	step := 0.0
	for m := mag; step == 0; m *= 10 {
		for _, c := range tickSteps {
			if tickCount(min, max, c*m) <= maxLabels {
				step = c * m
				break
			}
		}
	}

	first := math.Ceil(min/step - 1e-9)
	n := tickCount(min, max, step)
	ticks := make([]chart.Tick, 0, n)
	for i := 0; i < n; i++ {
		v := (first + float64(i)) * step
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}
	return ticks
}

// tickCount is the number of multiples of step inside [min, max].
func tickCount(min, max, step float64) int {
	lo := math.Ceil(min/step - 1e-9)
	hi := math.Floor(max/step + 1e-9)
	if hi < lo {
		return 0
	}
	return int(hi-lo) + 1
}

// DomainTicks returns the labelled Ticks of r plus unlabelled ticks at r.Min
// and r.Max where the labelled ones stop short. go-chart stretches an axis
// with explicit ticks to exactly its outermost ticks, so these pin the axis
// to the full domain.
func DomainTicks(r models.Range, maxLabels int, format string) []chart.Tick {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || r.Max <= r.Min {
		return nil
	}
	eps := (r.Max - r.Min) * 1e-9
	labelled := Ticks(r.Min, r.Max, maxLabels, format)

	ticks := make([]chart.Tick, 0, len(labelled)+2)
	if len(labelled) == 0 || labelled[0].Value > r.Min+eps {
		ticks = append(ticks, chart.Tick{Value: r.Min})
	}
	ticks = append(ticks, labelled...)
	if len(labelled) == 0 || labelled[len(labelled)-1].Value < r.Max-eps {
		ticks = append(ticks, chart.Tick{Value: r.Max})
	}
	return ticks
}
