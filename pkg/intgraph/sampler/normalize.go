package sampler

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/StefanJo3107/Interference-Graph/internal/log"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

// ErrDegenerateSignal indicates every sample has the same value, so the
// signal has no range to normalize against.
var ErrDegenerateSignal = errors.New("degenerate signal")

// FlatPolicy decides what Normalize does with a zero-range signal.
type FlatPolicy string

const (
	// FlatError rejects a zero-range signal with ErrDegenerateSignal.
	FlatError FlatPolicy = "error"
	// FlatMidpoint places every point of a zero-range signal at 0.5.
	FlatMidpoint FlatPolicy = "midpoint"
)

// ParseFlatPolicy validates a policy name. The empty string selects FlatError.
func ParseFlatPolicy(s string) (FlatPolicy, error) {
	switch FlatPolicy(s) {
	case "", FlatError:
		return FlatError, nil
	case FlatMidpoint:
		return FlatMidpoint, nil
	default:
		return "", fmt.Errorf("invalid flat policy: %s (must be error or midpoint)", s)
	}
}

// Normalize rescales Y in place so the minimum maps to 0 and the maximum to 1.
// An empty signal is left as is.
func Normalize(sig *models.Signal, policy FlatPolicy) error {
	if sig.Len() == 0 {
		return nil
	}
	ys := sig.YValues()
	lo, hi := floats.Min(ys), floats.Max(ys)
	log.Debugw("normalizing signal", "points", len(ys), "min", lo, "max", hi, "mean", stat.Mean(ys, nil))

	if hi == lo {
		switch policy {
		case FlatMidpoint:
			for i := range sig.Points {
				sig.Points[i].Y = 0.5
			}
			return nil
		default:
			return fmt.Errorf("%w: all %d samples equal %g", ErrDegenerateSignal, len(ys), lo)
		}
	}

	span := hi - lo
	for i := range sig.Points {
		// Divide per point so the maximum lands on exactly 1.
		sig.Points[i].Y = (sig.Points[i].Y - lo) / span
	}
	return nil
}
