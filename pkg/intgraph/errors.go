package intgraph

import (
	"errors"
	"fmt"

	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/render"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/sampler"
)

// ErrMissingArgument indicates a required command-line argument was not given.
var ErrMissingArgument = errors.New("missing argument")

// ErrImageDecode indicates the input is not a readable image.
var ErrImageDecode = sampler.ErrImageDecode

// ErrOutOfBounds indicates the sampled column does not fit the image.
var ErrOutOfBounds = sampler.ErrOutOfBounds

// ErrDegenerateSignal indicates all sampled values are equal.
var ErrDegenerateSignal = sampler.ErrDegenerateSignal

// ErrIOFailure indicates the plot could not be written.
var ErrIOFailure = render.ErrIOFailure

// ErrDrawFailure indicates the chart backend failed.
var ErrDrawFailure = render.ErrDrawFailure

// StageError represents a failure in one pipeline stage.
type StageError struct {
	Stage string // "decode", "sample", "normalize", "render"
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}

// MissingArgument reports a required argument that was not supplied.
func MissingArgument(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}
