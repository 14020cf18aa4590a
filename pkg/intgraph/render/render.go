package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/StefanJo3107/Interference-Graph/internal/log"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
)

// ErrIOFailure indicates the output file could not be written.
var ErrIOFailure = errors.New("output write failure")

// ErrDrawFailure indicates the backend failed to draw the chart.
var ErrDrawFailure = errors.New("chart draw failure")

// Clip returns the points inside the layout's axis domains, in order.
func Clip(layout models.Chart, points []models.Point) []models.Point {
	visible := make([]models.Point, 0, len(points))
	for _, p := range points {
		if layout.Contains(p) {
			visible = append(visible, p)
		}
	}
	return visible
}

// WriteFile draws sig with backend and writes the image to path, replacing
// any existing file. The image is staged in a temporary file in the same
// directory and renamed into place, so a failed run leaves no output behind.
func WriteFile(backend Backend, layout models.Chart, sig *models.Signal, path string) error {
	var points []models.Point
	if sig != nil {
		points = sig.Points
	}
	visible := Clip(layout, points)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	tmpName := tmp.Name()
	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	if err := backend.Draw(layout, visible, tmp); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrDrawFailure, err))
	}
	if err := tmp.Chmod(0644); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrIOFailure, err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %w", ErrIOFailure, err)
	}

	log.Infow("wrote plot", "path", path, "points", len(visible), "clipped", len(points)-len(visible))
	return nil
}
