package intgraph

import (
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/render"
)

// Render plots sig onto the default chart layout and writes it to outputPath.
func Render(sig *models.Signal, outputPath string, opts Options) error {
	if err := render.WriteFile(opts.backend(), models.DefaultChart(), sig, outputPath); err != nil {
		return NewStageError("render", outputPath, err)
	}
	return nil
}

// Run extracts the signal of ch from the image at inputPath and writes the
// plot to outputPath. Any stage failure aborts the run.
func Run(inputPath, outputPath string, ch models.Channel, opts Options) error {
	sig, err := Extract(inputPath, ch, opts)
	if err != nil {
		return err
	}
	return Render(sig, outputPath, opts)
}
