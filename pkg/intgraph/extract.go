package intgraph

import (
	"errors"
	"image"

	"github.com/StefanJo3107/Interference-Graph/internal/log"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/models"
	"github.com/StefanJo3107/Interference-Graph/pkg/intgraph/sampler"
)

// Extract decodes the image at path and returns its normalized column signal.
func Extract(path string, ch models.Channel, opts Options) (*models.Signal, error) {
	img, err := opts.decoder().Decode(path)
	if err != nil {
		return nil, NewStageError("decode", path, err)
	}
	b := img.Bounds()
	log.Debugw("decoded image", "path", path, "width", b.Dx(), "height", b.Dy())

	sig, err := ExtractImage(img, ch, opts)
	if err != nil {
		var se *StageError
		if errors.As(err, &se) {
			se.Path = path
		}
		return nil, err
	}
	return sig, nil
}

// ExtractImage samples the configured column of img, selects ch and
// normalizes the result. An unknown channel yields an empty signal.
func ExtractImage(img image.Image, ch models.Channel, opts Options) (*models.Signal, error) {
	column, rows := opts.SampleColumn(), opts.SampleRows()

	samples, err := sampler.SampleColumn(img, column, rows, ch)
	if err != nil {
		return nil, NewStageError("sample", "", err)
	}
	if !ch.Known() {
		log.Warnw("unknown channel selects nothing", "channel", string(ch))
	}

	sig := sampler.BuildSignal(samples, column, ch, opts.Scale())
	if err := sampler.Normalize(sig, opts.FlatPolicy()); err != nil {
		return nil, NewStageError("normalize", "", err)
	}
	log.Infow("extracted signal", "channel", string(ch), "column", column, "points", sig.Len())
	return sig, nil
}
