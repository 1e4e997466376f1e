package ocr

import (
	"context"

	"github.com/rs/zerolog"
)

// Adapter exposes the engine behind a never-fails contract: ExtractText
// returns a tagged Extraction and will not propagate engine errors or
// panics to the caller.
type Adapter struct {
	engine Engine
	log    zerolog.Logger
}

// NewAdapter creates an Adapter around the given engine. A nil engine is a
// supported state and yields StatusUnavailable for every call.
func NewAdapter(engine Engine, log zerolog.Logger) *Adapter {
	a := &Adapter{
		engine: engine,
		log:    log.With().Str("component", "ocr_adapter").Logger(),
	}
	if engine == nil || !engine.Available() {
		a.log.Warn().Msg("Text recognition engine unavailable, photo import disabled")
	}
	return a
}

// Available reports whether text recognition can run on this host.
func (a *Adapter) Available() bool {
	return a.engine != nil && a.engine.Available()
}

// ExtractText runs text recognition on the image at imagePath. The result is
// bimodal: StatusOK with whatever the engine found, or StatusUnavailable
// with empty text when the engine is absent or raised an error. It never
// returns an error to the caller.
func (a *Adapter) ExtractText(ctx context.Context, imagePath string) Extraction {
	unavailable := Extraction{
		Status:    StatusUnavailable,
		RawText:   "",
		Blocks:    []TextBlock{},
		ImagePath: imagePath,
	}

	if !a.Available() {
		return unavailable
	}

	rec, err := a.engine.Recognize(ctx, imagePath)
	if err != nil {
		a.log.Error().Err(err).Str("image", imagePath).Msg("Recognition failed")
		return unavailable
	}

	blocks := rec.Blocks
	if blocks == nil {
		blocks = []TextBlock{}
	}

	return Extraction{
		Status:    StatusOK,
		RawText:   rec.Text,
		Blocks:    blocks,
		ImagePath: imagePath,
	}
}
