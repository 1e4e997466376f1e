// Package ocr wraps the on-host text recognition engine behind a
// capability-checked adapter. The engine is optional: constrained deploys
// run without tesseract installed, and the adapter reports that as a
// distinct Unavailable status rather than an empty recognition, so callers
// can route users to file import or manual entry instead of claiming the
// photo contained no classes.
package ocr

import (
	"context"
	"image"
)

// Status tags an extraction result.
type Status string

const (
	// StatusOK means the engine ran; RawText/Blocks hold whatever it found
	// (possibly nothing).
	StatusOK Status = "ok"
	// StatusUnavailable means the engine could not run at all. Callers must
	// branch to a fallback input path, not report zero classes.
	StatusUnavailable Status = "unavailable"
)

// TextBlock is one positioned block of recognized text.
type TextBlock struct {
	Text        string          `json:"text"`
	BoundingBox image.Rectangle `json:"bounding_box"`
	Confidence  float64         `json:"confidence"`
}

// Extraction is the adapter's result. When Status is StatusUnavailable,
// RawText is empty and Blocks is empty; ImagePath is always echoed back.
type Extraction struct {
	Status    Status      `json:"status"`
	RawText   string      `json:"raw_text"`
	Blocks    []TextBlock `json:"blocks"`
	ImagePath string      `json:"image_path"`
}

// Recognition is the raw engine output before adaptation.
type Recognition struct {
	Text   string
	Blocks []TextBlock
}

// Engine is the text recognition capability. Implementations may be absent
// at runtime; the adapter owns availability checking.
type Engine interface {
	// Available reports whether the engine can run on this host.
	Available() bool
	// Recognize runs text recognition on the image at the given path.
	Recognize(ctx context.Context, imagePath string) (Recognition, error)
}
