//go:build !cgo

package ocr

import (
	"context"
	"errors"
)

// TesseractEngine is the no-cgo stand-in: gosseract links libtesseract via
// cgo, so builds with CGO_ENABLED=0 cannot carry the real engine. The stub
// always reports unavailable, which the adapter surfaces as
// StatusUnavailable.
type TesseractEngine struct{}

// NewTesseractEngine returns the stub engine; language and enabled are
// accepted for signature compatibility but have no effect without cgo.
func NewTesseractEngine(language string, enabled bool) *TesseractEngine {
	return &TesseractEngine{}
}

// Available always reports false in no-cgo builds.
func (e *TesseractEngine) Available() bool {
	return false
}

// Recognize always fails in no-cgo builds.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string) (Recognition, error) {
	return Recognition{}, errors.New("tesseract engine unavailable: built without cgo")
}
