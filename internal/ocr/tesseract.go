//go:build cgo

package ocr

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine recognizes text with libtesseract via gosseract.
type TesseractEngine struct {
	language  string
	available bool
}

// NewTesseractEngine probes for a usable tesseract installation. enabled=false
// (config) short-circuits the probe; the engine then reports unavailable
// without touching the host.
func NewTesseractEngine(language string, enabled bool) *TesseractEngine {
	e := &TesseractEngine{language: language}
	if enabled {
		e.available = probeTesseract()
	}
	return e
}

// Available reports whether the probe succeeded.
func (e *TesseractEngine) Available() bool {
	return e.available
}

// Recognize runs tesseract over the image, returning full text plus
// line-level blocks with bounding boxes and confidence.
func (e *TesseractEngine) Recognize(ctx context.Context, imagePath string) (Recognition, error) {
	if err := ctx.Err(); err != nil {
		return Recognition{}, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return Recognition{}, fmt.Errorf("set language %q: %w", e.language, err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return Recognition{}, fmt.Errorf("set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return Recognition{}, fmt.Errorf("recognize text: %w", err)
	}

	rec := Recognition{Text: text}

	// Block extraction is best-effort; the raw text alone is enough for the
	// structurer.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err == nil {
		for _, b := range boxes {
			rec.Blocks = append(rec.Blocks, TextBlock{
				Text:        b.Word,
				BoundingBox: b.Box,
				Confidence:  b.Confidence,
			})
		}
	}

	return rec, nil
}

// probeTesseract checks for the tesseract runtime. gosseract links
// libtesseract at build time, but language data and the install are host
// state, so presence of the CLI is used as the availability signal.
func probeTesseract() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}
