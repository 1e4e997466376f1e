package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

type stubEngine struct {
	available bool
	rec       Recognition
	err       error
}

func (s *stubEngine) Available() bool { return s.available }

func (s *stubEngine) Recognize(ctx context.Context, imagePath string) (Recognition, error) {
	return s.rec, s.err
}

func TestExtractTextEngineAbsent(t *testing.T) {
	// Property: when the capability is absent the adapter returns an empty
	// tagged result with the path echoed back, and never an error.
	for name, adapter := range map[string]*Adapter{
		"nil engine":         NewAdapter(nil, zerolog.Nop()),
		"unavailable engine": NewAdapter(&stubEngine{available: false}, zerolog.Nop()),
	} {
		t.Run(name, func(t *testing.T) {
			got := adapter.ExtractText(context.Background(), "file:///tmp/schedule.jpg")

			if got.Status != StatusUnavailable {
				t.Errorf("status = %q, want unavailable", got.Status)
			}
			if got.RawText != "" {
				t.Errorf("raw_text = %q, want empty", got.RawText)
			}
			if got.Blocks == nil || len(got.Blocks) != 0 {
				t.Errorf("blocks = %v, want empty non-nil slice", got.Blocks)
			}
			if got.ImagePath != "file:///tmp/schedule.jpg" {
				t.Errorf("image_path = %q, want input echoed", got.ImagePath)
			}
		})
	}
}

func TestExtractTextEngineError(t *testing.T) {
	engine := &stubEngine{available: true, err: errors.New("libtesseract crashed")}
	adapter := NewAdapter(engine, zerolog.Nop())

	got := adapter.ExtractText(context.Background(), "/tmp/pic.png")
	if got.Status != StatusUnavailable {
		t.Errorf("status = %q, want unavailable on engine error", got.Status)
	}
	if got.RawText != "" || len(got.Blocks) != 0 {
		t.Errorf("engine error must yield empty result, got %+v", got)
	}
}

func TestExtractTextSuccess(t *testing.T) {
	engine := &stubEngine{
		available: true,
		rec: Recognition{
			Text:   "CS 201 Data Structures",
			Blocks: []TextBlock{{Text: "CS 201 Data Structures", Confidence: 91.5}},
		},
	}
	adapter := NewAdapter(engine, zerolog.Nop())

	got := adapter.ExtractText(context.Background(), "/tmp/pic.png")
	if got.Status != StatusOK {
		t.Fatalf("status = %q, want ok", got.Status)
	}
	if got.RawText != "CS 201 Data Structures" {
		t.Errorf("raw_text = %q", got.RawText)
	}
	if len(got.Blocks) != 1 || got.Blocks[0].Confidence != 91.5 {
		t.Errorf("blocks = %+v", got.Blocks)
	}
}

func TestExtractTextNilBlocksNormalized(t *testing.T) {
	engine := &stubEngine{available: true, rec: Recognition{Text: "hello"}}
	adapter := NewAdapter(engine, zerolog.Nop())

	got := adapter.ExtractText(context.Background(), "/tmp/pic.png")
	if got.Blocks == nil {
		t.Error("blocks must be an empty slice, not nil")
	}
}
