// Package ocr submits decoded images to the host text recognizer.
//
// On macOS the recognizer is Vision's VNRecognizeTextRequest. Other platforms
// built with cgo use Tesseract through gosseract. Builds without either
// backend return ErrUnavailable from New.
package ocr

import (
	"context"
	"errors"
	"image"
)

// ErrUnavailable is returned by New when no recognizer was compiled in.
var ErrUnavailable = errors.New("text recognition is not available in this build")

// Level selects the recognition path.
type Level int

const (
	LevelAccurate Level = iota
	LevelFast
)

func (l Level) String() string {
	switch l {
	case LevelAccurate:
		return "accurate"
	case LevelFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Options configures a single recognition request.
type Options struct {
	Level              Level
	LanguageCorrection bool

	// MinTextHeight is the minimum text height relative to the image height.
	// Nil leaves the recognizer default in place.
	MinTextHeight *float32

	// CustomWords supplements the recognizer's vocabulary. Order is kept.
	CustomWords []string
}

// Candidate is one interpretation of an observed text region.
type Candidate struct {
	Text       string
	Confidence float32
}

// Observation is one recognized text region. Candidates are ordered best
// first and may be empty.
type Observation struct {
	Candidates  []Candidate
	BoundingBox Rect
}

// Top returns the highest confidence candidate.
func (o Observation) Top() (Candidate, bool) {
	if len(o.Candidates) == 0 {
		return Candidate{}, false
	}
	return o.Candidates[0], true
}

// Recognizer performs text recognition on a single image.
type Recognizer interface {
	// Revision identifies the recognition algorithm in use.
	Revision() string

	// Recognize blocks until the request completes. Observations are
	// returned in the order the recognizer produced them.
	Recognize(ctx context.Context, img image.Image, opts Options) ([]Observation, error)
}
