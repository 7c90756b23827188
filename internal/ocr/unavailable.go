//go:build !darwin && !cgo

package ocr

import (
	"fmt"
	"log/slog"
)

// New reports ErrUnavailable; Tesseract needs cgo.
func New(_ *slog.Logger) (Recognizer, error) {
	return nil, fmt.Errorf("%w: rebuild with CGO_ENABLED=1 and Tesseract installed", ErrUnavailable)
}
