//go:build !darwin && cgo

package ocr

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

const tesseractLanguage = "eng"

type tesseractRecognizer struct {
	logger *slog.Logger
}

// New returns a Tesseract backed recognizer.
func New(logger *slog.Logger) (Recognizer, error) {
	return &tesseractRecognizer{logger: logger}, nil
}

func (r *tesseractRecognizer) Revision() string {
	return "Tesseract " + gosseract.Version()
}

func (r *tesseractRecognizer) Recognize(
	ctx context.Context,
	img image.Image,
	opts Options,
) ([]Observation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	dir, err := os.MkdirTemp("", "macocr-tesseract-*")
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}
	defer os.RemoveAll(dir)

	client := gosseract.NewClient()
	defer client.Close()

	configPath, err := writeTesseractConfig(dir, opts)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}
	if configPath != "" {
		if err := client.SetConfigFile(configPath); err != nil {
			return nil, fmt.Errorf("tesseract: set config file: %w", err)
		}
	}

	if err := client.SetLanguage(tesseractLanguage); err != nil {
		return nil, fmt.Errorf("tesseract: set language: %w", err)
	}

	if err := client.SetPageSegMode(gosseract.PSM_AUTO); err != nil {
		return nil, fmt.Errorf("tesseract: set page segmentation mode: %w", err)
	}

	if opts.Level == LevelFast {
		// Skips the second pass over inverted text.
		if err := client.SetVariable(gosseract.SettableVariable("tessedit_do_invert"), "0"); err != nil {
			return nil, fmt.Errorf("tesseract: set variable: %w", err)
		}
	}

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("tesseract: set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}

	lines := make([]textLine, 0, len(boxes))
	for _, box := range boxes {
		lines = append(lines, textLine{
			Box:        box.Box,
			Text:       box.Word,
			Confidence: float64(box.Confidence),
		})
	}

	bounds := img.Bounds()
	observations := lineObservations(lines, bounds.Dx(), bounds.Dy(), opts)
	r.logger.Debug("tesseract request completed",
		"lines", len(boxes),
		"observations", len(observations),
	)

	return observations, nil
}

// writeTesseractConfig writes the custom word list and config file into dir.
// It returns an empty path when no init-only variable needs to be set.
func writeTesseractConfig(dir string, opts Options) (string, error) {
	var wordsPath string
	if len(opts.CustomWords) > 0 {
		wordsPath = filepath.Join(dir, "user.words")
		words := strings.Join(opts.CustomWords, "\n") + "\n"
		if err := os.WriteFile(wordsPath, []byte(words), 0o600); err != nil {
			return "", fmt.Errorf("write custom words: %w", err)
		}
	}

	lines := tesseractConfig(opts, wordsPath)
	if len(lines) == 0 {
		return "", nil
	}

	configPath := filepath.Join(dir, "macocr.config")
	if err := os.WriteFile(configPath, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}

	return configPath, nil
}
