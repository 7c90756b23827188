package ocr

import (
	"image"
	"strings"
)

// textLine is a Tesseract text line in pixel coordinates.
type textLine struct {
	Box        image.Rectangle
	Text       string
	Confidence float64 // 0-100
}

// tesseractConfig returns config file lines for init-only Tesseract
// variables. wordsPath is empty when no custom words are given.
func tesseractConfig(opts Options, wordsPath string) []string {
	var lines []string
	if !opts.LanguageCorrection {
		lines = append(lines, "load_system_dawg F", "load_freq_dawg F")
	}
	if wordsPath != "" {
		lines = append(lines, "user_words_file "+wordsPath)
	}
	return lines
}

// lineObservations converts text lines found in a w x h image. Blank lines
// and lines shorter than opts.MinTextHeight are dropped.
func lineObservations(lines []textLine, w, h int, opts Options) []Observation {
	observations := make([]Observation, 0, len(lines))
	for _, l := range lines {
		text := strings.TrimSpace(l.Text)
		if text == "" {
			continue
		}

		rect := NormalizeRect(l.Box, w, h)
		if opts.MinTextHeight != nil && rect.Height < float64(*opts.MinTextHeight) {
			continue
		}

		observations = append(observations, Observation{
			Candidates: []Candidate{
				{Text: text, Confidence: float32(l.Confidence / 100)},
			},
			BoundingBox: rect,
		})
	}
	return observations
}
