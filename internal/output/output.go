// Package output renders recognized text as plain text or JSON and writes it
// to its destination.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"

	"code.selman.me/macocr/internal/ocr"
)

type Format int

const (
	FormatPlain Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "plain"
}

// Render formats observations recognized in a width x height image.
func Render(format Format, observations []ocr.Observation, width, height int) string {
	if format == FormatJSON {
		return JSON(observations, width, height)
	}
	return Plain(observations)
}

// Plain joins the top candidate of each observation with newlines.
// Observations without a candidate contribute an empty line.
func Plain(observations []ocr.Observation) string {
	lines := make([]string, 0, len(observations))
	for _, o := range observations {
		c, _ := o.Top()
		lines = append(lines, c.Text)
	}
	return strings.Join(lines, "\n")
}

// JSON renders observations as a JSON array with keys in the order
// txt, x, y, w, h, conf. Coordinates are pixels with a top-left origin.
// Observations without a candidate are skipped.
func JSON(observations []ocr.Observation, width, height int) string {
	objs := make([]string, 0, len(observations))
	for _, o := range observations {
		c, ok := o.Top()
		if !ok {
			continue
		}

		x, y, w, h := PixelBox(o.BoundingBox, width, height)
		objs = append(objs, fmt.Sprintf(
			"  { \"txt\" : \"%s\",\n    \"x\" : %d, \"y\" : %d, \"w\" : %d, \"h\" : %d, \"conf\" : %s }",
			escape(c.Text), x, y, w, h, formatConfidence(c.Confidence),
		))
	}

	var b strings.Builder
	b.WriteString("[\n")
	for i, obj := range objs {
		b.WriteString(obj)
		if i < len(objs)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("]")
	return b.String()
}

// PixelBox converts a normalized bounding box to pixel coordinates with a
// top-left origin. Values are truncated toward zero.
func PixelBox(r ocr.Rect, width, height int) (x, y, w, h int) {
	fw, fh := float64(width), float64(height)
	x = int(r.MinX() * fw)
	y = int(fh - r.MaxY()*fh)
	w = int(r.Width * fw)
	h = int(r.Height * fh)
	return x, y, w, h
}

// formatConfidence prints the shortest representation of c, keeping a
// fractional part on integral values: 1 prints as "1.0".
func formatConfidence(c float32) string {
	s := strconv.FormatFloat(float64(c), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eN") {
		s += ".0"
	}
	return s
}

func escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Target is where rendered output goes: standard output when Path is empty,
// otherwise the file at Path.
type Target struct {
	Path string
}

func (t Target) String() string {
	if t.Path == "" {
		return "stdout"
	}
	return t.Path
}

// Write writes s to the target. Files are replaced atomically and receive s
// verbatim; standard output gets a trailing newline.
func (t Target) Write(stdout io.Writer, s string) error {
	if t.Path == "" {
		_, err := fmt.Fprintln(stdout, s)
		return err
	}

	if err := atomic.WriteFile(t.Path, strings.NewReader(s)); err != nil {
		return fmt.Errorf("write %s: %w", t.Path, err)
	}
	return nil
}
