package ocr

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// encodePNG serializes the pixel buffer for recognizers that only accept
// encoded image data.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode pixel buffer: %w", err)
	}
	return buf.Bytes(), nil
}
