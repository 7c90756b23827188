package ocr

import "image"

// Rect is a rectangle in the unit square, origin at the bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// NormalizeRect converts a pixel rectangle with a top-left origin, taken from
// an image of w x h pixels, into a Rect.
func NormalizeRect(px image.Rectangle, w, h int) Rect {
	if w <= 0 || h <= 0 {
		return Rect{}
	}

	fw, fh := float64(w), float64(h)
	return Rect{
		X:      float64(px.Min.X) / fw,
		Y:      1 - float64(px.Max.Y)/fh,
		Width:  float64(px.Dx()) / fw,
		Height: float64(px.Dy()) / fh,
	}
}
