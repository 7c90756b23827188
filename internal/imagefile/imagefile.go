// Package imagefile loads image files into pixel buffers.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are decoded in Go with EXIF orientation
// applied. On macOS any other format the system can open (HEIC, PDF and the
// rest of ImageIO) is read through NSImage.
package imagefile

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// ErrEmptyImage is returned when a decoded image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Image is a decoded image file.
type Image struct {
	Path   string
	Format string
	Size   int64 // file size in bytes

	Pixels *image.NRGBA
}

func (i *Image) Width() int  { return i.Pixels.Bounds().Dx() }
func (i *Image) Height() int { return i.Pixels.Bounds().Dy() }

// LoadError reports a failure to turn a file into a pixel buffer.
type LoadError struct {
	// Op is "open", "decode" or "convert".
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Op == "convert" {
		return fmt.Sprintf("failed to convert image '%s' to a pixel buffer: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("failed to load image '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads and decodes the image at path.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, &LoadError{Op: "open", Path: path, Err: err}
	}
	if stat.IsDir() {
		return nil, &LoadError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if errors.Is(err, image.ErrFormat) {
		img, err = systemDecode(path)
	}
	if err != nil {
		return nil, &LoadError{Op: "decode", Path: path, Err: err}
	}

	if img.Bounds().Empty() {
		return nil, &LoadError{Op: "convert", Path: path, Err: ErrEmptyImage}
	}

	return &Image{
		Path:   path,
		Format: formatName(path),
		Size:   stat.Size(),
		Pixels: imaging.Clone(img),
	}, nil
}

func formatName(path string) string {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "unknown"
	}
	return format.String()
}
