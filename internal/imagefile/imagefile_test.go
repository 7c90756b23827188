package imagefile

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"gotest.tools/v3/assert"
)

func writeImage(t *testing.T, name string, width, height int, encode func(*os.File, image.Image) error) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 0, 255})
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	assert.NilError(t, err)
	defer f.Close()

	assert.NilError(t, encode(f, img))
	return path
}

func encodePNG(f *os.File, img image.Image) error { return png.Encode(f, img) }
func encodeBMP(f *os.File, img image.Image) error { return bmp.Encode(f, img) }

func TestLoad(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name   string
		file   string
		encode func(*os.File, image.Image) error
		format string
	}{
		{name: "png", file: "page.png", encode: encodePNG, format: "PNG"},
		{name: "bmp", file: "page.bmp", encode: encodeBMP, format: "BMP"},
		{name: "unknown extension", file: "page.img", encode: encodePNG, format: "unknown"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := writeImage(t, tc.file, 64, 32, tc.encode)

			img, err := Load(path)
			assert.NilError(t, err)
			assert.Equal(t, img.Path, path)
			assert.Equal(t, img.Format, tc.format)
			assert.Equal(t, img.Width(), 64)
			assert.Equal(t, img.Height(), 32)
			assert.Assert(t, img.Size > 0)

			r, g, _, _ := img.Pixels.At(10, 20).RGBA()
			assert.Equal(t, r>>8, uint32(10))
			assert.Equal(t, g>>8, uint32(20))
		})
	}
}

func TestLoad_errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	assert.NilError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))

	testcases := []struct {
		name string
		path string
		op   string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.png"), op: "open"},
		{name: "not an image", path: garbage, op: "decode"},
		{name: "directory", path: dir, op: "open"},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tc.path)
			assert.ErrorContains(t, err, "failed to load image '"+tc.path+"'")

			var lerr *LoadError
			assert.Assert(t, errors.As(err, &lerr))
			assert.Equal(t, lerr.Op, tc.op)
		})
	}
}

func TestLoad_unknownFormat(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "photo.heic")
	assert.NilError(t, os.WriteFile(path, []byte("ftypheic but not really"), 0o600))

	_, err := Load(path)

	var lerr *LoadError
	assert.Assert(t, errors.As(err, &lerr))
	assert.Equal(t, lerr.Op, "decode")
	assert.Assert(t, errors.Is(err, image.ErrFormat))
}

func TestLoadError_convert(t *testing.T) {
	t.Parallel()

	err := &LoadError{Op: "convert", Path: "x.png", Err: ErrEmptyImage}
	assert.Error(t, err, "failed to convert image 'x.png' to a pixel buffer: image has no pixels")
	assert.Assert(t, errors.Is(err, ErrEmptyImage))
}
