//go:build darwin

package imagefile

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSystemDecode(t *testing.T) {
	t.Parallel()

	path := writeImage(t, "page.png", 64, 32, encodePNG)

	img, err := systemDecode(path)
	assert.NilError(t, err)
	assert.Equal(t, img.Bounds().Dx(), 64)
	assert.Equal(t, img.Bounds().Dy(), 32)
}

func TestSystemDecode_notAnImage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.heic")
	assert.NilError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := systemDecode(path)
	assert.Assert(t, errors.Is(err, image.ErrFormat))
}
