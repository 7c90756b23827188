//go:build darwin

package imagefile

import (
	"bytes"
	"errors"
	"image"

	"github.com/disintegration/imaging"
	"github.com/progrium/darwinkit/macos/appkit"
	"github.com/progrium/darwinkit/objc"
)

// systemDecode opens path with NSImage and decodes its TIFF representation.
func systemDecode(path string) (image.Image, error) {
	var (
		img image.Image
		err error
	)

	objc.WithAutoreleasePool(func() {
		ns := appkit.NewImageWithContentsOfFile(path)
		if ns.IsNil() || !ns.IsValid() {
			err = image.ErrFormat
			return
		}

		data := ns.TIFFRepresentation()
		if len(data) == 0 {
			err = errors.New("no bitmap representation")
			return
		}

		img, err = imaging.Decode(bytes.NewReader(data))
	})

	return img, err
}
