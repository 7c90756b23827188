//go:build !darwin

package imagefile

import "image"

func systemDecode(string) (image.Image, error) {
	return nil, image.ErrFormat
}
