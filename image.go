package styletransfer

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const ORIENTATION_PORTRAIT string = "P"
const ORIENTATION_LANDSCAPE string = "L"

// Orientation returns ORIENTATION_PORTRAIT if im is taller than it is wide and
// ORIENTATION_LANDSCAPE otherwise.
func Orientation(im image.Image) string {

	bounds := im.Bounds()

	w := bounds.Dx()
	h := bounds.Dy()

	if h > w {
		return ORIENTATION_PORTRAIT
	}

	return ORIENTATION_LANDSCAPE
}

// ReadImage decodes the image at path. JPEG, PNG, GIF, BMP, TIFF and WebP are supported.
func ReadImage(ctx context.Context, path string) (image.Image, error) {

	r, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("Failed to open %s for reading, %w", path, err)
	}

	defer r.Close()

	im, _, err := image.Decode(r)

	if err != nil {
		return nil, fmt.Errorf("Failed to decode %s, %w", path, err)
	}

	return im, nil
}
