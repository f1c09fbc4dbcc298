package synthesis

import (
	"context"
	"image"

	"github.com/sfomuseum/go-sfomuseum-styletransfer"
	"golang.org/x/image/draw"
)

// ResizeImage scales im to exactly width x height, ignoring its aspect ratio.
func ResizeImage(im image.Image, width int, height int) *image.RGBA {

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), im, im.Bounds(), draw.Src, nil)

	return dst
}

// raster is an image decomposed into float channels for cost evaluation. The source
// pixels are kept so generated images copy example colours exactly.
type raster struct {
	width  int
	height int
	rgb    []float32
	luma   []float32
	src    *image.RGBA
}

func newRaster(im *image.RGBA) *raster {

	bounds := im.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	r := &raster{
		width:  w,
		height: h,
		rgb:    make([]float32, w*h*3),
		luma:   make([]float32, w*h),
		src:    im,
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {

			o := im.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			i := y*w + x

			red := float32(im.Pix[o]) / 255.0
			green := float32(im.Pix[o+1]) / 255.0
			blue := float32(im.Pix[o+2]) / 255.0

			r.rgb[i*3] = red
			r.rgb[i*3+1] = green
			r.rgb[i*3+2] = blue

			// Rec. 601
			r.luma[i] = 0.299*red + 0.587*green + 0.114*blue
		}
	}

	return r
}

func loadRaster(ctx context.Context, path string, width int, height int) (*raster, error) {

	im, err := styletransfer.ReadImage(ctx, path)

	if err != nil {
		return nil, err
	}

	return newRaster(ResizeImage(im, width, height)), nil
}
