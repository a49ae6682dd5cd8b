package texture

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"bg3d-tool/internal/bg3d"
)

// Image converts a decoded texture into an opaque NRGBA image of
// Width x Height. Texels are laid out the way the stream stores them:
// texel i = x*Height + y lands at (x, y).
func Image(t bg3d.TextureMap) (*image.NRGBA, error) {
	texels, err := t.Texels()
	if err != nil {
		return nil, fmt.Errorf("texture: %dx%d with %d bytes: %w", t.Width, t.Height, len(t.Pixels), err)
	}

	w, h := int(t.Width), int(t.Height)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return img, nil
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			px := texels[x*h+y]
			i := img.PixOffset(x, y)
			img.Pix[i] = px[0]
			img.Pix[i+1] = px[1]
			img.Pix[i+2] = px[2]
			img.Pix[i+3] = 0xff
		}
	}
	return img, nil
}

// Scale enlarges img by an integer factor with nearest-neighbour sampling,
// keeping texel edges sharp. Factors below 2 return img unchanged.
func Scale(img *image.NRGBA, factor int) *image.NRGBA {
	if factor < 2 {
		return img
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
