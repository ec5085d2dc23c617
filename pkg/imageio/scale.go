package imageio

import (
	"image"

	"golang.org/x/image/draw"
)

// Scale enlarges img by an integer factor with nearest-neighbor sampling,
// keeping every rendered pixel a crisp block. Factors ≤ 1 return img unchanged.
func Scale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
