package imageio

import (
	"fmt"
	"image"
)

// MaxDifference returns the largest absolute channel difference between two
// images of the same size, in [0, 1]. Alpha is ignored.
func MaxDifference(a, b image.Image) (float64, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return 0, fmt.Errorf("image sizes differ: %dx%d vs %dx%d", ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	maxDiff := uint32(0)
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			r1, g1, b1, _ := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			r2, g2, b2, _ := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			maxDiff = max(maxDiff, absDiff(r1, r2), absDiff(g1, g2), absDiff(b1, b2))
		}
	}

	// RGBA returns uint32 in [0, 65535]
	return float64(maxDiff) / 65535.0, nil
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
