package renderer

import (
	"image"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Width of the square image window on the camera's image plane
const imageWindow = 0.2

// TileRenderer handles the actual rendering of individual tiles using an integrator
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
	}
}

// ImagePlanePoint maps the center of pixel (ix, iy) onto the [-0.1, 0.1]²
// image window. Non-square images are stretched to fit.
func ImagePlanePoint(ix, iy, width, height int) (x, y float64) {
	x = imageWindow*(float64(ix)+0.5)/float64(width) - imageWindow/2
	y = imageWindow*(float64(iy)+0.5)/float64(height) - imageWindow/2
	return x, y
}

// RenderTileBounds renders pixels within the specified bounds into buf.
// Tiles never overlap, so concurrent calls with distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, buf *Buffer) RenderStats {
	camera := tr.scene.GetCamera()
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			x, y := ImagePlanePoint(i, j, buf.Width, buf.Height)

			ray, err := camera.GetRay(x, y)
			if err != nil {
				// A degenerate camera ray leaves a background pixel
				stats.FailedRays++
				buf.Set(i, j, core.Vec3{})
				continue
			}

			color, info := tr.integrator.RayColor(ray, tr.scene, 0, math.Inf(1))
			buf.Set(i, j, color)

			stats.RaysCast++
			if info.Hit {
				stats.Hits++
			}
			if info.Shadowed {
				stats.ShadowedPixels++
			}
		}
	}

	return stats
}
