package material

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SurfaceInteraction contains information about a ray-object intersection
type SurfaceInteraction struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Outward surface normal at the intersection
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray arrived against the outward normal
	Material  Material  // Reflectance of the hit object
}

// SetFaceNormal records the outward normal and whether the ray hit the front face.
// The normal is not flipped for back-face hits.
func (h *SurfaceInteraction) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	h.Normal = outwardNormal
}
