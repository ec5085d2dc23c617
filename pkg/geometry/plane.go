package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ParallelEpsilon is the smallest |n·d| for which a ray is not treated as parallel to a plane
const ParallelEpsilon = 1e-6

// Plane represents the infinite plane dot(Normal, p) = D
type Plane struct {
	Normal   core.Vec3 // Unit normal
	D        float64   // Signed offset along the normal
	Material material.Material
}

// NewPlane creates a new plane, normalizing the normal.
// D is taken as given, so it is the offset along the normalized normal.
func NewPlane(normal core.Vec3, d float64, mat material.Material) (*Plane, error) {
	length := normal.Length()
	if length == 0 || !normal.IsFinite() {
		return nil, fmt.Errorf("plane normal %v: %w", normal, core.ErrZeroDirection)
	}
	return &Plane{
		Normal:   normal.Multiply(1.0 / length),
		D:        d,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the plane.
// Unlike Sphere.Hit, both bounds are inclusive.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Ray is parallel to the plane
	if math.Abs(denominator) <= ParallelEpsilon {
		return nil, false
	}

	t := (p.D - p.Normal.Dot(ray.Origin)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &material.SurfaceInteraction{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}
