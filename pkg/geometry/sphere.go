package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. The radius must be positive.
func NewSphere(center core.Vec3, radius float64, mat material.Material) (*Sphere, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("sphere radius %f: %w", radius, core.ErrInvalidRadius)
	}
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}, nil
}

// Hit tests if a ray intersects with the sphere.
// Only the near root is considered and both bounds are exclusive.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Half-b form of the quadratic: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	root := (-halfB - math.Sqrt(discriminant)) / a
	if root <= tMin || root >= tMax {
		return nil, false
	}

	hit := &material.SurfaceInteraction{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	hit.SetFaceNormal(ray, s.NormalAt(hit.Point))

	return hit, true
}

// NormalAt returns the outward unit normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
