package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// PhongIntegrator shades the nearest hit with the Phong model and a hard
// shadow from the scene's primary light
type PhongIntegrator struct{}

// NewPhongIntegrator creates a new Phong integrator
func NewPhongIntegrator() *PhongIntegrator {
	return &PhongIntegrator{}
}

// RayColor computes local Phong illumination at the nearest hit.
// A scene without lights renders black.
func (p *PhongIntegrator) RayColor(ray core.Ray, s *scene.Scene, tMin, tMax float64) (core.Vec3, RayInfo) {
	hit, isHit := s.ClosestHit(ray, tMin, tMax)
	if !isHit {
		return background, RayInfo{}
	}

	light, ok := s.PrimaryLight()
	if !ok {
		return background, RayInfo{Hit: true}
	}

	normal := hit.Normal
	toLight, lightDistance := light.Sample(hit.Point)

	shadowed := false
	if lightDistance > 0 {
		// toLight is already unit length, so the ray cannot fail here
		if shadowRay, err := core.NewRay(hit.Point, toLight); err == nil {
			shadowed = s.Occluded(shadowRay, ShadowEpsilon, lightDistance)
		}
	} else {
		// The light sits on the surface: treat it as straight overhead
		toLight = normal
	}

	if shadowed {
		return hit.Material.AmbientOnly(light.Color), RayInfo{Hit: true, Shadowed: true}
	}

	view := ray.Direction.Normalize().Negate()
	return hit.Material.Phong(normal, toLight, view, light.Color), RayInfo{Hit: true}
}
