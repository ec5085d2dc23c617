package integrator

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// FlatIntegrator colors each pixel with the flat color of the nearest surface
type FlatIntegrator struct{}

// NewFlatIntegrator creates a new flat-color integrator
func NewFlatIntegrator() *FlatIntegrator {
	return &FlatIntegrator{}
}

// RayColor returns the diffuse color of the nearest hit, or black on a miss
func (f *FlatIntegrator) RayColor(ray core.Ray, s *scene.Scene, tMin, tMax float64) (core.Vec3, RayInfo) {
	hit, isHit := s.ClosestHit(ray, tMin, tMax)
	if !isHit {
		return background, RayInfo{}
	}
	return hit.Material.Diffuse, RayInfo{Hit: true}
}
