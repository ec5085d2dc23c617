package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Scene contains all the elements needed for rendering.
// A scene is built fresh for every render pass and is read-only while tracing.
type Scene struct {
	Name   string
	Camera *geometry.Camera
	Shapes []geometry.Shape     // Objects in the scene, in traversal order
	Lights []*lights.PointLight // Only the first light is used for shading
}

// New creates a scene from a camera, shapes and lights
func New(name string, camera *geometry.Camera, shapes []geometry.Shape, sceneLights []*lights.PointLight) *Scene {
	return &Scene{
		Name:   name,
		Camera: camera,
		Shapes: shapes,
		Lights: sceneLights,
	}
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *geometry.Camera {
	return s.Camera
}

// PrimaryLight returns the light used for shading, if the scene has one
func (s *Scene) PrimaryLight() (*lights.PointLight, bool) {
	if len(s.Lights) == 0 {
		return nil, false
	}
	return s.Lights[0], true
}

// ClosestHit finds the nearest intersection along the ray within the bounds.
// Shapes are tested in order and a later shape must be strictly closer to
// replace an earlier hit, so the first shape wins ties.
func (s *Scene) ClosestHit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	var closestHit *material.SurfaceInteraction
	closestSoFar := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit && hit.T < closestSoFar {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// Occluded reports whether any shape intersects the shadow ray within the bounds.
// It stops at the first occluder, which is not necessarily the nearest.
func (s *Scene) Occluded(shadowRay core.Ray, tMin, tMax float64) bool {
	for _, shape := range s.Shapes {
		if _, isHit := shape.Hit(shadowRay, tMin, tMax); isHit {
			return true
		}
	}
	return false
}
