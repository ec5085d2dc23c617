package integrator

import (
	"fmt"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Shading names a shading strategy
type Shading string

const (
	ShadingFlat  Shading = "flat"
	ShadingPhong Shading = "phong"
)

// ShadowEpsilon offsets shadow rays from the shaded point to avoid self-shadowing
const ShadowEpsilon = 0.001

// RayInfo describes what a traced ray encountered
type RayInfo struct {
	Hit      bool // The ray hit a surface
	Shadowed bool // The hit point is blocked from the light
}

// Integrator defines the interface for shading strategies
type Integrator interface {
	// RayColor computes the color seen along a primary ray.
	// Rays that hit nothing within (tMin, tMax) return black.
	RayColor(ray core.Ray, s *scene.Scene, tMin, tMax float64) (core.Vec3, RayInfo)
}

// ParseShading converts a shading name to a Shading value
func ParseShading(name string) (Shading, error) {
	switch Shading(strings.ToLower(strings.TrimSpace(name))) {
	case ShadingFlat:
		return ShadingFlat, nil
	case ShadingPhong:
		return ShadingPhong, nil
	default:
		return "", fmt.Errorf("shading %q: %w", name, core.ErrUnknownShading)
	}
}

// New creates the integrator for a shading strategy
func New(shading Shading) (Integrator, error) {
	switch shading {
	case ShadingFlat:
		return NewFlatIntegrator(), nil
	case ShadingPhong:
		return NewPhongIntegrator(), nil
	default:
		return nil, fmt.Errorf("shading %q: %w", shading, core.ErrUnknownShading)
	}
}

// background is the color of rays that escape the scene
var background = core.Vec3{X: 0, Y: 0, Z: 0}
