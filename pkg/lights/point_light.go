package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitely small light with no falloff
type PointLight struct {
	Position core.Vec3
	Color    core.Vec3 // Linear RGB intensity
}

// NewPointLight creates a point light
func NewPointLight(position, color core.Vec3) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// Sample returns the unit direction from point toward the light and the distance to it.
// The direction is zero when the point coincides with the light.
func (l *PointLight) Sample(point core.Vec3) (direction core.Vec3, distance float64) {
	toLight := l.Position.Subtract(point)
	distance = toLight.Length()
	if distance == 0 {
		return core.Vec3{}, 0
	}
	return toLight.Multiply(1.0 / distance), distance
}
