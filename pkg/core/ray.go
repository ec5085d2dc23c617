package core

import "fmt"

// Ray represents a ray with an origin and a unit-length direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray, normalizing the direction.
// A zero-length or non-finite direction is rejected with ErrZeroDirection.
func NewRay(origin, direction Vec3) (Ray, error) {
	length := direction.Length()
	if length == 0 || !direction.IsFinite() {
		return Ray{}, fmt.Errorf("ray direction %v: %w", direction, ErrZeroDirection)
	}
	return Ray{Origin: origin, Direction: direction.Multiply(1.0 / length)}, nil
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
