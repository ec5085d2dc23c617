package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera is a pinhole camera with an image plane FocalLength units along Direction
type Camera struct {
	Position    core.Vec3
	Direction   core.Vec3 // Unit facing direction
	FocalLength float64
}

// NewCamera creates a camera, normalizing the facing direction
func NewCamera(position, direction core.Vec3, focalLength float64) (*Camera, error) {
	length := direction.Length()
	if length == 0 || !direction.IsFinite() {
		return nil, fmt.Errorf("camera direction %v: %w", direction, core.ErrInvalidCamera)
	}
	if !(focalLength > 0) || math.IsInf(focalLength, 0) {
		return nil, fmt.Errorf("camera focal length %f: %w", focalLength, core.ErrInvalidCamera)
	}
	return &Camera{
		Position:    position,
		Direction:   direction.Multiply(1.0 / length),
		FocalLength: focalLength,
	}, nil
}

// GetRay generates the primary ray through image-plane coordinates (x, y)
func (c *Camera) GetRay(x, y float64) (core.Ray, error) {
	direction := core.NewVec3(x, y, 0).Add(c.Direction.Multiply(c.FocalLength))
	return core.NewRay(c.Position, direction)
}
