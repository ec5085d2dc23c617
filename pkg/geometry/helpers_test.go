package geometry

import (
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func mustRay(t *testing.T, origin, direction core.Vec3) core.Ray {
	t.Helper()
	ray, err := core.NewRay(origin, direction)
	if err != nil {
		t.Fatalf("NewRay(%v, %v): %v", origin, direction, err)
	}
	return ray
}
