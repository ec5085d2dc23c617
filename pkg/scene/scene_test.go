package scene

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// MockShape implements geometry.Shape for testing
type MockShape struct {
	t     float64
	color core.Vec3
	calls int
}

func (m *MockShape) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	m.calls++
	if m.t <= tMin || m.t > tMax {
		return nil, false
	}
	return &material.SurfaceInteraction{
		T:        m.t,
		Point:    ray.At(m.t),
		Normal:   core.NewVec3(0, 0, 1),
		Material: material.Flat(m.color),
	}, true
}

func (m *MockShape) NormalAt(point core.Vec3) core.Vec3 {
	return core.NewVec3(0, 0, 1)
}

func forwardRay(t *testing.T) core.Ray {
	t.Helper()
	ray, err := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if err != nil {
		t.Fatal(err)
	}
	return ray
}

func TestScene_ClosestHit_Nearest(t *testing.T) {
	far := &MockShape{t: 8, color: core.NewVec3(1, 0, 0)}
	near := &MockShape{t: 3, color: core.NewVec3(0, 1, 0)}
	middle := &MockShape{t: 5, color: core.NewVec3(0, 0, 1)}
	s := New("test", nil, []geometry.Shape{far, near, middle}, nil)

	hit, isHit := s.ClosestHit(forwardRay(t), 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.T != 3 || hit.Material.Diffuse != near.color {
		t.Errorf("Expected nearest shape at t=3, got t=%f color=%v", hit.T, hit.Material.Diffuse)
	}
	for i, shape := range []*MockShape{far, near, middle} {
		if shape.calls != 1 {
			t.Errorf("Shape %d tested %d times, expected once", i, shape.calls)
		}
	}
}

func TestScene_ClosestHit_TieGoesToFirstShape(t *testing.T) {
	first := &MockShape{t: 4, color: core.NewVec3(1, 0, 0)}
	second := &MockShape{t: 4, color: core.NewVec3(0, 1, 0)}

	tests := []struct {
		name     string
		shapes   []geometry.Shape
		expected core.Vec3
	}{
		{"first then second", []geometry.Shape{first, second}, first.color},
		{"second then first", []geometry.Shape{second, first}, second.color},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("tie", nil, tt.shapes, nil)
			hit, isHit := s.ClosestHit(forwardRay(t), 0, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.Material.Diffuse != tt.expected {
				t.Errorf("Expected first enumerated shape %v, got %v", tt.expected, hit.Material.Diffuse)
			}
		})
	}
}

func TestScene_ClosestHit_TieBetweenPlanes(t *testing.T) {
	// Two coincident planes with inclusive bounds hit at the same t
	red, err := geometry.NewPlane(core.NewVec3(0, 0, 1), -5, material.Flat(core.NewVec3(1, 0, 0)))
	if err != nil {
		t.Fatal(err)
	}
	green, err := geometry.NewPlane(core.NewVec3(0, 0, 1), -5, material.Flat(core.NewVec3(0, 1, 0)))
	if err != nil {
		t.Fatal(err)
	}

	s := New("planes", nil, []geometry.Shape{red, green}, nil)
	hit, isHit := s.ClosestHit(forwardRay(t), 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material.Diffuse != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected first plane to win the tie, got %v", hit.Material.Diffuse)
	}
}

func TestScene_ClosestHit_Miss(t *testing.T) {
	s := New("empty", nil, nil, nil)
	if hit, isHit := s.ClosestHit(forwardRay(t), 0, math.Inf(1)); isHit {
		t.Errorf("Expected miss in empty scene, got hit at t=%f", hit.T)
	}

	s = New("behind", nil, []geometry.Shape{&MockShape{t: -1}}, nil)
	if _, isHit := s.ClosestHit(forwardRay(t), 0, math.Inf(1)); isHit {
		t.Error("Expected miss for shape behind the ray")
	}
}

func TestScene_Occluded(t *testing.T) {
	tests := []struct {
		name     string
		shapes   []geometry.Shape
		tMax     float64
		expected bool
	}{
		{"no shapes", nil, 10, false},
		{"occluder between point and light", []geometry.Shape{&MockShape{t: 5}}, 10, true},
		{"shape beyond the light", []geometry.Shape{&MockShape{t: 15}}, 10, false},
		{"shape inside epsilon", []geometry.Shape{&MockShape{t: 0.0005}}, 10, false},
		{"second shape occludes", []geometry.Shape{&MockShape{t: 20}, &MockShape{t: 2}}, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("shadow", nil, tt.shapes, nil)
			if got := s.Occluded(forwardRay(t), 0.001, tt.tMax); got != tt.expected {
				t.Errorf("Expected occluded=%t, got %t", tt.expected, got)
			}
		})
	}
}

func TestScene_Occluded_StopsAtFirstOccluder(t *testing.T) {
	first := &MockShape{t: 9}
	second := &MockShape{t: 2}
	s := New("shadow", nil, []geometry.Shape{first, second}, nil)

	if !s.Occluded(forwardRay(t), 0.001, 10) {
		t.Fatal("Expected occlusion")
	}
	if second.calls != 0 {
		t.Errorf("Expected traversal to stop at the first occluder, second shape tested %d times", second.calls)
	}
}

func TestScene_Occluded_RealGeometry(t *testing.T) {
	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.Material{})
	if err != nil {
		t.Fatal(err)
	}
	s := New("sphere", nil, []geometry.Shape{sphere}, nil)

	if !s.Occluded(forwardRay(t), 0.001, 10) {
		t.Error("Expected sphere to occlude a light behind it")
	}
	if s.Occluded(forwardRay(t), 0.001, 3) {
		t.Error("Expected no occlusion for a light in front of the sphere")
	}
}

func TestScene_PrimaryLight(t *testing.T) {
	s := New("dark", nil, nil, nil)
	if _, ok := s.PrimaryLight(); ok {
		t.Error("Expected no light")
	}

	first := lights.NewPointLight(core.NewVec3(0, 1, 0), core.NewVec3(1, 1, 1))
	second := lights.NewPointLight(core.NewVec3(0, 2, 0), core.NewVec3(1, 0, 0))
	s = New("lit", nil, nil, []*lights.PointLight{first, second})
	light, ok := s.PrimaryLight()
	if !ok || light != first {
		t.Errorf("Expected first light, got %v", light)
	}
}
