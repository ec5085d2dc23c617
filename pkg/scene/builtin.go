package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// builder collects shapes and keeps the first construction error
type builder struct {
	scene *Scene
	err   error
}

func newBuilder(name string, position, direction core.Vec3, focalLength float64) *builder {
	b := &builder{scene: &Scene{Name: name}}
	b.scene.Camera, b.err = geometry.NewCamera(position, direction, focalLength)
	return b
}

func (b *builder) sphere(center core.Vec3, radius float64, mat material.Material) {
	if b.err != nil {
		return
	}
	var s *geometry.Sphere
	if s, b.err = geometry.NewSphere(center, radius, mat); b.err == nil {
		b.scene.Shapes = append(b.scene.Shapes, s)
	}
}

func (b *builder) plane(normal core.Vec3, d float64, mat material.Material) {
	if b.err != nil {
		return
	}
	var p *geometry.Plane
	if p, b.err = geometry.NewPlane(normal, d, mat); b.err == nil {
		b.scene.Shapes = append(b.scene.Shapes, p)
	}
}

func (b *builder) material(ambient, diffuse, specular core.Vec3, shininess float64) material.Material {
	if b.err != nil {
		return material.Material{}
	}
	var m material.Material
	m, b.err = material.NewMaterial(ambient, diffuse, specular, shininess)
	return m
}

func (b *builder) light(position, color core.Vec3) {
	b.scene.Lights = append(b.scene.Lights, lights.NewPointLight(position, color))
}

func (b *builder) build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.scene, nil
}

// Shared layout of the built-in scenes: camera at the origin looking down -z
// with the image plane 0.1 units away, ground plane at y=-2.
var (
	cameraPosition  = core.NewVec3(0, 0, 0)
	cameraDirection = core.NewVec3(0, 0, -1)
	groundNormal    = core.NewVec3(0, 1, 0)
)

const (
	focalLength = 0.1
	groundD     = -2.0
)

// NewPhongScene creates three spheres over a ground plane lit by one white point light
func NewPhongScene() (*Scene, error) {
	b := newBuilder("phong", cameraPosition, cameraDirection, focalLength)

	black := core.NewVec3(0, 0, 0)
	planeMat := b.material(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(1, 1, 1), black, 0)
	redMat := b.material(core.NewVec3(0.2, 0, 0), core.NewVec3(1, 0, 0), black, 0)
	greenMat := b.material(core.NewVec3(0, 0.2, 0), core.NewVec3(0, 0.5, 0), core.NewVec3(0.5, 0.5, 0.5), 32)
	blueMat := b.material(core.NewVec3(0, 0, 0.2), core.NewVec3(0, 0, 1), black, 0)

	b.sphere(core.NewVec3(-4, 0, -7), 1, redMat)
	b.sphere(core.NewVec3(0, 0, -7), 2, greenMat)
	b.sphere(core.NewVec3(4, 0, -7), 1, blueMat)
	b.plane(groundNormal, groundD, planeMat)

	b.light(core.NewVec3(-4, 4, -3), core.NewVec3(1, 1, 1))

	return b.build()
}

// NewFlatScene creates the same geometry as NewPhongScene with every surface flat white
func NewFlatScene() (*Scene, error) {
	b := newBuilder("flat", cameraPosition, cameraDirection, focalLength)

	white := material.Flat(core.NewVec3(1, 1, 1))
	b.sphere(core.NewVec3(-4, 0, -7), 1, white)
	b.sphere(core.NewVec3(0, 0, -7), 2, white)
	b.sphere(core.NewVec3(4, 0, -7), 1, white)
	b.plane(groundNormal, groundD, white)

	return b.build()
}

// NewGroundPlaneScene creates a scene holding only the ground plane.
// The plane material works for both flat and Phong shading.
func NewGroundPlaneScene() (*Scene, error) {
	b := newBuilder("ground", cameraPosition, cameraDirection, focalLength)

	planeMat := b.material(core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), 0)
	b.plane(groundNormal, groundD, planeMat)

	b.light(core.NewVec3(-4, 4, -3), core.NewVec3(1, 1, 1))

	return b.build()
}
