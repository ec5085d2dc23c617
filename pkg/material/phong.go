package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Material holds per-channel Phong reflectance coefficients
type Material struct {
	Ambient   core.Vec3 // ka
	Diffuse   core.Vec3 // kd, also the flat color
	Specular  core.Vec3 // ks
	Shininess float64   // Specular exponent
}

// NewMaterial creates a Phong material.
// Coefficients must be non-negative and finite.
func NewMaterial(ambient, diffuse, specular core.Vec3, shininess float64) (Material, error) {
	for _, c := range []core.Vec3{ambient, diffuse, specular} {
		if !c.IsFinite() || c.X < 0 || c.Y < 0 || c.Z < 0 {
			return Material{}, fmt.Errorf("coefficient %v: %w", c, core.ErrInvalidMaterial)
		}
	}
	if shininess < 0 || math.IsNaN(shininess) || math.IsInf(shininess, 0) {
		return Material{}, fmt.Errorf("shininess %f: %w", shininess, core.ErrInvalidMaterial)
	}
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}, nil
}

// Flat creates a material for flat shading: the color is the diffuse term and
// ambient and specular are zero.
func Flat(color core.Vec3) Material {
	return Material{Diffuse: color}
}

// Reflect mirrors the light direction l about the normal n: 2(n·l)n - l
func Reflect(l, n core.Vec3) core.Vec3 {
	return n.Multiply(2 * n.Dot(l)).Subtract(l)
}

// AmbientOnly returns the contribution of a light that is blocked from the point
func (m Material) AmbientOnly(lightColor core.Vec3) core.Vec3 {
	return m.Ambient.MultiplyVec(lightColor)
}

// Phong evaluates ambient + diffuse + specular reflectance.
// n is the surface normal, l the unit direction to the light and v the unit
// direction to the viewer. Negative cosines are clamped to zero.
func (m Material) Phong(n, l, v, lightColor core.Vec3) core.Vec3 {
	ambient := m.Ambient.MultiplyVec(lightColor)

	diffuseCos := max(0, n.Dot(l))
	diffuse := m.Diffuse.MultiplyVec(lightColor).Multiply(diffuseCos)

	specularCos := max(0, Reflect(l, n).Dot(v))
	specular := m.Specular.MultiplyVec(lightColor).Multiply(math.Pow(specularCos, m.Shininess))

	return ambient.Add(diffuse).Add(specular)
}
