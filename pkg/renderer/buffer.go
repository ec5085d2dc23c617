package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Buffer is a row-major linear RGB float image.
// Row 0 is the bottom row of the picture and channels are not clamped.
type Buffer struct {
	Width  int
	Height int
	Pix    []float32 // len(Pix) == Width*Height*3
}

// NewBuffer allocates a zeroed buffer
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("buffer %dx%d: %w", width, height, core.ErrInvalidResolution)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*3),
	}, nil
}

// PixOffset returns the index of the red channel of pixel (x, y)
func (b *Buffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * 3
}

// Set writes the color of pixel (x, y)
func (b *Buffer) Set(x, y int, c core.Vec3) {
	i := b.PixOffset(x, y)
	b.Pix[i] = float32(c.X)
	b.Pix[i+1] = float32(c.Y)
	b.Pix[i+2] = float32(c.Z)
}

// At returns the color of pixel (x, y)
func (b *Buffer) At(x, y int) core.Vec3 {
	i := b.PixOffset(x, y)
	return core.NewVec3(float64(b.Pix[i]), float64(b.Pix[i+1]), float64(b.Pix[i+2]))
}

// ToImage converts the buffer to an 8-bit image with the top row first.
// Colors are gamma corrected and clamped to [0, 1]; gamma 1.0 keeps them linear.
func (b *Buffer) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGBA(x, b.Height-1-y, vec3ToColor(b.At(x, y), gamma))
		}
	}
	return img
}

// vec3ToColor converts a Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3, gamma float64) color.RGBA {
	colorVec = colorVec.GammaCorrect(gamma)
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
