package renderer

import (
	"image"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int     // Total number of pixels rendered
	RaysCast         int     // Primary rays traced
	Hits             int     // Primary rays that hit a surface
	ShadowedPixels   int     // Hits blocked from the light
	FailedRays       int     // Pixels left black because no camera ray could be built
	AverageLuminance float64 // Mean linear luminance over the image
}

// Merge adds the counters of another stats block.
// AverageLuminance is not merged; it is computed from the finished buffer.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.RaysCast += other.RaysCast
	s.Hits += other.Hits
	s.ShadowedPixels += other.ShadowedPixels
	s.FailedRays += other.FailedRays
}

// HitRatio returns the fraction of primary rays that hit a surface
func (s RenderStats) HitRatio() float64 {
	if s.RaysCast == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.RaysCast)
}

// BufferLuminance returns the mean luminance of a float buffer
func BufferLuminance(buf *Buffer) float64 {
	pixels := buf.Width * buf.Height
	if pixels == 0 {
		return 0
	}
	total := 0.0
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			total += buf.At(x, y).Luminance()
		}
	}
	return total / float64(pixels)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an 8-bit image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			total += 0.2126*float64(r)/65535.0 + 0.7152*float64(g)/65535.0 + 0.0722*float64(b)/65535.0
		}
	}
	return total / float64(pixels)
}
