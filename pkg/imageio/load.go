package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Load decodes a PNG, TGA, BMP or TIFF image from disk.
// The decoder is chosen by file extension since TGA files carry no magic number.
func Load(path string) (image.Image, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	var decode func(io.Reader) (image.Image, error)
	switch format {
	case FormatPNG:
		decode = png.Decode
	case FormatTGA:
		decode = tga.Decode
	case FormatBMP:
		decode = bmp.Decode
	case FormatTIFF:
		decode = tiff.Decode
	default:
		return nil, fmt.Errorf("load %s: no decoder: %w", format, core.ErrUnknownFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, err := decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}
