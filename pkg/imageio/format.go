package imageio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Format names an output image encoding
type Format string

const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported output format
var Formats = []Format{FormatPNG, FormatWebP, FormatTGA, FormatBMP, FormatTIFF}

// ParseFormat converts a format name such as "png" or ".tif" to a Format
func ParseFormat(name string) (Format, error) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	switch name {
	case "png":
		return FormatPNG, nil
	case "webp":
		return FormatWebP, nil
	case "tga":
		return FormatTGA, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return "", fmt.Errorf("image format %q: %w", name, core.ErrUnknownFormat)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("image path %q has no extension: %w", path, core.ErrUnknownFormat)
	}
	return ParseFormat(ext)
}

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	return "." + string(f)
}

// ContentType returns the MIME type served for the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatTGA:
		return "image/x-tga"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "application/octet-stream"
	}
}
