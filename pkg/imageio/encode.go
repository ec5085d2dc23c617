package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encode writes img to w in the given format.
// WebP output is lossless so a rendered image survives a round trip unchanged.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	case FormatTGA:
		err = tga.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("encode %q: %w", format, core.ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Write encodes img to a file, creating parent directories as needed
func Write(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
