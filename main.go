package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/imageio"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "", "Path to a JSON config file")
	sceneType := flag.String("scene", "", "Scene: "+strings.Join(scene.Names(), ", ")+" (default phong)")
	shading := flag.String("shading", "", "Shading strategy: flat or phong (default phong)")
	width := flag.Int("width", 0, "Image width in pixels (default 512)")
	height := flag.Int("height", 0, "Image height in pixels (default 512)")
	output := flag.String("output", "", "Output file (default output/<scene>/render.<format>)")
	format := flag.String("format", "", "Output format: png, webp, tga, bmp, tiff (default from -output, else png)")
	workers := flag.Int("workers", 0, "Number of parallel workers (default CPU count)")
	gamma := flag.Float64("gamma", 0, "Gamma applied when writing the image (default 1.0, linear)")
	displayScale := flag.Int("scale", 0, "Integer upscale factor for the written image (default 1)")
	reference := flag.String("reference", "", "Compare the render against a reference image and report the max difference")
	tolerance := flag.Float64("tolerance", 0, "Fail when the reference difference exceeds this value in [0, 1]")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	cfg := config.Config{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	cfg.Resolve(config.Flags{
		Scene:        *sceneType,
		Shading:      *shading,
		Width:        *width,
		Height:       *height,
		Output:       *output,
		Format:       *format,
		Workers:      *workers,
		Gamma:        *gamma,
		DisplayScale: *displayScale,
	})

	fmt.Println("Starting Phong Raytracer...")

	img, err := renderImage(cfg, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	if err := saveImage(cfg, img); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", cfg.Output)

	if *reference != "" {
		diff, err := compareReference(img, *reference)
		if err != nil {
			fmt.Printf("Error comparing with reference: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Max difference from %s: %.4f\n", *reference, diff)
		if diff > *tolerance {
			fmt.Printf("Difference exceeds tolerance %.4f\n", *tolerance)
			os.Exit(2)
		}
	}
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-8s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render.<format> unless -output is given")
}

// createScene builds a fresh built-in scene
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("empty scene name: %w", core.ErrUnknownScene)
	}
	return scene.Create(sceneType)
}

// renderImage renders the configured scene and converts it to an 8-bit image
// at the configured gamma and display scale.
func renderImage(cfg config.Config, logger core.Logger) (image.Image, error) {
	selectedScene, err := createScene(cfg.Scene)
	if err != nil {
		return nil, err
	}

	shading, err := integrator.ParseShading(cfg.Shading)
	if err != nil {
		return nil, err
	}
	integratorInst, err := integrator.New(shading)
	if err != nil {
		return nil, err
	}

	raytracer, err := renderer.NewRaytracer(selectedScene, integratorInst, cfg.Width, cfg.Height,
		renderer.Config{TileSize: cfg.TileSize, NumWorkers: cfg.Workers}, logger)
	if err != nil {
		return nil, err
	}

	buf, stats, err := raytracer.RenderPass()
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Printf("Average luminance: %.4f, failed rays: %d\n", stats.AverageLuminance, stats.FailedRays)
	}

	return imageio.Scale(buf.ToImage(cfg.Gamma), cfg.DisplayScale), nil
}

// saveImage writes the image to cfg.Output in cfg.Format
func saveImage(cfg config.Config, img image.Image) error {
	format, err := imageio.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	return imageio.Write(cfg.Output, img, format)
}

// compareReference loads a reference image and returns the max channel difference
func compareReference(img image.Image, referencePath string) (float64, error) {
	ref, err := imageio.Load(referencePath)
	if err != nil {
		return 0, err
	}
	return imageio.MaxDifference(img, ref)
}
