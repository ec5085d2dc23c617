package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Config holds render settings for the CLI and web server.
type Config struct {
	// Scene
	Scene   string `json:"scene"`
	Shading string `json:"shading"`

	// Output
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	Output       string  `json:"output"`
	Format       string  `json:"format"`
	Gamma        float64 `json:"gamma"`
	DisplayScale int     `json:"display_scale"`

	// Parallelism
	Workers  int `json:"workers"`
	TileSize int `json:"tile_size"`
}

const (
	DefaultScene    = "phong"
	DefaultShading  = "phong"
	DefaultWidth    = 512
	DefaultHeight   = 512
	DefaultFormat   = "png"
	DefaultTileSize = 64
	DefaultGamma    = 1.0
)

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Scene != "" {
		c.Scene = flags.Scene
	}
	if flags.Shading != "" {
		c.Shading = flags.Shading
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Gamma > 0 {
		c.Gamma = flags.Gamma
	}
	if flags.DisplayScale > 0 {
		c.DisplayScale = flags.DisplayScale
	}

	// Defaults
	if c.Scene == "" {
		c.Scene = DefaultScene
	}
	if c.Shading == "" {
		c.Shading = DefaultShading
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Format == "" {
		c.Format = formatFromOutput(c.Output)
	}
	if c.Output == "" {
		c.Output = fmt.Sprintf("output/%s/render.%s", c.Scene, c.Format)
	}
	if c.Gamma <= 0 {
		c.Gamma = DefaultGamma
	}
	if c.DisplayScale <= 0 {
		c.DisplayScale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Scene        string
	Shading      string
	Width        int
	Height       int
	Output       string
	Format       string
	Workers      int
	Gamma        float64
	DisplayScale int
}

// formatFromOutput takes the format from the output extension, falling back to PNG
func formatFromOutput(output string) string {
	if i := strings.LastIndex(output, "."); i >= 0 && !strings.ContainsAny(output[i:], `/\`) {
		if ext := strings.ToLower(output[i+1:]); ext != "" {
			return ext
		}
	}
	return DefaultFormat
}
