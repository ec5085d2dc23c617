package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains render pass configuration
type Config struct {
	TileSize   int // Size of each square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count, 1 = single-threaded)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   64,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Raytracer renders one scene at one resolution.
// Every render pass allocates and fills a new buffer.
type Raytracer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	width      int
	height     int
	config     Config
	logger     core.Logger // Optional; nil disables logging
}

// NewRaytracer creates a new raytracer
func NewRaytracer(s *scene.Scene, integratorInst integrator.Integrator, width, height int, config Config, logger core.Logger) (*Raytracer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render %dx%d: %w", width, height, core.ErrInvalidResolution)
	}
	if s == nil || s.Camera == nil {
		return nil, fmt.Errorf("render: scene has no camera: %w", core.ErrInvalidCamera)
	}
	return &Raytracer{
		scene:      s,
		integrator: integratorInst,
		width:      width,
		height:     height,
		config:     config,
		logger:     logger,
	}, nil
}

func (rt *Raytracer) logf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// RenderPass renders every pixel and returns the filled buffer
func (rt *Raytracer) RenderPass() (*Buffer, RenderStats, error) {
	return rt.RenderPassContext(context.Background())
}

// RenderPassContext renders every pixel, stopping early if ctx is cancelled.
// On cancellation no buffer is returned.
func (rt *Raytracer) RenderPassContext(ctx context.Context) (*Buffer, RenderStats, error) {
	buf, err := NewBuffer(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	tiles := NewTileGrid(rt.width, rt.height, rt.config.TileSize)
	workerPool := NewWorkerPool(rt.scene, rt.integrator, len(tiles), rt.config.NumWorkers)

	rt.logf("Rendering %s %dx%d: %d tiles on %d workers...\n",
		rt.scene.Name, rt.width, rt.height, len(tiles), workerPool.GetNumWorkers())
	startTime := time.Now()

	workerPool.Start(ctx)
	defer workerPool.Stop()

	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{
			Tile:   tile,
			TaskID: taskID,
			Buffer: buf,
		})
	}

	var stats RenderStats
	var firstErr error
	for i := 0; i < len(tiles); i++ {
		result, ok := workerPool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.Merge(result.Stats)
	}

	if firstErr != nil {
		rt.logf("Render cancelled: %v\n", firstErr)
		return nil, RenderStats{}, firstErr
	}

	stats.AverageLuminance = BufferLuminance(buf)
	rt.logf("Render completed in %v (%d rays, %.1f%% hits, %d shadowed)\n",
		time.Since(startTime), stats.RaysCast, 100*stats.HitRatio(), stats.ShadowedPixels)

	return buf, stats, nil
}

// Render traces one primary ray per pixel and returns a freshly allocated buffer.
// It keeps no state between calls.
func Render(s *scene.Scene, integratorInst integrator.Integrator, width, height int) (*Buffer, error) {
	rt, err := NewRaytracer(s, integratorInst, width, height, DefaultConfig(), nil)
	if err != nil {
		return nil, err
	}
	buf, _, err := rt.RenderPass()
	return buf, err
}

// RenderScene builds a fresh built-in scene and renders it with the given shading
func RenderScene(sceneID string, shading integrator.Shading, width, height int) (*Buffer, RenderStats, error) {
	s, err := scene.Create(sceneID)
	if err != nil {
		return nil, RenderStats{}, err
	}
	integratorInst, err := integrator.New(shading)
	if err != nil {
		return nil, RenderStats{}, err
	}
	rt, err := NewRaytracer(s, integratorInst, width, height, DefaultConfig(), nil)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return rt.RenderPass()
}
