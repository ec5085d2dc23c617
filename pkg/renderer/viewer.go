package renderer

import (
	"fmt"
	"sync"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Viewer holds the most recent render of a scene for a display surface.
// Resizing re-renders into a new buffer; the previous buffer is dropped.
type Viewer struct {
	mu      sync.RWMutex
	sceneID string
	shading integrator.Shading
	config  Config
	logger  core.Logger

	buffer *Buffer
	stats  RenderStats
}

// NewViewer creates a viewer and renders the first frame
func NewViewer(sceneID string, shading integrator.Shading, width, height int, config Config, logger core.Logger) (*Viewer, error) {
	v := &Viewer{
		sceneID: sceneID,
		shading: shading,
		config:  config,
		logger:  logger,
	}
	if err := v.Resize(width, height); err != nil {
		return nil, err
	}
	return v, nil
}

// Resize rebuilds the scene and renders it at the new resolution.
// On error the previous frame is kept.
func (v *Viewer) Resize(width, height int) error {
	s, err := scene.Create(v.sceneID)
	if err != nil {
		return err
	}
	integratorInst, err := integrator.New(v.shading)
	if err != nil {
		return err
	}
	rt, err := NewRaytracer(s, integratorInst, width, height, v.config, v.logger)
	if err != nil {
		return fmt.Errorf("resize viewer: %w", err)
	}
	buf, stats, err := rt.RenderPass()
	if err != nil {
		return fmt.Errorf("resize viewer: %w", err)
	}

	v.mu.Lock()
	v.buffer = buf
	v.stats = stats
	v.mu.Unlock()
	return nil
}

// Buffer returns the current frame
func (v *Viewer) Buffer() *Buffer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.buffer
}

// Stats returns the statistics of the current frame
func (v *Viewer) Stats() RenderStats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}
