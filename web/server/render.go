package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/config"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/imageio"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string             `json:"scene"`   // Scene ID (e.g., "phong")
	Shading integrator.Shading `json:"shading"` // "flat" or "phong"
	Width   int                `json:"width"`   // Image width
	Height  int                `json:"height"`  // Image height
	Format  imageio.Format     `json:"format"`  // Response image encoding
	Gamma   float64            `json:"gamma"`   // Gamma applied to the 8-bit output
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	RaysCast         int     `json:"raysCast"`
	Hits             int     `json:"hits"`
	ShadowedPixels   int     `json:"shadowedPixels"`
	FailedRays       int     `json:"failedRays"`
	AverageLuminance float64 `json:"averageLuminance"`
}

// StatsResponse is the JSON body of /api/stats
type StatsResponse struct {
	Request   RenderRequest    `json:"request"`
	Stats     Stats            `json:"stats"`
	ElapsedMs int64            `json:"elapsedMs"`
	Console   []ConsoleMessage `json:"console"`
}

// renderResult holds a finished render pass
type renderResult struct {
	buffer  *renderer.Buffer
	stats   renderer.RenderStats
	elapsed time.Duration
}

// handleRender renders a scene at the requested resolution and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	// Use request context to stop rendering when the client disconnects
	result, err := s.render(r.Context(), req, NewWebLogger(renderID(req), nil))
	if err != nil {
		s.writeRenderError(w, err)
		return
	}

	var body bytes.Buffer
	if err := imageio.Encode(&body, result.buffer.ToImage(req.Gamma), req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(body.Len()))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(result.elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Hits", strconv.Itoa(result.stats.Hits))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body.Bytes()); err != nil {
		log.Printf("Failed to write image: %v", err)
	}
}

// handleStats renders a scene and returns its statistics and console output as JSON
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 16)
	result, err := s.render(r.Context(), req, NewWebLogger(renderID(req), consoleChan))
	if err != nil {
		s.writeRenderError(w, err)
		return
	}
	close(consoleChan)

	response := StatsResponse{
		Request: *req,
		Stats: Stats{
			TotalPixels:      result.stats.TotalPixels,
			RaysCast:         result.stats.RaysCast,
			Hits:             result.stats.Hits,
			ShadowedPixels:   result.stats.ShadowedPixels,
			FailedRays:       result.stats.FailedRays,
			AverageLuminance: result.stats.AverageLuminance,
		},
		ElapsedMs: result.elapsed.Milliseconds(),
		Console:   []ConsoleMessage{},
	}
	for msg := range consoleChan {
		response.Console = append(response.Console, msg)
	}

	writeJSON(w, http.StatusOK, response)
}

// render builds a fresh scene for the request and renders one pass
func (s *Server) render(ctx context.Context, req *RenderRequest, logger core.Logger) (*renderResult, error) {
	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		return nil, err
	}
	integratorInst, err := integrator.New(req.Shading)
	if err != nil {
		return nil, err
	}

	raytracer, err := renderer.NewRaytracer(sceneObj, integratorInst, req.Width, req.Height, renderer.DefaultConfig(), logger)
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	buf, stats, err := raytracer.RenderPassContext(ctx)
	if err != nil {
		return nil, err
	}
	return &renderResult{buffer: buf, stats: stats, elapsed: time.Since(startTime)}, nil
}

// writeRenderError maps render errors to HTTP status codes
func (s *Server) writeRenderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrUnknownScene), errors.Is(err, core.ErrUnknownShading), errors.Is(err, core.ErrInvalidResolution):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Printf("Render cancelled: %v", err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("Render error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:   config.DefaultScene,
		Shading: integrator.ShadingPhong,
		Format:  imageio.FormatPNG,
	}

	if sceneID := query.Get("scene"); sceneID != "" {
		if _, err := scene.Lookup(sceneID); err != nil {
			return nil, err
		}
		req.Scene = sceneID
	}

	var err error
	if shading := query.Get("shading"); shading != "" {
		if req.Shading, err = integrator.ParseShading(shading); err != nil {
			return nil, err
		}
	}
	if format := query.Get("format"); format != "" {
		if req.Format, err = imageio.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	if req.Width, err = parseIntParam(query, "width", config.DefaultWidth, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", config.DefaultHeight, minDimension, maxDimension); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(query, "gamma", config.DefaultGamma, 0.1, 10); err != nil {
		return nil, err
	}

	return req, nil
}

// renderID names a render in server logs
func renderID(req *RenderRequest) string {
	return fmt.Sprintf("%s/%s/%dx%d", req.Scene, req.Shading, req.Width, req.Height)
}
