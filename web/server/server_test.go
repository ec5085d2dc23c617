package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewServer(0).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Unexpected health response %d %v", resp.StatusCode, body)
	}
}

func TestHandleScenes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var infos []scene.SceneInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if len(infos) != len(scene.List()) {
		t.Errorf("Expected %d scenes, got %d", len(scene.List()), len(infos))
	}
}

func TestHandleRender(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=phong&shading=phong&width=32&height=24")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 24 {
		t.Errorf("Expected 32x24 image, got %v", img.Bounds())
	}
}

func TestHandleRenderFormats(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		format      string
		contentType string
	}{
		{"webp", "image/webp"},
		{"tga", "image/x-tga"},
		{"bmp", "image/bmp"},
		{"tiff", "image/tiff"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render?scene=flat&shading=flat&width=8&height=8&format=" + tt.format)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected 200, got %d", resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != tt.contentType {
				t.Errorf("Expected %q, got %q", tt.contentType, ct)
			}
		})
	}
}

func TestHandleRenderBadRequests(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"unknown scene", "scene=nope"},
		{"unknown shading", "shading=toon"},
		{"unknown format", "format=gif"},
		{"zero width", "width=0"},
		{"huge height", "height=100000"},
		{"non-numeric width", "width=wide"},
		{"bad gamma", "gamma=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render?" + tt.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestHandleStats(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/stats?scene=phong&width=16&height=16")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	var body StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}

	if body.Stats.TotalPixels != 256 || body.Stats.RaysCast != 256 {
		t.Errorf("Unexpected stats %+v", body.Stats)
	}
	if body.Stats.Hits == 0 {
		t.Error("Expected some hits")
	}
	if len(body.Console) == 0 {
		t.Error("Expected render log messages in console")
	}
	if body.Request.Width != 16 || body.Request.Scene != "phong" {
		t.Errorf("Unexpected echoed request %+v", body.Request)
	}
}

func TestRenderCancelled(t *testing.T) {
	s := NewServer(0)
	req := httptest.NewRequest(http.MethodGet, "/api/render?width=64&height=64", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()

	rec := httptest.NewRecorder()
	s.handleRender(rec, req.WithContext(ctx))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503 for a cancelled render, got %d", rec.Code)
	}
}

func TestHandleInspect(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name         string
		query        string
		hit          bool
		geometryType string
	}{
		// Image center looks straight at the green sphere
		{"center sphere", "x=16&y=16", true, "sphere"},
		// Bottom row looks down at the ground
		{"ground", "x=0&y=31", true, "plane"},
		// Top row looks over everything
		{"sky", "x=0&y=0", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/inspect?scene=phong&width=32&height=32&" + tt.query)
			if err != nil {
				t.Fatalf("GET failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Fatalf("Expected 200, got %d", resp.StatusCode)
			}

			var body InspectResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if body.Hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, body.Hit)
			}
			if body.GeometryType != tt.geometryType {
				t.Errorf("Expected geometry %q, got %q", tt.geometryType, body.GeometryType)
			}
		})
	}
}

func TestHandleInspectBadCoordinates(t *testing.T) {
	ts := newTestServer(t)

	for _, query := range []string{"x=5", "y=5", "x=-1&y=0", "x=0&y=32", "x=a&y=0"} {
		resp, err := http.Get(ts.URL + "/api/inspect?width=32&height=32&" + query)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Query %q: expected 400, got %d", query, resp.StatusCode)
		}
	}
}

func TestInspectMatchesRender(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=flat&shading=flat&width=8&height=8")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	var data bytes.Buffer
	data.ReadFrom(resp.Body)
	resp.Body.Close()

	img, err := png.Decode(&data)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}

	// Image row 7 is the bottom row and sees the white ground
	r, g, b, _ := img.At(3, 7).RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("Expected white ground at bottom row, got (%d, %d, %d)", r, g, b)
	}
	// Image row 0 is the top row and sees the background
	r, g, b, _ = img.At(3, 0).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black background at top row, got (%d, %d, %d)", r, g, b)
	}
}
