package server

import (
	"fmt"
	"math"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/integrator"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Shadowed     bool                   `json:"shadowed"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.SurfaceInteraction
	Shape     geometry.Shape // The shape that was hit
	Color     core.Vec3      // Shaded color of the pixel
	Info      integrator.RayInfo
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo describes a Phong material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	return map[string]interface{}{
		"ambient":   vecArray(mat.Ambient),
		"diffuse":   vecArray(mat.Diffuse),
		"specular":  vecArray(mat.Specular),
		"shininess": mat.Shininess,
		"color": fmt.Sprintf("#%02x%02x%02x",
			int(math.Min(mat.Diffuse.X, 1)*255), int(math.Min(mat.Diffuse.Y, 1)*255), int(math.Min(mat.Diffuse.Z, 1)*255)),
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.Plane:
		properties["normal"] = vecArray(geom.Normal)
		properties["d"] = geom.D
		return "plane", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the primary ray of a pixel and reports the nearest object.
// Pixel coordinates are in image space with y = 0 at the top.
func inspectPixel(sceneObj *scene.Scene, integratorInst integrator.Integrator, width, height, pixelX, pixelY int) (InspectResult, error) {
	// Image rows are flipped relative to the buffer
	x, y := renderer.ImagePlanePoint(pixelX, height-1-pixelY, width, height)
	ray, err := sceneObj.Camera.GetRay(x, y)
	if err != nil {
		return InspectResult{}, err
	}

	color, info := integratorInst.RayColor(ray, sceneObj, 0, math.Inf(1))
	hit, isHit := sceneObj.ClosestHit(ray, 0, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false, Color: color, Info: info}, nil
	}

	// Find the specific shape that was hit; the first one at the nearest t wins
	var hitShape geometry.Shape
	for _, shape := range sceneObj.Shapes {
		if shapeHit, ok := shape.Hit(ray, 0, math.Inf(1)); ok && shapeHit.T == hit.T {
			hitShape = shape
			break
		}
	}

	return InspectResult{
		Hit:       true,
		HitRecord: hit,
		Shape:     hitShape,
		Color:     color,
		Info:      info,
	}, nil
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := parseIntParam(r.URL.Query(), "x", -1, 0, req.Width-1)
	if err != nil || pixelX < 0 {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := parseIntParam(r.URL.Query(), "y", -1, 0, req.Height-1)
	if err != nil || pixelY < 0 {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	integratorInst, err := integrator.New(req.Shading)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := inspectPixel(sceneObj, integratorInst, req.Width, req.Height, pixelX, pixelY)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false, Color: vecArray(result.Color)})
		return
	}

	geometryType, geometryProps := extractGeometryInfo(result.Shape)
	response := InspectResponse{
		Hit:          true,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Shadowed:     result.Info.Shadowed,
		Color:        vecArray(result.Color),
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(result.HitRecord.Material),
			"geometry": geometryProps,
		},
	}
	writeJSON(w, http.StatusOK, response)
}
