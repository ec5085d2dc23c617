package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Shading     string `json:"shading"`     // Shading model the scene was designed for
}

type entry struct {
	info    SceneInfo
	factory func() (*Scene, error)
}

var builtins = map[string]entry{
	"phong": {
		info: SceneInfo{
			ID:          "phong",
			DisplayName: "Phong Spheres",
			Description: "Red, green and blue spheres over a grey ground plane with a hard shadow",
			Shading:     "phong",
		},
		factory: NewPhongScene,
	},
	"flat": {
		info: SceneInfo{
			ID:          "flat",
			DisplayName: "Flat Spheres",
			Description: "White silhouettes of three spheres and the ground plane",
			Shading:     "flat",
		},
		factory: NewFlatScene,
	},
	"ground": {
		info: SceneInfo{
			ID:          "ground",
			DisplayName: "Ground Plane",
			Description: "Only the ground plane, lit by the point light below the horizon",
			Shading:     "phong",
		},
		factory: NewGroundPlaneScene,
	},
}

// List returns the built-in scenes sorted by ID
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtins))
	for _, e := range builtins {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Names returns the IDs of the built-in scenes
func Names() []string {
	infos := List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.ID
	}
	return names
}

// Lookup returns the description of a built-in scene
func Lookup(id string) (SceneInfo, error) {
	e, ok := builtins[id]
	if !ok {
		return SceneInfo{}, fmt.Errorf("scene %q: %w", id, core.ErrUnknownScene)
	}
	return e.info, nil
}

// Create builds a fresh instance of a built-in scene
func Create(id string) (*Scene, error) {
	e, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w", id, core.ErrUnknownScene)
	}
	return e.factory()
}
