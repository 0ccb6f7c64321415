package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned by Create for unregistered scene IDs
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
}

type sceneEntry struct {
	info    SceneInfo
	builder func() *Scene
}

var builtInScenes = map[string]sceneEntry{
	"default": {
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Three spheres lit by two overhead lights",
		},
		builder: NewDefaultScene,
	},
	"single-sphere": {
		info: SceneInfo{
			ID:          "single-sphere",
			DisplayName: "Single Sphere",
			Description: "One sphere straight ahead with a light in front of it",
		},
		builder: NewSingleSphereScene,
	},
	"planes": {
		info: SceneInfo{
			ID:          "planes",
			DisplayName: "Spheres and Planes",
			Description: "Default spheres on a floor in front of a back wall",
		},
		builder: NewPlanesScene,
	},
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, entry := range builtInScenes {
		scenes = append(scenes, entry.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})

	return scenes
}

// Create builds a fresh instance of the named scene
func Create(id string) (*Scene, error) {
	entry, ok := builtInScenes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return entry.builder(), nil
}
