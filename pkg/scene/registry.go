package scene

import (
	"fmt"
	"sort"
)

// Options carries the inputs shared by scene builders
type Options struct {
	Seed        int64  // Seeds object placement and Perlin tables
	TexturePath string // Image file for the earth scene, empty for a generated texture
}

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type builder struct {
	info  SceneInfo
	build func(Options) (*Scene, error)
}

var builtins = map[string]builder{
	"random": {
		SceneInfo{"random", "Random Spheres", "Checkered ground with moving diffuse, metal and glass spheres"},
		func(o Options) (*Scene, error) { return NewRandomScene(o.Seed), nil },
	},
	"perlin": {
		SceneInfo{"perlin", "Perlin Spheres", "Two marble spheres under a sky gradient"},
		func(o Options) (*Scene, error) { return NewPerlinScene(o.Seed), nil },
	},
	"earth": {
		SceneInfo{"earth", "Earth", "Image textured sphere"},
		NewEarthScene,
	},
	"simple-light": {
		SceneInfo{"simple-light", "Simple Light", "Marble spheres lit by a sphere and a rectangle light"},
		func(o Options) (*Scene, error) { return NewSimpleLightScene(o.Seed), nil },
	},
	"cornell": {
		SceneInfo{"cornell", "Cornell Box", "Enclosed box with a ceiling light and two rotated boxes"},
		func(o Options) (*Scene, error) { return NewCornellScene(), nil },
	},
}

// ListScenes returns all built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the named scene
func Create(name string, opts Options) (*Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	s, err := b.build(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
	}
	s.Name = name
	return s, nil
}
