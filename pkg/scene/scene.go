package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Width          int // Image width
	Height         int // Image height
	CameraConfig   renderer.CameraConfig
	Camera         *renderer.Camera
	Shapes         []geometry.Shape // Objects in the scene
	World          integrator.World // Acceleration structure built by Preprocess
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
}

// SetResolution changes the image size and keeps the camera aspect ratio in sync
func (s *Scene) SetResolution(width, height int) {
	s.Width = width
	s.Height = height
	if height > 0 {
		s.CameraConfig.AspectRatio = float64(width) / float64(height)
	}
}

// Preprocess builds the camera and the BVH over all shapes
func (s *Scene) Preprocess(random *rand.Rand) error {
	camera, err := renderer.NewCamera(s.CameraConfig)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.Camera = camera

	bvh, err := geometry.NewBVH(s.Shapes, s.CameraConfig.Time0, s.CameraConfig.Time1, random)
	if err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	s.World = bvh

	if s.Background == nil {
		s.Background = integrator.Black
	}
	return nil
}

// GetPrimitiveCount returns the number of top level shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() integrator.World {
	return s.World
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}
