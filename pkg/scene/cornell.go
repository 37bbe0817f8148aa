package scene

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
)

// cornellSize is the side length of the standard Cornell box
const cornellSize = 555.0

// NewCornellScene creates the classic Cornell box: inward-facing walls, a ceiling light and two rotated boxes
func NewCornellScene() *Scene {
	red := material.NewDiffuseColor(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewDiffuseColor(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewDiffuseColor(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewLightColor(core.NewVec3(15, 15, 15))

	shapes := []geometry.Shape{
		geometry.NewFlipNormals(geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green)), // Left wall
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),                                      // Right wall
		geometry.NewXZRect(213, 343, 227, 332, cornellSize-1, light),                                    // Ceiling light
		geometry.NewFlipNormals(geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white)), // Ceiling
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),                                    // Floor
		geometry.NewFlipNormals(geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white)), // Back wall
	}

	shortBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	tallBox := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	shapes = append(shapes,
		geometry.NewTranslate(geometry.NewRotateY(shortBox, -18), core.NewVec3(130, 0, 65)),
		geometry.NewTranslate(geometry.NewRotateY(tallBox, 15), core.NewVec3(265, 0, 295)),
	)

	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Outside the open front of the box
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 200

	s := &Scene{
		CameraConfig:   camera,
		Shapes:         shapes,
		Background:     integrator.Black, // Lit only by the ceiling light
		SamplingConfig: sampling,
	}
	s.SetResolution(400, 400)
	return s
}
