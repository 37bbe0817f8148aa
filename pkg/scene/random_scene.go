package scene

import (
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
	"github.com/df07/go-nextweek-raytracer/pkg/texture"
)

// standardCamera looks at the origin from (13,2,3), shared by the sphere scenes
func standardCamera(aperture float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   2.0,
		Aperture:      aperture,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// NewRandomScene creates a checkered ground covered with small random spheres and three large ones.
// Diffuse spheres bounce upward during the shutter interval.
func NewRandomScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	checker := texture.NewChecker(
		texture.NewSolid(core.NewVec3(0.2, 0.3, 0.1)),
		texture.NewSolid(core.NewVec3(0.9, 0.9, 0.9)),
	)
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewDiffuse(checker)),
	}

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewDiffuseColor(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewGlass(1.5)))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewGlass(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewDiffuseColor(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	s := &Scene{
		CameraConfig:   standardCamera(0.1),
		Shapes:         shapes,
		Background:     integrator.SkyGradient,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
	s.SetResolution(400, 200)
	return s
}
