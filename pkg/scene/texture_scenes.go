package scene

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/integrator"
	"github.com/df07/go-nextweek-raytracer/pkg/loaders"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
	"github.com/df07/go-nextweek-raytracer/pkg/renderer"
	"github.com/df07/go-nextweek-raytracer/pkg/texture"
)

// marbleSpheres returns a marble ground and a marble sphere sharing one Perlin table
func marbleSpheres(seed int64) []geometry.Shape {
	marble := material.NewDiffuse(texture.NewNoise(texture.NewSeededPerlin(seed), 4))
	return []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewPerlinScene creates two marble spheres under a sky gradient
func NewPerlinScene(seed int64) *Scene {
	s := &Scene{
		CameraConfig:   standardCamera(0),
		Shapes:         marbleSpheres(seed),
		Background:     integrator.SkyGradient,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
	s.SetResolution(400, 200)
	return s
}

// NewSimpleLightScene lights the marble spheres with an emissive sphere and rectangle in a black sky
func NewSimpleLightScene(seed int64) *Scene {
	light := material.NewLightColor(core.NewVec3(4, 4, 4))
	shapes := append(marbleSpheres(seed),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
	)

	camera := standardCamera(0)
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)

	sampling := renderer.DefaultSamplingConfig()
	sampling.SamplesPerPixel = 400

	s := &Scene{
		CameraConfig:   camera,
		Shapes:         shapes,
		Background:     integrator.Black,
		SamplingConfig: sampling,
	}
	s.SetResolution(400, 200)
	return s
}

// NewEarthScene wraps an image around a sphere. Without a texture file a generated latitude map is used.
func NewEarthScene(opts Options) (*Scene, error) {
	var tex *texture.Texture
	if opts.TexturePath != "" {
		data, err := loaders.LoadImage(opts.TexturePath)
		if err != nil {
			return nil, err
		}
		tex = data.Texture()
	} else {
		tex = generatedEarth(64, 32).Texture()
	}

	s := &Scene{
		CameraConfig: standardCamera(0),
		Shapes: []geometry.Shape{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewDiffuse(tex)),
		},
		Background:     integrator.SkyGradient,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
	s.SetResolution(400, 200)
	return s, nil
}

// generatedEarth builds a stand-in map: ice caps, blue ocean bands and green land stripes by longitude
func generatedEarth(width, height int) *loaders.ImageData {
	pixels := make([]byte, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			switch {
			case y < height/8 || y >= height-height/8:
				pixels = append(pixels, 240, 240, 250)
			case (x/max(1, width/8))%2 == 0:
				pixels = append(pixels, 40, byte(120+y), 50)
			default:
				pixels = append(pixels, 20, 60, byte(150+y))
			}
		}
	}
	return &loaders.ImageData{Width: width, Height: height, Pixels: pixels}
}
