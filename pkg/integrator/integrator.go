package integrator

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// World is anything a ray can be intersected with: a BVH, a shape list or a single shape
type World interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Background returns the radiance for a ray that escapes the scene
type Background func(ray core.Ray) core.Vec3

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance carried back along one sampled path
	RayColor(ray core.Ray, world World, background Background, sampler core.Sampler) core.Vec3
}

// SkyGradient blends from white at the horizon to light blue overhead
func SkyGradient(ray core.Ray) core.Vec3 {
	return GradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1, 1, 1))(ray)
}

// GradientBackground returns a vertical gradient between bottom and top colors
func GradientBackground(topColor, bottomColor core.Vec3) Background {
	return func(ray core.Ray) core.Vec3 {
		unitDirection := ray.Direction.Normalize()
		// Map y from [-1,1] to [0,1]
		t := 0.5 * (unitDirection.Y + 1.0)
		return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
	}
}

// Black is the background of enclosed scenes lit only by emitters
func Black(core.Ray) core.Vec3 {
	return core.Vec3{}
}
