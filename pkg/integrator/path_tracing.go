package integrator

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// DefaultMaxDepth is the bounce limit used when none is configured
const DefaultMaxDepth = 50

// shadowEpsilon keeps scattered rays from re-hitting their own origin
const shadowEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a path tracer that stops scattering after maxDepth bounces
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, background Background, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, background, sampler, 0)
}

// rayColor returns emitted + attenuation * incoming while depth is below the limit,
// and only the emitted light once the material absorbs or the limit is reached
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world World, background Background, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, shadowEpsilon, math.Inf(1))
	if !isHit {
		return background(ray)
	}

	emitted := hit.Material.Emitted(hit.UV.X, hit.UV.Y, hit.Point)
	if depth >= pt.maxDepth {
		return emitted
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := pt.rayColor(scatter.Scattered, world, background, sampler, depth+1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
