package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/geometry"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// countingWorld records how many intersection queries the integrator makes
type countingWorld struct {
	world World
	calls int
}

func (c *countingWorld) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	c.calls++
	return c.world.Hit(ray, tMin, tMax)
}

func TestSkyGradient(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon", core.NewVec3(0, 0, -3), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SkyGradient(core.NewRay(core.Vec3{}, tt.direction))
			if !got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRayColor_MissReturnsBackground(t *testing.T) {
	world := geometry.NewShapeList()
	pt := NewPathTracingIntegrator(DefaultMaxDepth)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))
	got := pt.RayColor(ray, world, SkyGradient, core.NewSeededSampler(1))
	if !got.ApproxEquals(core.NewVec3(0.5, 0.7, 1.0), 1e-12) {
		t.Errorf("Expected sky color, got %v", got)
	}
}

func TestRayColor_MirrorOverGroundDepthOne(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	ground := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewDiffuseColor(core.NewVec3(1, 1, 1)))
	mirror := geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewMetal(albedo, 0))
	world := &countingWorld{world: geometry.NewShapeList(ground, mirror)}

	pt := NewPathTracingIntegrator(1)
	// Hits the mirror head on and reflects straight back out to the sky
	ray := core.NewRay(core.NewVec3(0, 1, 5), core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, world, SkyGradient, core.NewSeededSampler(42))

	expected := core.NewVec3(0.75, 0.85, 1.0).MultiplyVec(albedo)
	if !got.ApproxEquals(expected, 1e-9) {
		t.Errorf("Expected attenuated sky %v, got %v", expected, got)
	}
	if world.calls > 2 {
		t.Errorf("Expected at most 2 integrator calls, got %d", world.calls)
	}
}

func TestRayColor_DepthLimitReturnsEmittedOnly(t *testing.T) {
	diffuse := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewDiffuseColor(core.NewVec3(1, 1, 1)))
	pt := NewPathTracingIntegrator(0)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))
	got := pt.RayColor(ray, diffuse, SkyGradient, core.NewSeededSampler(1))
	if !got.Equals(core.Vec3{}) {
		t.Errorf("Diffuse surface at the depth limit should contribute nothing, got %v", got)
	}

	emission := core.NewVec3(4, 3, 2)
	light := geometry.NewSphere(core.NewVec3(0, 0, -2), 1, material.NewLightColor(emission))
	if got := pt.RayColor(ray, light, SkyGradient, core.NewSeededSampler(1)); !got.Equals(emission) {
		t.Errorf("Light at the depth limit should return its emission %v, got %v", emission, got)
	}
}

func TestRayColor_AbsorbedPathReturnsEmitted(t *testing.T) {
	emission := core.NewVec3(2, 2, 2)
	light := geometry.NewXYRect(-1, 1, -1, 1, -3, material.NewLightColor(emission))
	pt := NewPathTracingIntegrator(DefaultMaxDepth)

	got := pt.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), light, SkyGradient, core.NewSeededSampler(1))
	if !got.Equals(emission) {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

// openRoom builds five inward-facing walls of a unit room with the +Z wall missing
// and a light in the ceiling
func openRoom() *geometry.ShapeList {
	white := material.NewDiffuseColor(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewLightColor(core.NewVec3(15, 15, 15))
	return geometry.NewShapeList(
		geometry.NewYZRect(0, 1, 0, 1, 0, white),
		geometry.NewFlipNormals(geometry.NewYZRect(0, 1, 0, 1, 1, white)),
		geometry.NewXZRect(0, 1, 0, 1, 0, white),
		geometry.NewFlipNormals(geometry.NewXZRect(0, 1, 0, 1, 1, white)),
		geometry.NewXYRect(0, 1, 0, 1, 0, white),
		geometry.NewFlipNormals(geometry.NewXZRect(0.4, 0.6, 0.4, 0.6, 0.999, light)),
	)
}

func TestRayColor_EnclosedSceneEscapeIsBlack(t *testing.T) {
	room := openRoom()
	pt := NewPathTracingIntegrator(DefaultMaxDepth)
	sampler := core.NewSeededSampler(42)

	// Straight out through the gap
	escape := core.NewRay(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0, 0, 1))
	if got := pt.RayColor(escape, room, Black, sampler); !got.Equals(core.Vec3{}) {
		t.Errorf("Escaping ray should be black, got %v", got)
	}

	// Many bounced paths: radiance is never negative and never picks up sky color
	for i := 0; i < 500; i++ {
		direction := core.RandomInUnitSphere(sampler)
		got := pt.RayColor(core.NewRay(core.NewVec3(0.5, 0.5, 0.5), direction), room, Black, sampler)
		if got.X < 0 || got.Y < 0 || got.Z < 0 || math.IsNaN(got.X) {
			t.Fatalf("Invalid radiance %v", got)
		}
		// White walls and a white light keep every channel equal
		if math.Abs(got.X-got.Y) > 1e-9 || math.Abs(got.Y-got.Z) > 1e-9 {
			t.Fatalf("Expected gray radiance without sky contribution, got %v", got)
		}
	}
}

func TestRayColor_DeterministicForSeed(t *testing.T) {
	room := openRoom()
	pt := NewPathTracingIntegrator(DefaultMaxDepth)
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0.9), core.NewVec3(0.1, -0.3, -1))

	a := pt.RayColor(ray, room, Black, core.NewSeededSampler(5))
	b := pt.RayColor(ray, room, Black, core.NewSeededSampler(5))
	if !a.Equals(b) {
		t.Errorf("Same seed should give same radiance: %v vs %v", a, b)
	}
}
