package texture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

func TestPerlin_DeterministicForSeed(t *testing.T) {
	a := NewSeededPerlin(42)
	b := NewSeededPerlin(42)

	points := []core.Vec3{
		core.NewVec3(0.3, 1.7, -2.2),
		core.NewVec3(100.5, -33.25, 7.125),
		core.NewVec3(-0.01, 0.02, 0.03),
	}
	for _, p := range points {
		if a.Noise(p) != b.Noise(p) {
			t.Errorf("Noise at %v differs between equal seeds", p)
		}
	}
}

func TestPerlin_NoiseBounded(t *testing.T) {
	perlin := NewSeededPerlin(1)
	random := rand.New(rand.NewSource(99))

	for i := 0; i < 5000; i++ {
		p := core.NewVec3(
			(random.Float64()-0.5)*1000,
			(random.Float64()-0.5)*1000,
			(random.Float64()-0.5)*1000,
		)
		n := perlin.Noise(p)
		if math.IsNaN(n) || n < -1.0 || n > 1.0 {
			t.Fatalf("Noise at %v out of [-1,1]: %f", p, n)
		}
	}
}

func TestPerlin_ZeroAtLatticePoints(t *testing.T) {
	perlin := NewSeededPerlin(3)
	// Every corner offset is zero at an integer lattice point
	for _, p := range []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(5, -3, 12)} {
		if n := perlin.Noise(p); math.Abs(n) > 1e-12 {
			t.Errorf("Expected zero noise at lattice point %v, got %f", p, n)
		}
	}
}

func TestPerlin_TurbulenceNonNegative(t *testing.T) {
	perlin := NewSeededPerlin(5)
	random := rand.New(rand.NewSource(11))

	for i := 0; i < 2000; i++ {
		p := core.NewVec3(random.NormFloat64()*10, random.NormFloat64()*10, random.NormFloat64()*10)
		for _, depth := range []int{1, 3, 7} {
			if turb := perlin.Turbulence(p, depth); turb < 0 {
				t.Fatalf("Turbulence at %v depth %d negative: %f", p, depth, turb)
			}
		}
	}
}

func TestPerlin_GradientsAreUnit(t *testing.T) {
	perlin := NewSeededPerlin(8)
	for i, g := range perlin.gradients {
		if math.Abs(g.Length()-1) > 1e-9 {
			t.Fatalf("Gradient %d not unit length: %v", i, g)
		}
	}
}
