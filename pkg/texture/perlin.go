package texture

import (
	"math"
	"math/rand"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds the gradient and permutation tables for gradient noise.
// It is immutable once built and safe for concurrent use.
type Perlin struct {
	gradients [perlinPointCount]core.Vec3
	permX     [perlinPointCount]int
	permY     [perlinPointCount]int
	permZ     [perlinPointCount]int
}

// NewPerlin builds noise tables from the given random generator
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		g := core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		)
		// A zero-length draw would make a dead gradient
		for g.LengthSquared() == 0 {
			g = core.NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 2*random.Float64()-1)
		}
		p.gradients[i] = g.Normalize()
	}
	generatePermutation(&p.permX, random)
	generatePermutation(&p.permY, random)
	generatePermutation(&p.permZ, random)
	return p
}

// NewSeededPerlin builds noise tables from a fixed seed
func NewSeededPerlin(seed int64) *Perlin {
	return NewPerlin(rand.New(rand.NewSource(seed)))
}

func generatePermutation(perm *[perlinPointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
}

// Noise returns smoothly varying gradient noise at point
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := point.X - fx
	v := point.Y - fy
	w := point.Z - fz

	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// trilinearInterp blends corner gradients with Hermite-smoothed weights
func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise, doubling frequency and halving
// amplitude each octave. The result is never negative.
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}
