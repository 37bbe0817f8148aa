package texture

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// Kind identifies a texture variant
type Kind int

const (
	KindSolid Kind = iota
	KindChecker
	KindNoise
	KindImage
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindSolid:
		return "solid"
	case KindChecker:
		return "checker"
	case KindNoise:
		return "noise"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// turbulenceDepth is the number of octaves used by marble noise
const turbulenceDepth = 7

// Texture is a color function over surface coordinates and world position.
// Only the fields relevant to Kind are populated.
type Texture struct {
	Kind Kind

	Color core.Vec3 // Solid

	Odd  *Texture // Checker, used where the sine product is negative
	Even *Texture // Checker

	Scale  float64 // Noise
	Perlin *Perlin // Noise

	Pixels []byte // Image, packed RGB rows from top to bottom
	Width  int    // Image
	Height int    // Image
}

// NewSolid creates a constant color texture
func NewSolid(color core.Vec3) *Texture {
	return &Texture{Kind: KindSolid, Color: color}
}

// NewChecker creates a 3D checkerboard alternating between odd and even
func NewChecker(odd, even *Texture) *Texture {
	return &Texture{Kind: KindChecker, Odd: odd, Even: even}
}

// NewNoise creates a marble texture driven by perlin turbulence
func NewNoise(perlin *Perlin, scale float64) *Texture {
	return &Texture{Kind: KindNoise, Perlin: perlin, Scale: scale}
}

// NewImage creates a texture backed by a packed RGB byte buffer of width*height*3 bytes
func NewImage(pixels []byte, width, height int) *Texture {
	return &Texture{Kind: KindImage, Pixels: pixels, Width: width, Height: height}
}

// Value returns the texture color at surface coordinates (u, v) and point p
func (t *Texture) Value(u, v float64, p core.Vec3) core.Vec3 {
	switch t.Kind {
	case KindSolid:
		return t.Color
	case KindChecker:
		sines := math.Sin(10*p.X) * math.Sin(10*p.Y) * math.Sin(10*p.Z)
		if sines < 0 {
			return t.Odd.Value(u, v, p)
		}
		return t.Even.Value(u, v, p)
	case KindNoise:
		gray := 0.5 * (1 + math.Sin(t.Scale*p.Z+10*t.Perlin.Turbulence(p, turbulenceDepth)))
		return core.NewVec3(gray, gray, gray)
	case KindImage:
		return t.imageValue(u, v)
	default:
		return core.Vec3{}
	}
}

// imageValue does a nearest-neighbor lookup; v runs bottom-to-top while rows run top-to-bottom
func (t *Texture) imageValue(u, v float64) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < 3*t.Width*t.Height {
		return core.NewVec3(0, 1, 1)
	}

	i := clampIndex(int(u*float64(t.Width)), t.Width)
	j := clampIndex(int((1-v)*float64(t.Height)-0.001), t.Height)

	offset := 3*i + 3*t.Width*j
	const scale = 1.0 / 255.0
	return core.NewVec3(
		float64(t.Pixels[offset])*scale,
		float64(t.Pixels[offset+1])*scale,
		float64(t.Pixels[offset+2])*scale,
	)
}

func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i > size-1 {
		return size - 1
	}
	return i
}
