package material

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/texture"
)

// Kind identifies a material variant
type Kind int

const (
	KindDiffuse Kind = iota
	KindMetal
	KindGlass
	KindLight
)

// String returns the variant name
func (k Kind) String() string {
	switch k {
	case KindDiffuse:
		return "diffuse"
	case KindMetal:
		return "metal"
	case KindGlass:
		return "glass"
	case KindLight:
		return "light"
	default:
		return "unknown"
	}
}

// Material describes how a surface scatters or emits light.
// Materials are immutable and shared by pointer across shapes.
type Material struct {
	Kind Kind

	Texture *texture.Texture // Diffuse albedo, Light emission

	Albedo core.Vec3 // Metal
	Fuzz   float64   // Metal, 0 = perfect mirror

	RefractiveIndex float64 // Glass
}

// NewDiffuse creates a lambertian material with a textured albedo
func NewDiffuse(albedo *texture.Texture) *Material {
	return &Material{Kind: KindDiffuse, Texture: albedo}
}

// NewDiffuseColor creates a lambertian material with a solid albedo
func NewDiffuseColor(albedo core.Vec3) *Material {
	return NewDiffuse(texture.NewSolid(albedo))
}

// NewMetal creates a metal material; fuzz is clamped to at most 1
func NewMetal(albedo core.Vec3, fuzz float64) *Material {
	return &Material{Kind: KindMetal, Albedo: albedo, Fuzz: math.Min(fuzz, 1.0)}
}

// NewGlass creates a dielectric with the given refractive index
func NewGlass(refractiveIndex float64) *Material {
	return &Material{Kind: KindGlass, RefractiveIndex: refractiveIndex}
}

// NewLight creates an emissive material
func NewLight(emit *texture.Texture) *Material {
	return &Material{Kind: KindLight, Texture: emit}
}

// NewLightColor creates an emissive material with a constant emission
func NewLightColor(emit core.Vec3) *Material {
	return NewLight(texture.NewSolid(emit))
}

// Scatter returns the attenuation and outgoing ray for rayIn hitting the surface,
// or false if the ray is absorbed
func (m *Material) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindDiffuse:
		return m.scatterDiffuse(rayIn, hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindGlass:
		return m.scatterGlass(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

// Emitted returns emitted radiance; black for everything but lights
func (m *Material) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	if m.Kind != KindLight {
		return core.Vec3{}
	}
	return m.Texture.Value(u, v, point)
}

func (m *Material) scatterDiffuse(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, target.Subtract(hit.Point), rayIn.Time),
		Attenuation: m.Texture.Value(hit.UV.X, hit.UV.Y, hit.Point),
	}, true
}

func (m *Material) scatterMetal(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	direction := reflected.Add(core.RandomInUnitSphere(sampler).Multiply(m.Fuzz))
	scattered := core.NewRayAt(hit.Point, direction, rayIn.Time)

	// Perturbed below the surface: absorbed
	if direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}
	return ScatterResult{Scattered: scattered, Attenuation: m.Albedo}, true
}

func (m *Material) scatterGlass(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	attenuation := core.NewVec3(1, 1, 1)
	reflected := Reflect(rayIn.Direction, hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dot := rayIn.Direction.Dot(hit.Normal)
	if dot > 0 {
		// Exiting the material
		outwardNormal = hit.Normal.Negate()
		niOverNt = m.RefractiveIndex
		cosine = m.RefractiveIndex * dot / rayIn.Direction.Length()
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / m.RefractiveIndex
		cosine = -dot / rayIn.Direction.Length()
	}

	direction := reflected
	if refracted, ok := Refract(rayIn.Direction, outwardNormal, niOverNt); ok {
		if sampler.Get1D() >= Schlick(cosine, m.RefractiveIndex) {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
		Attenuation: attenuation,
	}, true
}

// Reflect mirrors v about the normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with normal n using Snell's law.
// It reports false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick approximates Fresnel reflectance for the given incidence cosine
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
