package material

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
)

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Unit surface normal at intersection
	T        float64   // Parameter t along the ray
	UV       core.Vec2 // Surface coordinates
	Material *Material // Material of the hit object
}
