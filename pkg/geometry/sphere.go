package geometry

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material *material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

func (s *Sphere) isShape() {}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(s.Center, s.Radius, s.Material, ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

// hitSphere solves the ray-sphere quadratic, trying the nearer root first
func hitSphere(center core.Vec3, radius float64, mat *material.Material, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !inRange(root, tMin, tMax) {
		root = (-halfB + sqrtD) / a
		if !inRange(root, tMin, tMax) {
			return nil, false
		}
	}

	point := ray.At(root)
	normal := point.Subtract(center).Multiply(1.0 / radius)
	u, v := SphereUV(normal)

	return &material.HitRecord{
		T:        root,
		Point:    point,
		Normal:   normal,
		UV:       core.NewVec2(u, v),
		Material: mat,
	}, true
}

// SphereUV maps a point on the unit sphere to texture coordinates
func SphereUV(p core.Vec3) (u, v float64) {
	phi := math.Atan2(p.Z, p.X)
	theta := math.Asin(math.Max(-1, math.Min(1, p.Y)))
	u = 1 - (phi+math.Pi)/(2*math.Pi)
	v = (theta + math.Pi/2) / math.Pi
	return u, v
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}
