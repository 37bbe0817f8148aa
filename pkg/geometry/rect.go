package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// rectPadding gives flat rectangles a non-zero thickness in their bounding box
const rectPadding = 1e-4

// Plane identifies the orientation of an axis-aligned rectangle
type Plane int

const (
	PlaneXY Plane = iota // fixed Z
	PlaneXZ              // fixed Y
	PlaneYZ              // fixed X
)

// axes returns the in-plane axes (a, b) and the fixed axis
func (p Plane) axes() (a, b, fixed int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

// Rect is an axis-aligned rectangle spanning [A0,A1]x[B0,B1] on its plane at
// coordinate K along the fixed axis. Its normal is the positive fixed axis.
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material *material.Material
}

// NewXYRect creates a rectangle on the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: mat}
}

// NewXZRect creates a rectangle on the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: mat}
}

// NewYZRect creates a rectangle on the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, mat *material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: mat}
}

func (r *Rect) isShape() {}

// Hit intersects the ray with the rectangle's plane and checks the 2D extent
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	aAxis, bAxis, fixed := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(fixed)) / ray.Direction.Axis(fixed)
	if !inRange(t, tMin, tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   r.normal(),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}, true
}

// BoundingBox returns the rectangle's extent padded along the fixed axis
func (r *Rect) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	switch r.Plane {
	case PlaneXY:
		return core.NewAABB(
			core.NewVec3(r.A0, r.B0, r.K-rectPadding),
			core.NewVec3(r.A1, r.B1, r.K+rectPadding),
		), true
	case PlaneXZ:
		return core.NewAABB(
			core.NewVec3(r.A0, r.K-rectPadding, r.B0),
			core.NewVec3(r.A1, r.K+rectPadding, r.B1),
		), true
	default:
		return core.NewAABB(
			core.NewVec3(r.K-rectPadding, r.A0, r.B0),
			core.NewVec3(r.K+rectPadding, r.A1, r.B1),
		), true
	}
}

func (r *Rect) normal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}
