package geometry

import (
	"math"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// RotateY rotates the wrapped shape about the Y axis
type RotateY struct {
	Shape    Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY wraps shape rotated by angleDegrees about the Y axis.
// The bounding box is computed once over the shutter interval [0, 1].
func NewRotateY(shape Shape, angleDegrees float64) *RotateY {
	radians := angleDegrees * math.Pi / 180
	r := &RotateY{
		Shape:    shape,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := shape.BoundingBox(0, 1)
	if ok {
		var rotated [8]core.Vec3
		for i, corner := range box.Corners() {
			rotated[i] = r.toWorld(corner)
		}
		r.bbox = core.NewAABBFromPoints(rotated[:]...)
		r.hasBox = true
	}

	return r
}

func (r *RotateY) isShape() {}

// toLocal rotates a world vector into the shape's frame
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a local vector back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into the local frame, then rotates the hit point and normal back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	local := core.NewRayAt(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)
	hit, ok := r.Shape.Hit(local, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box precomputed at construction
func (r *RotateY) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}
