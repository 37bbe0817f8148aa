package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Shape is implemented by every primitive, transform wrapper and aggregate.
// The set of shapes is closed to this package.
type Shape interface {
	// Hit returns the closest intersection with t strictly inside (tMin, tMax)
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the shape over the shutter interval [t0, t1],
	// or false if the shape has no finite bounds
	BoundingBox(t0, t1 float64) (core.AABB, bool)

	isShape()
}

// inRange reports whether t lies strictly inside (tMin, tMax); NaN is never in range
func inRange(t, tMin, tMax float64) bool {
	return t > tMin && t < tMax
}
