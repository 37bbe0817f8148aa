package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// FlipNormals reverses the normal reported by the wrapped shape
type FlipNormals struct {
	Shape Shape
}

// NewFlipNormals wraps shape so that its normals point the other way
func NewFlipNormals(shape Shape) *FlipNormals {
	return &FlipNormals{Shape: shape}
}

func (f *FlipNormals) isShape() {}

// Hit delegates to the wrapped shape and negates the normal
func (f *FlipNormals) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Shape.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox is the wrapped shape's box
func (f *FlipNormals) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return f.Shape.BoundingBox(t0, t1)
}
