package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Translate moves the wrapped shape by Offset
type Translate struct {
	Shape  Shape
	Offset core.Vec3
}

// NewTranslate wraps shape displaced by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{Shape: shape, Offset: offset}
}

func (tr *Translate) isShape() {}

// Hit moves the ray into the shape's local frame and the hit point back out
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAt(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)
	hit, ok := tr.Shape.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox is the wrapped shape's box moved by Offset
func (tr *Translate) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	box, ok := tr.Shape.BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}
