package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// ShapeList is a flat aggregate tested by linear scan
type ShapeList struct {
	Shapes []Shape
}

// NewShapeList creates a list over the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

func (l *ShapeList) isShape() {}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit returns the nearest hit among all shapes
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox merges every child's box; false if the list is empty or any child is unbounded
func (l *ShapeList) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Shapes) == 0 {
		return core.AABB{}, false
	}

	result, ok := l.Shapes[0].BoundingBox(t0, t1)
	if !ok {
		return core.AABB{}, false
	}
	for _, shape := range l.Shapes[1:] {
		box, ok := shape.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		result = core.SurroundingBox(result, box)
	}
	return result, true
}
