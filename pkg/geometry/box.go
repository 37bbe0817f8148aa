package geometry

import (
	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

// Box is an axis-aligned box built from six rectangles sharing one material.
// The faces on the minimum corner are flipped so every normal points outward.
type Box struct {
	Min, Max core.Vec3
	faces    *ShapeList
}

// NewBox creates a box spanning the corners p0 and p1
func NewBox(p0, p1 core.Vec3, mat *material.Material) *Box {
	faces := NewShapeList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, mat),
		NewFlipNormals(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, mat)),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, mat),
		NewFlipNormals(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, mat)),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, mat),
		NewFlipNormals(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, mat)),
	)
	return &Box{Min: p0, Max: p1, faces: faces}
}

func (b *Box) isShape() {}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's own corners
func (b *Box) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
