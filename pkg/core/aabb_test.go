package core

import (
	"math"
	"testing"
)

func TestAABB_HitThroughCenter(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		origin    Vec3
		direction Vec3
	}{
		{"positive X", NewVec3(-5, 0, 0), NewVec3(1, 0, 0)},
		{"negative X", NewVec3(5, 0, 0), NewVec3(-1, 0, 0)},
		{"positive Y", NewVec3(0, -5, 0), NewVec3(0, 1, 0)},
		{"negative Z", NewVec3(0, 0, 5), NewVec3(0, 0, -1)},
		{"diagonal", NewVec3(-5, -5, -5), NewVec3(1, 1, 1)},
		{"negative diagonal", NewVec3(4, 3, -2), NewVec3(-4, -3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction)
			if !box.Hit(ray, 0.001, math.Inf(1)) {
				t.Errorf("Expected ray from %v along %v to hit box", tt.origin, tt.direction)
			}
		})
	}
}

func TestAABB_Miss(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		origin    Vec3
		direction Vec3
	}{
		{"parallel outside slab", NewVec3(-5, 2, 0), NewVec3(1, 0, 0)},
		{"pointing away", NewVec3(-5, 0, 0), NewVec3(-1, 0, 0)},
		{"skew miss", NewVec3(-5, 3, 3), NewVec3(1, 0.1, 0.1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := NewRay(tt.origin, tt.direction)
			if box.Hit(ray, 0.001, math.Inf(1)) {
				t.Errorf("Expected ray from %v along %v to miss box", tt.origin, tt.direction)
			}
		})
	}
}

func TestAABB_HitRespectsInterval(t *testing.T) {
	box := NewAABB(NewVec3(4, -1, -1), NewVec3(6, 1, 1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0))

	if box.Hit(ray, 0.001, 3.0) {
		t.Error("Expected miss when box lies beyond tMax")
	}
	if !box.Hit(ray, 0.001, 5.0) {
		t.Error("Expected hit when interval overlaps box")
	}
}

func TestSurroundingBox_ContainsBoth(t *testing.T) {
	a := NewAABB(NewVec3(-1, 0, 2), NewVec3(1, 3, 4))
	b := NewAABB(NewVec3(-3, 1, -2), NewVec3(0, 5, 1))

	s := SurroundingBox(a, b)
	if !s.Contains(a) || !s.Contains(b) {
		t.Fatalf("Surrounding box %v should contain %v and %v", s, a, b)
	}
	for _, corner := range a.Corners() {
		if corner.X < s.Min.X || corner.Y < s.Min.Y || corner.Z < s.Min.Z ||
			corner.X > s.Max.X || corner.Y > s.Max.Y || corner.Z > s.Max.Z {
			t.Errorf("Corner %v of a escapes %v", corner, s)
		}
	}

	expected := NewAABB(NewVec3(-3, 0, -2), NewVec3(1, 5, 4))
	if !s.Min.Equals(expected.Min) || !s.Max.Equals(expected.Max) {
		t.Errorf("Expected %v, got %v", expected, s)
	}
}

func TestAABB_FromBoxesAndPoints(t *testing.T) {
	box := NewAABBFromBoxes(
		NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1)),
		NewAABB(NewVec3(-2, 0.5, 0), NewVec3(0, 2, 0.5)),
	)
	if !box.Min.Equals(NewVec3(-2, 0, 0)) || !box.Max.Equals(NewVec3(1, 2, 1)) {
		t.Errorf("Unexpected union %v", box)
	}

	points := NewAABBFromPoints(NewVec3(1, -1, 3), NewVec3(-1, 2, 0))
	if !points.Min.Equals(NewVec3(-1, -1, 0)) || !points.Max.Equals(NewVec3(1, 2, 3)) {
		t.Errorf("Unexpected point bounds %v", points)
	}
	if !points.IsValid() {
		t.Error("Point bounds should be valid")
	}
}
