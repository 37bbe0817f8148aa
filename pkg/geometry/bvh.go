package geometry

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-nextweek-raytracer/pkg/core"
	"github.com/df07/go-nextweek-raytracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no shapes
	ErrEmptyBVH = errors.New("bvh: cannot build from an empty shape collection")
	// ErrNoBoundingBox is returned when a shape passed to the BVH has no bounding box
	ErrNoBoundingBox = errors.New("bvh: shape has no bounding box")
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Right is nil for a single-child leaf.
type BVHNode struct {
	Box   core.AABB
	Left  Shape
	Right Shape
}

// NewBVH builds a hierarchy over shapes for the shutter interval [t0, t1].
// Each level splits along an axis chosen uniformly at random by random.
func NewBVH(shapes []Shape, t0, t1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(shapes) == 0 {
		return nil, ErrEmptyBVH
	}

	// Sort a copy so the caller's slice is left alone
	items := make([]bvhItem, len(shapes))
	for i, shape := range shapes {
		box, ok := shape.BoundingBox(t0, t1)
		if !ok {
			return nil, fmt.Errorf("shape %d (%T): %w", i, shape, ErrNoBoundingBox)
		}
		items[i] = bvhItem{shape: shape, box: box}
	}

	return buildBVH(items, random), nil
}

// bvhItem caches a shape's box so it is only computed once during the build
type bvhItem struct {
	shape Shape
	box   core.AABB
}

func buildBVH(items []bvhItem, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].box.Min.Axis(axis) < items[j].box.Min.Axis(axis)
	})

	switch len(items) {
	case 1:
		return &BVHNode{Box: items[0].box, Left: items[0].shape}
	case 2:
		return &BVHNode{
			Box:   core.SurroundingBox(items[0].box, items[1].box),
			Left:  items[0].shape,
			Right: items[1].shape,
		}
	}

	mid := len(items) / 2
	left := buildBVH(items[:mid], random)
	right := buildBVH(items[mid:], random)
	return &BVHNode{
		Box:   core.SurroundingBox(left.Box, right.Box),
		Left:  left,
		Right: right,
	}
}

func (n *BVHNode) isShape() {}

// Hit prunes the whole subtree when the node's box is missed.
// On equal distances the left child wins.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if n.Right == nil {
		return leftHit, hitLeft
	}

	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, closestSoFar); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached box enclosing both children
func (n *BVHNode) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return n.Box, true
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	maxDepth    int
	totalShapes int
}

// getStats walks the tree collecting node counts and depth
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}
	for _, child := range []Shape{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.totalShapes++
		}
	}
}
