package core

import "math"

// AABB is an axis-aligned bounding box with the invariant Min.k <= Max.k
// for every axis k.
type AABB struct {
	Min, Max Vec3
}

// NewAABB constructs an AABB from explicit min/max corners.
func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// NewAABBFromPoints returns the smallest AABB containing every point.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{math.Min(min.X, p.X), math.Min(min.Y, p.Y), math.Min(min.Z, p.Z)}
		max = Vec3{math.Max(max.X, p.X), math.Max(max.Y, p.Y), math.Max(max.Z, p.Z)}
	}
	return AABB{Min: min, Max: max}
}

// IntersectRay implements the slab method. It returns whether the ray hits
// the box and, if so, the nearer positive root or, if the origin is inside
// the box, the farther root. Division by a zero direction component follows
// IEEE-754 semantics (±Inf) so axis-aligned rays need no special case.
func (b AABB) IntersectRay(origin, direction Vec3) (hit bool, t float64) {
	invX, invY, invZ := 1.0/direction.X, 1.0/direction.Y, 1.0/direction.Z

	tx0, tx1 := (b.Min.X-origin.X)*invX, (b.Max.X-origin.X)*invX
	ty0, ty1 := (b.Min.Y-origin.Y)*invY, (b.Max.Y-origin.Y)*invY
	tz0, tz1 := (b.Min.Z-origin.Z)*invZ, (b.Max.Z-origin.Z)*invZ

	tMin := math.Max(math.Min(tx0, tx1), math.Max(math.Min(ty0, ty1), math.Min(tz0, tz1)))
	tMax := math.Min(math.Max(tx0, tx1), math.Min(math.Max(ty0, ty1), math.Max(tz0, tz1)))

	if tMin > tMax || tMax < 0 {
		return false, 0
	}
	if tMin > 0 {
		return true, tMin
	}
	return true, tMax
}

// Merge returns the smallest AABB that contains both boxes.
func (b AABB) Merge(o AABB) AABB {
	return AABB{
		Min: Vec3{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y), math.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y), math.Max(b.Max.Z, o.Max.Z)},
	}
}

// Overlaps reports whether two AABBs intersect (touching counts as overlap).
func (b AABB) Overlaps(o AABB) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// Center returns the box's centroid.
func (b AABB) Center() Vec3 { return b.Min.Add(b.Max).Mul(0.5) }

// Size returns the extent of the box along each axis.
func (b AABB) Size() Vec3 { return b.Max.Sub(b.Min) }

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) of greatest extent, breaking
// ties in favor of X over Y over Z.
func (b AABB) LongestAxis() int {
	size := b.Size()
	if size.X >= size.Y && size.X >= size.Z {
		return 0
	}
	if size.Y >= size.Z {
		return 1
	}
	return 2
}

// Axis returns the box's extent along the given axis (0=X, 1=Y, 2=Z).
func (b AABB) Axis(axis int) (min, max float64) {
	switch axis {
	case 0:
		return b.Min.X, b.Max.X
	case 1:
		return b.Min.Y, b.Max.Y
	default:
		return b.Min.Z, b.Max.Z
	}
}
