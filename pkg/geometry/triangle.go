package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Triangle is a single mesh face, stored with its own vertex/normal/UV data
// so a Mesh's triangles can be reordered freely while building a BVH.
type Triangle struct {
	V0, V1, V2    core.Vec3
	N0, N1, N2    core.Vec3
	UV0, UV1, UV2 core.Vec2
}

// BoundingBox returns the triangle's axis-aligned bounding box.
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Centroid returns the triangle's centroid, used to sort faces during BVH
// construction.
func (t *Triangle) Centroid() core.Vec3 {
	return t.V0.Add(t.V1).Add(t.V2).Mul(1.0 / 3.0)
}

// intersect implements the Moller-Trumbore ray-triangle intersection
// algorithm (spec.md §4.3). It returns the hit distance, barycentric
// coordinates (u, v) and whether a hit in (0, maxDistance) exists.
func (t *Triangle) intersect(ray core.Ray, maxDistance float64) (dist, u, v float64, ok bool) {
	edge1 := t.V1.Sub(t.V0)
	edge2 := t.V2.Sub(t.V0)
	pvec := ray.Direction.Cross(edge2)
	det := edge1.Dot(pvec)

	if det > -core.Eps && det < core.Eps {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Sub(t.V0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(edge1)
	v = ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	dist = edge2.Dot(qvec) * invDet
	if dist <= 0 || dist >= maxDistance {
		return 0, 0, 0, false
	}
	return dist, u, v, true
}

// interpolatedNormal barycentrically interpolates the triangle's three
// shading normals and renormalizes.
func (t *Triangle) interpolatedNormal(u, v float64) core.Vec3 {
	w := 1 - u - v
	return t.N0.Mul(w).Add(t.N1.Mul(u)).Add(t.N2.Mul(v)).Normalize()
}

// interpolatedUV barycentrically interpolates the triangle's three texture
// coordinates.
func (t *Triangle) interpolatedUV(u, v float64) core.Vec2 {
	w := 1 - u - v
	return t.UV0.Mul(w).Add(t.UV1.Mul(u)).Add(t.UV2.Mul(v))
}
