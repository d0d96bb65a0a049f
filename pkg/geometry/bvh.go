package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// bvhLeafThreshold is the maximum number of triangles stored in a leaf
// node before the builder splits further (spec.md §4.2).
const bvhLeafThreshold = 4

// bvhNode is one node of the bounding volume hierarchy: either an interior
// node with two children, or a leaf holding up to bvhLeafThreshold faces.
type bvhNode struct {
	box         core.AABB
	left, right *bvhNode
	faces       []*Triangle
}

// buildBVH constructs a BVH over the given faces using a median split along
// the bounding box's longest axis (spec.md §4.2). Faces are sorted by their
// centroid coordinate on the chosen axis and split at the midpoint index;
// ties in axis extent favor X over Y over Z, per core.AABB.LongestAxis.
func buildBVH(faces []*Triangle) *bvhNode {
	box := boundFaces(faces)

	if len(faces) <= bvhLeafThreshold {
		return &bvhNode{box: box, faces: faces}
	}

	axis := box.LongestAxis()
	sorted := make([]*Triangle, len(faces))
	copy(sorted, faces)
	sort.Slice(sorted, func(i, j int) bool {
		return axisCoord(sorted[i].Centroid(), axis) < axisCoord(sorted[j].Centroid(), axis)
	})

	mid := len(sorted) / 2
	return &bvhNode{
		box:   box,
		left:  buildBVH(sorted[:mid]),
		right: buildBVH(sorted[mid:]),
	}
}

func axisCoord(v core.Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func boundFaces(faces []*Triangle) core.AABB {
	box := faces[0].BoundingBox()
	for _, f := range faces[1:] {
		box = box.Merge(f.BoundingBox())
	}
	return box
}

// intersect traverses the BVH, rejecting a subtree whenever the ray misses
// its bounding box, testing every face in a leaf via Moller-Trumbore, and
// otherwise recursing into both children with no front-to-back ordering
// (spec.md §4.3).
func (n *bvhNode) intersect(ray core.Ray, hit *Intersection) bool {
	if ok, _ := n.box.IntersectRay(ray.Origin, ray.Direction); !ok {
		return false
	}

	if n.faces != nil {
		found := false
		for _, f := range n.faces {
			if dist, u, v, ok := f.intersect(ray, hit.Distance); ok {
				hit.Distance = dist
				hit.Position = ray.At(dist)
				hit.Normal = f.interpolatedNormal(u, v)
				hit.UV = f.interpolatedUV(u, v)
				found = true
			}
		}
		return found
	}

	hitLeft := n.left.intersect(ray, hit)
	hitRight := n.right.intersect(ray, hit)
	return hitLeft || hitRight
}
