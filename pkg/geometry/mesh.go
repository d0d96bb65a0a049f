package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Mesh is a BVH-accelerated collection of triangles sharing one material.
// Meshes are never NEE-eligible (spec.md §4.4 restricts light sampling to
// spheres).
type Mesh struct {
	root *bvhNode
	box  core.AABB
	Mat  material.Material
}

// NewMesh builds a BVH over the given faces and returns the mesh. faces
// must be non-empty.
func NewMesh(faces []*Triangle, mat material.Material) *Mesh {
	root := buildBVH(faces)
	return &Mesh{root: root, box: root.box, Mat: mat}
}

// Intersect implements Primitive by traversing the BVH, then resolving the
// material at the final hit point.
func (m *Mesh) Intersect(ray core.Ray, hit *Intersection) bool {
	before := hit.Distance
	if !m.root.intersect(ray, hit) || hit.Distance == before {
		return false
	}
	hit.Material = m.Mat.At(hit.UV, hit.Position)
	return true
}

// BoundingBox implements Primitive.
func (m *Mesh) BoundingBox() core.AABB { return m.box }

// Material implements Primitive.
func (m *Mesh) Material() material.Material { return m.Mat }

// NEEAvailable implements Primitive: meshes are never light-eligible.
func (m *Mesh) NEEAvailable() bool { return false }

// SampleOnSurface is unused for Mesh; it is present only to satisfy
// Primitive and must never be called since NEEAvailable is false.
func (m *Mesh) SampleOnSurface(u, v float64) (pos, normal core.Vec3, pdf float64) {
	return core.Vec3{}, core.Vec3{}, 0
}
