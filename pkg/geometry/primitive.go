// Package geometry implements the ray-intersectable primitives of
// spec.md §4.4: spheres, axis-aligned cuboids and BVH-accelerated
// triangle meshes, plus NEE surface sampling for light-eligible shapes.
package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Intersection is the mutable scratch record updated during traversal.
// A candidate hit is accepted only if its distance is strictly smaller
// than the current Distance, which starts at +Inf.
type Intersection struct {
	Position core.Vec3
	Distance float64
	Normal   core.Vec3
	UV       core.Vec2
	Material material.PointMaterial
}

// NewIntersection returns an empty intersection record ready for traversal.
func NewIntersection() *Intersection {
	return &Intersection{Distance: math.Inf(1)}
}

// Primitive is the capability set every intersectable scene object
// implements: ray intersection, the material it carries, and — for
// shapes usable as NEE light sources — surface sampling.
type Primitive interface {
	Intersect(ray core.Ray, hit *Intersection) bool
	BoundingBox() core.AABB
	Material() material.Material
	NEEAvailable() bool
	SampleOnSurface(u, v float64) (pos, normal core.Vec3, pdf float64)
}
