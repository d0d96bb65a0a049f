package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cuboid is an axis-aligned box primitive. Unlike Sphere it is not
// NEE-eligible (spec.md §4.4 restricts light sampling to spheres).
type Cuboid struct {
	Box core.AABB
	Mat material.Material
}

// NewCuboid constructs a Cuboid from two opposite corners.
func NewCuboid(a, b core.Vec3, mat material.Material) *Cuboid {
	return &Cuboid{Box: core.NewAABB(a, b), Mat: mat}
}

// Intersect implements Primitive using the slab method, then infers the
// face normal and UV from whichever axis the hit point sits closest to a
// bounding-box face on, within core.Eps.
func (c *Cuboid) Intersect(ray core.Ray, hit *Intersection) bool {
	ok, t := c.Box.IntersectRay(ray.Origin, ray.Direction)
	if !ok || t <= 0 || t >= hit.Distance {
		return false
	}

	pos := ray.At(t)
	normal := c.faceNormal(pos)

	u, v := faceUV(normal, pos, c.Box)

	hit.Distance = t
	hit.Position = pos
	hit.Normal = normal
	hit.UV = core.NewVec2(u, v)
	hit.Material = c.Mat.At(hit.UV, pos)
	return true
}

// faceNormal determines which of the six box faces a surface point lies on
// by comparing its distance to each face plane against core.Eps.
func (c *Cuboid) faceNormal(pos core.Vec3) core.Vec3 {
	min, max := c.Box.Min, c.Box.Max

	switch {
	case math.Abs(pos.X-min.X) < core.Eps:
		return core.NewVec3(-1, 0, 0)
	case math.Abs(pos.X-max.X) < core.Eps:
		return core.NewVec3(1, 0, 0)
	case math.Abs(pos.Y-min.Y) < core.Eps:
		return core.NewVec3(0, -1, 0)
	case math.Abs(pos.Y-max.Y) < core.Eps:
		return core.NewVec3(0, 1, 0)
	case math.Abs(pos.Z-min.Z) < core.Eps:
		return core.NewVec3(0, 0, -1)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// faceUV maps a point on a box face to a (u, v) pair in [0, 1], using the
// two axes orthogonal to the face normal.
func faceUV(normal, pos core.Vec3, box core.AABB) (u, v float64) {
	size := box.Size()
	switch {
	case normal.X != 0:
		u = (pos.Z - box.Min.Z) / size.Z
		v = (pos.Y - box.Min.Y) / size.Y
	case normal.Y != 0:
		u = (pos.X - box.Min.X) / size.X
		v = (pos.Z - box.Min.Z) / size.Z
	default:
		u = (pos.X - box.Min.X) / size.X
		v = (pos.Y - box.Min.Y) / size.Y
	}
	return u, v
}

// BoundingBox implements Primitive.
func (c *Cuboid) BoundingBox() core.AABB { return c.Box }

// Material implements Primitive.
func (c *Cuboid) Material() material.Material { return c.Mat }

// NEEAvailable implements Primitive: cuboids are never light-eligible.
func (c *Cuboid) NEEAvailable() bool { return false }

// SampleOnSurface is unused for Cuboid; it is present only to satisfy
// Primitive and must never be called since NEEAvailable is false.
func (c *Cuboid) SampleOnSurface(u, v float64) (pos, normal core.Vec3, pdf float64) {
	return core.Vec3{}, core.Vec3{}, 0
}
