package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere is an analytic sphere primitive. It is the only primitive eligible
// for next-event-estimation sampling (spec.md §4.4).
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere constructs a sphere.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Intersect implements Primitive. It keeps only the near root of the
// quadratic and accepts it if it lies strictly between 0 and the current
// intersection distance.
func (s *Sphere) Intersect(ray core.Ray, hit *Intersection) bool {
	oc := ray.Origin.Sub(s.Center)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius
	d := b*b - c

	if d <= 0 {
		return false
	}

	t := -b - math.Sqrt(d)
	if t <= 0 || t >= hit.Distance {
		return false
	}

	pos := ray.At(t)
	normal := pos.Sub(s.Center).Mul(1.0 / s.Radius)

	v := 1.0 - math.Acos(normal.Y)/math.Pi
	sign := 1.0
	if normal.Z < 0 {
		sign = -1.0
	}
	xz := normal.XZ().Length()
	u := 0.5 - sign*math.Acos(normal.X/xz)/(2*math.Pi)

	hit.Distance = t
	hit.Position = pos
	hit.Normal = normal
	hit.UV = core.NewVec2(u, v)
	hit.Material = s.Mat.At(hit.UV, pos)
	return true
}

// BoundingBox implements Primitive.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Sub(r), s.Center.Add(r))
}

// Material implements Primitive.
func (s *Sphere) Material() material.Material { return s.Mat }

// NEEAvailable implements Primitive: spheres are always light-eligible.
func (s *Sphere) NEEAvailable() bool { return true }

// SampleOnSurface uniformly samples a point on the sphere, per spec.md §4.4:
// theta = 2*pi*u, z = 1-2v, offset outward by core.Offset along the normal.
func (s *Sphere) SampleOnSurface(u, v float64) (pos, normal core.Vec3, pdf float64) {
	theta := 2 * math.Pi * u
	z := 1 - 2*v
	a := math.Sqrt(math.Max(0, 1-z*z))
	normal = core.NewVec3(a*math.Cos(theta), z, a*math.Sin(theta))
	pos = s.Center.Add(normal.Mul(s.Radius + core.Offset))
	pdf = 1.0 / (4 * math.Pi * s.Radius * s.Radius)
	return pos, normal, pdf
}
