// Package scene assembles primitives and a skybox into the intersectable
// world the integrator traces rays against (spec.md §4.7).
package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Scene holds every intersectable primitive plus the skybox sampled on a
// miss. Lights is the subset of Primitives eligible for next-event
// estimation, precomputed once at construction so the integrator never
// has to filter the full primitive list per bounce.
type Scene struct {
	Primitives []geometry.Primitive
	Lights     []geometry.Primitive
	Skybox     Skybox
}

// NewScene builds a Scene from a flat primitive list and skybox, deriving
// the NEE light list from whichever primitives report NEEAvailable and
// carry non-zero emission.
func NewScene(primitives []geometry.Primitive, skybox Skybox) *Scene {
	s := &Scene{Primitives: primitives, Skybox: skybox}
	for _, p := range primitives {
		if p.NEEAvailable() && !p.Material().EmissionIsZero() {
			s.Lights = append(s.Lights, p)
		}
	}
	return s
}

// Intersect tests ray against every primitive, each given a chance to
// update the shared intersection record; the monotone Distance guard in
// geometry.Intersection ensures the nearest hit wins regardless of
// primitive order. On a miss the skybox color is written into the
// intersection's emission field and Intersect returns false, but the
// emission remains readable by the caller.
func (s *Scene) Intersect(ray core.Ray) (bool, *geometry.Intersection) {
	hit := geometry.NewIntersection()
	found := false
	for _, p := range s.Primitives {
		if p.Intersect(ray, hit) {
			found = true
		}
	}
	if !found {
		hit.Material.Emission = s.Skybox.Sample(ray.Direction)
		return false, hit
	}
	return true, hit
}
