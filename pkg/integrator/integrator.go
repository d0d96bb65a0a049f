// Package integrator implements the two ray-color evaluators of
// spec.md §4.9: a fast debug shading integrator and the next-event-
// estimation path tracer used for final renders.
package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Integrator evaluates the radiance arriving along a camera ray.
type Integrator interface {
	RayColor(ray core.Ray, s *scene.Scene, sampler *core.Sampler) core.Vec3
}
