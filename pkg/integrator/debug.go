package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// DebugMode selects what the DebugIntegrator returns per pixel, grounded
// on the original renderer's DebugRenderMode enum. FocalPlane is a
// documented non-goal (spec.md adds no depth-of-field-aware debug view).
type DebugMode int

const (
	// DebugShading is Lambertian shading against a fixed directional light.
	DebugShading DebugMode = iota
	// DebugNormal returns the hit normal remapped to [0,1] as a color.
	DebugNormal
	// DebugDepth returns the hit distance normalized by sceneRadius,
	// replicated across channels.
	DebugDepth
)

// debugLightDir is the fixed directional light used by DebugShading.
var debugLightDir = core.NewVec3(1, 2, -1).Normalize()

// DebugIntegrator bypasses Monte Carlo path tracing entirely: it shoots
// one camera ray and returns a cheap approximate shading value, used for
// fast scene/camera sanity checks (spec.md §4.9).
type DebugIntegrator struct {
	Mode        DebugMode
	SceneRadius float64 // used to normalize DebugDepth; must be > 0
}

// NewDebugIntegrator constructs a DebugIntegrator in the given mode.
func NewDebugIntegrator(mode DebugMode, sceneRadius float64) *DebugIntegrator {
	return &DebugIntegrator{Mode: mode, SceneRadius: sceneRadius}
}

// RayColor implements Integrator.
func (d *DebugIntegrator) RayColor(ray core.Ray, s *scene.Scene, sampler *core.Sampler) core.Vec3 {
	hit, isect := s.Intersect(ray)
	if !hit {
		return isect.Material.Emission
	}

	switch d.Mode {
	case DebugNormal:
		return isect.Normal.Mul(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
	case DebugDepth:
		radius := d.SceneRadius
		if radius <= 0 {
			radius = 1
		}
		depth := math.Min(1, isect.Distance/radius)
		return core.NewVec3(depth, depth, depth)
	default:
		return d.shade(ray, s, isect)
	}
}

// shade implements DebugShading: Lambertian shading against a fixed
// directional light with a single shadow ray, shadowed pixels halved.
func (d *DebugIntegrator) shade(ray core.Ray, s *scene.Scene, isect *geometry.Intersection) core.Vec3 {
	nDotL := math.Max(0, isect.Normal.Dot(debugLightDir))

	shadow := 1.0
	shadowOrigin := isect.Position.Add(isect.Normal.Mul(core.Offset))
	shadowRay := core.NewRay(shadowOrigin, debugLightDir)
	if shadowHit, _ := s.Intersect(shadowRay); shadowHit {
		shadow = 0.5
	}

	return isect.Material.Emission.Add(isect.Material.Albedo.Mul(nDotL * shadow))
}
