package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// PathTracer is the next-event-estimation Monte Carlo path tracer of
// spec.md §4.9.
type PathTracer struct {
	BounceLimit int
}

// NewPathTracer constructs a PathTracer with the given bounce limit.
func NewPathTracer(bounceLimit int) *PathTracer {
	return &PathTracer{BounceLimit: bounceLimit}
}

// RayColor implements Integrator: traces up to BounceLimit bounces,
// accumulating surface emission and one NEE sample per NEE-eligible
// bounce, and returns the accumulated radiance.
func (p *PathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler *core.Sampler) core.Vec3 {
	accumulation := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for bounce := 0; bounce < p.BounceLimit; bounce++ {
		hit, isect := s.Intersect(ray)
		if !hit {
			accumulation = accumulation.Add(throughput.MulVec(isect.Material.Emission))
			break
		}

		view := ray.Direction.Negate()
		sampleResult, ok := isect.Material.Sample(sampler, isect.Position, view, isect.Normal)
		if !ok {
			break
		}

		if isect.Material.Surface.NEEAvailable() {
			accumulation = accumulation.Add(
				p.sampleDirectLight(s, sampler, isect, view, throughput),
			)
		}

		accumulation = accumulation.Add(throughput.MulVec(isect.Material.Emission))

		throughput = throughput.MulVec(isect.Material.Albedo).Mul(sampleResult.Reflectance)
		if throughput.IsZero() {
			break
		}

		ray = sampleResult.Ray
	}

	return accumulation
}

// sampleDirectLight performs one next-event-estimation step: for every
// NEE-eligible emissive primitive, sample a point on its surface, cast a
// shadow ray, and if it reaches that point unoccluded, add its
// contribution (spec.md §4.9 step 3).
func (p *PathTracer) sampleDirectLight(s *scene.Scene, sampler *core.Sampler, isect *geometry.Intersection, view core.Vec3, throughput core.Vec3) core.Vec3 {
	total := core.Vec3{}

	for _, light := range s.Lights {
		u, v := sampler.Get2D()
		lightPos, lightNormal, pdf := light.SampleOnSurface(u, v)
		if pdf <= 0 {
			continue
		}

		toLight := lightPos.Sub(isect.Position)
		dist2 := toLight.LengthSquared()
		dist := math.Sqrt(dist2)
		l := toLight.Mul(1.0 / dist)

		nDotL := isect.Normal.Dot(l)
		lightNDotL := lightNormal.Dot(l.Negate())
		if nDotL <= 0 || lightNDotL <= 0 {
			continue
		}

		shadowOrigin := isect.Position.Add(isect.Normal.Mul(core.Offset))
		shadowRay := core.NewRayTo(shadowOrigin, lightPos)
		shadowHit, shadowIsect := s.Intersect(shadowRay)
		if !shadowHit || !pointsApproxEqual(shadowIsect.Position, lightPos) {
			continue
		}

		bsdf := isect.Material.Evaluate(view, isect.Normal, l)
		weight := bsdf * nDotL * lightNDotL / dist2 / pdf

		contribution := throughput.MulVec(shadowIsect.Material.Emission).Mul(weight).MulVec(isect.Material.Albedo)
		total = total.Add(contribution)
	}

	return total
}

// pointsApproxEqual reports whether two positions coincide within a small
// tolerance, used to confirm a shadow ray's nearest hit is the sampled
// light point rather than some closer occluder.
func pointsApproxEqual(a, b core.Vec3) bool {
	return a.Sub(b).LengthSquared() < 1e-6
}
