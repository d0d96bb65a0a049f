package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// SampleResult is the outcome of sampling an outgoing direction at a
// surface interaction: a new ray and the reflectance factor the
// integrator multiplies into throughput (before the surface albedo,
// which the integrator applies separately).
type SampleResult struct {
	Ray         core.Ray
	Reflectance float64
}

// Tangent builds an orthonormal tangent frame (t, b) around the normal n
// using the construction required by spec.md §4.6: every hemispherical
// sampler must use this exact frame so sampled sequences are reproducible.
func Tangent(n core.Vec3) (t, b core.Vec3) {
	up := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > core.Eps {
		up = core.NewVec3(0, 1, 0)
	}
	t = up.Cross(n).Normalize()
	b = n.Cross(t)
	return t, b
}

// Sample draws an outgoing ray and reflectance for this point material at
// the given position, given the direction toward the viewer (opposite the
// incoming ray) and the shading normal. It returns ok=false when the
// surface model has no valid sample for this interaction (e.g. a GGX
// half-vector sample landing below the hemisphere).
func (m PointMaterial) Sample(sampler *core.Sampler, position, view, normal core.Vec3) (SampleResult, bool) {
	switch m.Surface.Kind {
	case KindDiffuse:
		return m.sampleDiffuse(sampler, position, normal)
	case KindSpecular:
		return m.sampleSpecular(position, view, normal)
	case KindRefraction:
		return m.sampleRefraction(sampler, position, view, normal)
	case KindGGX:
		return m.sampleGGX(sampler, position, view, normal)
	default:
		return SampleResult{}, false
	}
}

func (m PointMaterial) sampleDiffuse(sampler *core.Sampler, position, normal core.Vec3) (SampleResult, bool) {
	u0, u1 := sampler.Get2D()
	t, b := Tangent(normal)

	phi := 2 * math.Pi * u0
	r := math.Sqrt(u1)
	x := math.Cos(phi) * r
	y := math.Sin(phi) * r
	z := math.Sqrt(math.Max(0, 1-u1))

	dir := t.Mul(x).Add(b.Mul(y)).Add(normal.Mul(z)).Normalize()
	origin := position.Add(normal.Mul(core.Offset))
	return SampleResult{Ray: core.NewRay(origin, dir), Reflectance: 1.0}, true
}

func (m PointMaterial) sampleSpecular(position, view, normal core.Vec3) (SampleResult, bool) {
	dir := view.Negate().Reflect(normal)
	origin := position.Add(normal.Mul(core.Offset))
	return SampleResult{Ray: core.NewRay(origin, dir), Reflectance: 1.0}, true
}

// sampleRefraction implements spec.md §4.6's Refraction model, including
// the sign convention called out in spec.md §9(2): "entering" is defined
// operationally as view·n < 0 (view points toward the viewer, i.e. is the
// negated ray direction), not by the usual front-face test. Callers must
// not "fix" this to the more common convention — the oriented normal and
// relative index below are derived consistently from that same test, so
// the Fresnel split and TIR detection remain physically correct.
func (m PointMaterial) sampleRefraction(sampler *core.Sampler, position, view, normal core.Vec3) (SampleResult, bool) {
	ior := m.Surface.IOR
	entering := view.Dot(normal) < 0

	eta := ior
	orientedNormal := normal
	if entering {
		eta = 1.0 / ior
		orientedNormal = normal.Negate()
	}

	incident := view.Negate() // the ray's actual direction of travel
	refracted := incident.Refract(orientedNormal, eta)

	if refracted.IsZero() {
		// Total internal reflection: reflect instead of refracting.
		dir := incident.Reflect(normal)
		origin := position.Add(normal.Mul(core.Offset))
		return SampleResult{Ray: core.NewRay(origin, dir), Reflectance: 1.0}, true
	}

	cosI := saturate(view.Dot(orientedNormal))
	cosT := saturate(refracted.Negate().Dot(orientedNormal))

	rs := (eta*cosI - cosT) / (eta*cosI + cosT)
	rp := (eta*cosT - cosI) / (eta*cosT + cosI)
	f := 0.5 * (rs*rs + rp*rp)

	u0 := sampler.Get1D()
	if u0 <= f {
		dir := incident.Reflect(normal)
		origin := position.Add(normal.Mul(core.Offset))
		return SampleResult{Ray: core.NewRay(origin, dir), Reflectance: 1.0}, true
	}
	origin := position.Add(normal.Mul(-core.Offset))
	return SampleResult{Ray: core.NewRay(origin, refracted), Reflectance: eta * eta}, true
}

func (m PointMaterial) sampleGGX(sampler *core.Sampler, position, view, normal core.Vec3) (SampleResult, bool) {
	alpha2 := roughnessToAlpha2(m.Roughness)
	u0, u1 := sampler.Get2D()

	phi := 2 * math.Pi * u0
	cosTheta := math.Sqrt((1 - u1) / (1 + (alpha2-1)*u1))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	t, b := Tangent(normal)
	h := t.Mul(sinTheta * math.Cos(phi)).Add(b.Mul(sinTheta * math.Sin(phi))).Add(normal.Mul(cosTheta)).Normalize()

	l := view.Negate().Reflect(h)
	if l.Dot(normal) < 0 {
		return SampleResult{}, false
	}

	vh := math.Max(view.Dot(h), 0)
	vn := math.Max(view.Dot(normal), 0)
	hn := math.Max(h.Dot(normal), 0)
	ln := math.Max(l.Dot(normal), 0)

	fresnel := schlickFresnel(m.Surface.F0, vh)
	g := smithJointG(alpha2, ln, vn)

	reflectance := 0.0
	if hn > 0 && vn > 0 {
		reflectance = fresnel * saturate(g*vh/(hn*vn))
	}

	origin := position.Add(normal.Mul(core.Offset))
	return SampleResult{Ray: core.NewRay(origin, l), Reflectance: reflectance}, true
}

// Evaluate returns the BSDF value bsdf(view, n, light) for the NEE-eligible
// surface models. Specular and Refraction have no finite BSDF value
// (spec.md §4.6); for them it returns 0.
func (m PointMaterial) Evaluate(view, normal, light core.Vec3) float64 {
	switch m.Surface.Kind {
	case KindDiffuse:
		return 1.0 / math.Pi
	case KindGGX:
		h := view.Add(light).Normalize()
		hn := math.Max(h.Dot(normal), 0)
		ln := math.Max(light.Dot(normal), 0)
		vn := math.Max(view.Dot(normal), 0)
		if ln <= 0 || vn <= 0 {
			return 0
		}
		alpha2 := roughnessToAlpha2(m.Roughness)
		d := ggxD(alpha2, hn)
		g := smithJointG(alpha2, ln, vn)
		f := schlickFresnel(m.Surface.F0, math.Max(view.Dot(h), 0))
		return d * g * f / (4 * ln * vn)
	default:
		return 0
	}
}

// roughnessToAlpha2 maps roughness to the squared GGX width parameter.
// spec.md §4.6/§9(3) fixes alpha = roughness (i.e. alpha^2 = roughness^2)
// for compatibility with the reference renderer, even though some
// literature prefers alpha = roughness^2.
func roughnessToAlpha2(roughness float64) float64 {
	a := math.Max(roughness, 1e-4)
	return a * a
}

func ggxD(alpha2, cosThetaH float64) float64 {
	denom := math.Pi * sq(1-(1-alpha2)*cosThetaH*cosThetaH)
	return alpha2 / denom
}

func smithLambda(alpha2, cosTheta float64) float64 {
	cosTheta = math.Max(cosTheta, 1e-4)
	return 0.5 * (math.Sqrt(1+alpha2*(1/sq(cosTheta)-1)) - 1)
}

func smithJointG(alpha2, ln, vn float64) float64 {
	return 1.0 / (1.0 + smithLambda(alpha2, ln) + smithLambda(alpha2, vn))
}

func schlickFresnel(f0, cosine float64) float64 {
	return f0 + (1-f0)*math.Pow(1-cosine, 5)
}

func saturate(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func sq(x float64) float64 { return x * x }
