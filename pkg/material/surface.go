// Package material implements the four surface models in spec.md §4.6:
// Lambertian diffuse, ideal specular, dielectric refraction and microfacet
// GGX, plus the tangent-frame construction shared by every hemispherical
// sampler.
package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Kind tags which of the four surface models a SurfaceType carries.
type Kind int

const (
	// KindDiffuse is Lambertian diffuse reflection.
	KindDiffuse Kind = iota
	// KindSpecular is an ideal mirror.
	KindSpecular
	// KindRefraction is dielectric transmission/reflection (glass).
	KindRefraction
	// KindGGX is microfacet reflection via the Trowbridge-Reitz distribution.
	KindGGX
)

// SurfaceType is a tagged variant selecting one of the four BSDF models.
// IOR is meaningful only for KindRefraction (relative index of refraction
// of the solid); F0 is meaningful only for KindGGX (Fresnel reflectance at
// normal incidence).
type SurfaceType struct {
	Kind Kind
	IOR  float64
	F0   float64
}

// Diffuse constructs a Lambertian SurfaceType.
func Diffuse() SurfaceType { return SurfaceType{Kind: KindDiffuse} }

// Specular constructs an ideal-mirror SurfaceType.
func Specular() SurfaceType { return SurfaceType{Kind: KindSpecular} }

// Refraction constructs a dielectric SurfaceType with the given relative
// index of refraction.
func Refraction(ior float64) SurfaceType { return SurfaceType{Kind: KindRefraction, IOR: ior} }

// GGX constructs a microfacet SurfaceType with the given normal-incidence
// Fresnel reflectance.
func GGX(f0 float64) SurfaceType { return SurfaceType{Kind: KindGGX, F0: f0} }

// NEEAvailable reports whether this surface can be explicitly sampled by
// next event estimation: true for Diffuse and GGX, false for the two
// delta-distribution models (Specular, Refraction), which can only be
// reached by sampling, never by explicit light contribution.
func (s SurfaceType) NEEAvailable() bool {
	return s.Kind == KindDiffuse || s.Kind == KindGGX
}

// Material holds the per-surface textures and the surface model applied
// at every point on the surface.
type Material struct {
	Albedo    texture.Source
	Emission  texture.Source
	Roughness texture.Source
	Surface   SurfaceType
}

// NewMaterial constructs a Material from explicit texture sources.
func NewMaterial(albedo, emission, roughness texture.Source, surface SurfaceType) Material {
	return Material{Albedo: albedo, Emission: emission, Roughness: roughness, Surface: surface}
}

// EmissionIsZero reports whether this material has no emissive texture, or
// an emissive texture that evaluates to black at the origin. It is used to
// decide whether a primitive should be registered as an NEE light; scene
// emitters always use a constant emissive texture, so sampling it at the
// origin is representative of every point on the surface.
func (m Material) EmissionIsZero() bool {
	if m.Emission == nil {
		return true
	}
	return m.Emission.Evaluate(core.Vec2{}, core.Vec3{}).IsZero()
}

// PointMaterial is a Material resolved at one surface point: per-channel
// albedo/emission and a scalar roughness (the image texture's first
// channel, per spec.md §4.7).
type PointMaterial struct {
	Albedo    core.Vec3
	Emission  core.Vec3
	Roughness float64
	Surface   SurfaceType
}

// At resolves a Material's textures at a hit point into a PointMaterial.
func (m Material) At(uv core.Vec2, point core.Vec3) PointMaterial {
	roughness := 0.0
	if m.Roughness != nil {
		roughness = m.Roughness.Evaluate(uv, point).X
	}
	albedo := core.Vec3{}
	if m.Albedo != nil {
		albedo = m.Albedo.Evaluate(uv, point)
	}
	emission := core.Vec3{}
	if m.Emission != nil {
		emission = m.Emission.Evaluate(uv, point)
	}
	return PointMaterial{
		Albedo:    albedo,
		Emission:  emission,
		Roughness: roughness,
		Surface:   m.Surface,
	}
}
