package core

// Baked configuration constants shared across the engine (spec.md §6).
const (
	// SuperSampling is the stratified supersampling grid width/height.
	SuperSampling = 2
	// Gamma is the display gamma applied on output.
	Gamma = 2.2
	// Eps is the general-purpose numerical tolerance used for slab-plane
	// comparisons and similar geometric epsilon tests.
	Eps = 1e-4
	// Offset is the distance rays are nudged off a surface to avoid
	// self-intersection.
	Offset = 1e-4
	// BounceLimit is the maximum number of path segments traced per pixel
	// sample.
	BounceLimit = 10
	// ToneMappingExposure and ToneMappingWhitePoint parameterize the
	// Reinhard tone-map curve.
	ToneMappingExposure   = 1.5
	ToneMappingWhitePoint = 20.0
)
