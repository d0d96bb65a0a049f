package core

import "math/rand"

// Sampler is the single source of randomness threaded through material
// sampling and the integrator. It wraps *rand.Rand so callers never touch
// math/rand directly, which keeps the per-pixel determinism contract in
// one place.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler wraps an existing *rand.Rand.
func NewSampler(rng *rand.Rand) *Sampler { return &Sampler{rng: rng} }

// Get1D returns a uniform float64 in [0, 1).
func (s *Sampler) Get1D() float64 { return s.rng.Float64() }

// Get2D returns a pair of independent uniform float64 values in [0, 1).
func (s *Sampler) Get2D() (float64, float64) { return s.rng.Float64(), s.rng.Float64() }

// pixelSeedConst is an arbitrary fixed salt mixed into every pixel's seed so
// that the hash does not collapse for sampleIndex == 0.
const pixelSeedConst = 0x9E3779B97F4A7C15

// PixelSeed derives a deterministic 64-bit seed from a pixel's normalized
// camera coordinate and the current sample index. The exact constants
// reproduce the reference renderer's hash so that per-pixel sequences —
// and therefore whole accumulation buffers — are bitwise reproducible
// across runs and worker counts.
func PixelSeed(sampleIdx int, x, y float64) int64 {
	ix := int64((4 + x) * 1.00870e5)
	iy := int64((4 + y) * 1.00304e5)
	h := uint64(pixelSeedConst)
	h = mixHash(h, uint64(sampleIdx))
	h = mixHash(h, uint64(ix))
	h = mixHash(h, uint64(iy))
	return int64(h)
}

// mixHash combines a seed component into h (hash_combine-style), then runs
// the MurmurHash3 fmix64 finalizer over the result.
func mixHash(h, x uint64) uint64 {
	h ^= x + 0x9E3779B97F4A7C15 + (h << 6) + (h >> 2)
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	h *= 0xC4CEB9FE1A85EC53
	h ^= h >> 33
	return h
}

// NewPixelSampler constructs the deterministic per-pixel sampler for a
// given sample index and normalized pixel coordinate.
func NewPixelSampler(sampleIdx int, x, y float64) *Sampler {
	return NewSampler(rand.New(rand.NewSource(PixelSeed(sampleIdx, x, y))))
}
