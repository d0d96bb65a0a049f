// Package colormap implements the output pipeline of spec.md §4.10: tone
// mapping, linear-to-gamma encoding, an optional pixel-array filter hook
// and 8-bit quantization.
package colormap

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// ToneMap maps an HDR linear color to a displayable linear color.
type ToneMap func(c core.Vec3) core.Vec3

// Identity is the no-op tone-map curve.
func Identity(c core.Vec3) core.Vec3 { return c }

// Reinhard applies the exposure/white-point parameterized Reinhard curve
// (spec.md §9 open question 4): `L_out = L*(1 + L/white^2) / (1 + L)`,
// applied per channel after scaling by the exposure.
func Reinhard(exposure, white float64) ToneMap {
	white2 := white * white
	return func(c core.Vec3) core.Vec3 {
		c = c.Mul(exposure)
		return core.NewVec3(
			reinhardChannel(c.X, white2),
			reinhardChannel(c.Y, white2),
			reinhardChannel(c.Z, white2),
		)
	}
}

func reinhardChannel(l, white2 float64) float64 {
	return l * (1 + l/white2) / (1 + l)
}

// PixelFilter post-processes the whole tone-mapped, gamma-encoded pixel
// array before quantization. IdentityFilter is the default.
type PixelFilter func(pixels []core.Vec3, width, height int) []core.Vec3

// IdentityFilter returns pixels unchanged.
func IdentityFilter(pixels []core.Vec3, width, height int) []core.Vec3 { return pixels }

// Quantize clamps a gamma-encoded linear-range color to [0,1] and scales
// each channel to an 8-bit integer.
func Quantize(c core.Vec3) (r, g, b uint8) {
	return quantizeChannel(c.X), quantizeChannel(c.Y), quantizeChannel(c.Z)
}

func quantizeChannel(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(v * 255))
}

// Resolve runs the full per-pixel output pipeline: tone map, linear-to-gamma
// encode. The pixel-array filter and quantization are applied by the
// caller across the whole buffer (see pkg/render).
func Resolve(hdr core.Vec3, tonemap ToneMap) core.Vec3 {
	if tonemap == nil {
		tonemap = Identity
	}
	return texture.LinearToGamma(tonemap(hdr))
}
