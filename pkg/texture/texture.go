// Package texture implements per-surface-point color sampling: constant
// colors and bilinearly-filtered image textures with gamma-to-linear
// conversion, per spec.md §4.5.
package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Gamma is the display gamma used to convert stored (encoded) texel values
// to linear radiance before they participate in shading.
const Gamma = 2.2

// Source provides a color at a surface point, addressed by UV and, for
// procedural textures, by world position.
type Source interface {
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// Constant returns the same color everywhere.
type Constant struct {
	Color core.Vec3
}

// NewConstant creates a constant-color texture.
func NewConstant(c core.Vec3) *Constant { return &Constant{Color: c} }

// Evaluate implements Source.
func (c *Constant) Evaluate(_ core.Vec2, _ core.Vec3) core.Vec3 { return c.Color }

// White is a convenience constant texture of (1,1,1).
func White() *Constant { return NewConstant(core.NewVec3(1, 1, 1)) }

// Black is a convenience constant texture of (0,0,0).
func Black() *Constant { return NewConstant(core.Vec3{}) }

// Image is a 2D raster texture sampled with bilinear filtering. Texel
// values are assumed gamma-encoded and are linearized on sample.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, Pixels[y*Width+x], gamma-encoded
	Tint          core.Vec3   // multiplied into every sample; default (1,1,1)
}

// NewImage constructs an image texture from gamma-encoded pixel data.
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels, Tint: core.NewVec3(1, 1, 1)}
}

func (t *Image) texel(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}

func gammaToLinear(c core.Vec3) core.Vec3 {
	return core.NewVec3(
		math.Pow(c.X, Gamma),
		math.Pow(c.Y, Gamma),
		math.Pow(c.Z, Gamma),
	)
}

// Evaluate bilinearly samples the image at normalized (u,v) in [0,1],
// flipping v so that v=0 addresses the bottom row of the image as stored
// (image row 0 is the top), applies gamma-to-linear decoding, and
// multiplies in the texture's tint.
func (t *Image) Evaluate(uv core.Vec2, _ core.Vec3) core.Vec3 {
	fx := uv.X*float64(t.Width) - 0.5
	fy := (1.0-uv.Y)*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x1 := x0 + 1
	y1 := y0 + 1

	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x1, y0)
	c01 := t.texel(x0, y1)
	c11 := t.texel(x1, y1)

	top := c00.Mul(1 - tx).Add(c10.Mul(tx))
	bottom := c01.Mul(1 - tx).Add(c11.Mul(tx))
	blended := top.Mul(1 - ty).Add(bottom.Mul(ty))

	return gammaToLinear(blended).MulVec(t.Tint)
}

// LinearToGamma is the inverse of the gamma-to-linear conversion the image
// texture applies, used by the render driver's output pipeline.
func LinearToGamma(c core.Vec3) core.Vec3 {
	invGamma := 1.0 / Gamma
	return core.NewVec3(
		math.Pow(math.Max(c.X, 0), invGamma),
		math.Pow(math.Max(c.Y, 0), invGamma),
		math.Pow(math.Max(c.Z, 0), invGamma),
	)
}

// Checkerboard builds a procedural checkerboard Source, used by the
// compiled-in scenes instead of a flat color for floors/walls.
func Checkerboard(checkSize int, c1, c2 core.Vec3) Source {
	return &checkerboard{checkSize: checkSize, c1: c1, c2: c2}
}

type checkerboard struct {
	checkSize int
	c1, c2    core.Vec3
}

func (c *checkerboard) Evaluate(_ core.Vec2, point core.Vec3) core.Vec3 {
	cx := int(math.Floor(point.X / float64(c.checkSize)))
	cz := int(math.Floor(point.Z / float64(c.checkSize)))
	if (cx+cz)%2 == 0 {
		return c.c1
	}
	return c.c2
}

// Gradient builds a vertical-gradient Source from bottom (y=lo) to
// top (y=hi).
func Gradient(lo, hi float64, bottom, top core.Vec3) Source {
	return &gradient{lo: lo, hi: hi, bottom: bottom, top: top}
}

type gradient struct {
	lo, hi      float64
	bottom, top core.Vec3
}

func (g *gradient) Evaluate(_ core.Vec2, point core.Vec3) core.Vec3 {
	t := (point.Y - g.lo) / (g.hi - g.lo)
	t = math.Max(0, math.Min(1, t))
	return g.bottom.Mul(1 - t).Add(g.top.Mul(t))
}
