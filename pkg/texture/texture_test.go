package texture

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestConstant_Evaluate_AlwaysSameColor(t *testing.T) {
	c := NewConstant(core.NewVec3(0.2, 0.4, 0.6))
	a := c.Evaluate(core.NewVec2(0, 0), core.Vec3{})
	b := c.Evaluate(core.NewVec2(1, 1), core.NewVec3(5, 5, 5))
	if a != b || a != core.NewVec3(0.2, 0.4, 0.6) {
		t.Errorf("expected constant color regardless of uv/point, got %v and %v", a, b)
	}
}

func TestWhiteAndBlack(t *testing.T) {
	if White().Evaluate(core.Vec2{}, core.Vec3{}) != core.NewVec3(1, 1, 1) {
		t.Errorf("expected White() to evaluate to (1,1,1)")
	}
	if Black().Evaluate(core.Vec2{}, core.Vec3{}) != (core.Vec3{}) {
		t.Errorf("expected Black() to evaluate to zero")
	}
}

func TestImage_Evaluate_SolidColorIgnoresFiltering(t *testing.T) {
	gray := core.NewVec3(0.5, 0.5, 0.5)
	pixels := make([]core.Vec3, 4*4)
	for i := range pixels {
		pixels[i] = gray
	}
	img := NewImage(4, 4, pixels)

	got := img.Evaluate(core.NewVec2(0.3, 0.7), core.Vec3{})
	want := gammaToLinear(gray)
	if math.Abs(got.X-want.X) > 1e-9 {
		t.Errorf("expected uniform image to sample to linearized gray, got %v want %v", got, want)
	}
}

func TestImage_Evaluate_VFlip(t *testing.T) {
	// top row (stored row 0) is white, bottom row (stored row 1) is black.
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(1, 1, 1),
		core.Vec3{}, core.Vec3{},
	}
	img := NewImage(2, 2, pixels)

	// v=1 should address the top (stored) row, i.e. white.
	top := img.Evaluate(core.NewVec2(0.5, 0.99), core.Vec3{})
	// v=0 should address the bottom (stored) row, i.e. black.
	bottom := img.Evaluate(core.NewVec2(0.5, 0.01), core.Vec3{})

	if top.X < bottom.X {
		t.Errorf("expected v=1 to sample a brighter texel than v=0, got top=%v bottom=%v", top, bottom)
	}
}

func TestImage_Evaluate_AppliesTint(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(1, 1, 1)}
	img := NewImage(1, 1, pixels)
	img.Tint = core.NewVec3(0.5, 0.5, 0.5)

	got := img.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{})
	want := gammaToLinear(core.NewVec3(1, 1, 1)).Mul(0.5)
	if math.Abs(got.X-want.X) > 1e-9 {
		t.Errorf("expected tint to scale the linearized sample, got %v want %v", got, want)
	}
}

func TestLinearToGamma_InverseOfGammaToLinear(t *testing.T) {
	c := core.NewVec3(0.2, 0.5, 0.8)
	linear := gammaToLinear(c)
	roundTrip := LinearToGamma(linear)

	if math.Abs(roundTrip.X-c.X) > 1e-9 || math.Abs(roundTrip.Y-c.Y) > 1e-9 || math.Abs(roundTrip.Z-c.Z) > 1e-9 {
		t.Errorf("expected gamma round trip to recover original color, got %v want %v", roundTrip, c)
	}
}

func TestCheckerboard_AlternatesByCell(t *testing.T) {
	c1 := core.NewVec3(1, 0, 0)
	c2 := core.NewVec3(0, 1, 0)
	cb := Checkerboard(1, c1, c2)

	a := cb.Evaluate(core.Vec2{}, core.NewVec3(0.5, 0, 0.5))
	b := cb.Evaluate(core.Vec2{}, core.NewVec3(1.5, 0, 0.5))
	if a != c1 {
		t.Errorf("expected cell (0,0) to be c1, got %v", a)
	}
	if b != c2 {
		t.Errorf("expected cell (1,0) to be c2, got %v", b)
	}
}

func TestGradient_InterpolatesByHeight(t *testing.T) {
	bottom := core.NewVec3(0, 0, 0)
	top := core.NewVec3(1, 1, 1)
	g := Gradient(0, 10, bottom, top)

	mid := g.Evaluate(core.Vec2{}, core.NewVec3(0, 5, 0))
	if math.Abs(mid.X-0.5) > 1e-9 {
		t.Errorf("expected midpoint gradient value 0.5, got %v", mid.X)
	}

	below := g.Evaluate(core.Vec2{}, core.NewVec3(0, -5, 0))
	if below != bottom {
		t.Errorf("expected gradient to clamp below range to bottom color, got %v", below)
	}

	above := g.Evaluate(core.Vec2{}, core.NewVec3(0, 50, 0))
	if above != top {
		t.Errorf("expected gradient to clamp above range to top color, got %v", above)
	}
}
