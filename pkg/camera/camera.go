// Package camera implements the pinhole and thin-lens cameras of
// spec.md §4.8: normalized-coordinate ray generation with optional
// depth-of-field sampling.
package camera

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// LensShape selects the depth-of-field aperture's sampling domain.
type LensShape int

const (
	// LensSquare samples the unit square with no rejection.
	LensSquare LensShape = iota
	// LensCircle rejection-samples the unit disc.
	LensCircle
)

// Camera generates primary rays from normalized image-plane coordinates.
type Camera struct {
	Eye   core.Vec3
	Right core.Vec3
	Up    core.Vec3
	Fwd   core.Vec3

	PlaneHalfRight core.Vec3
	PlaneHalfUp    core.Vec3

	FocusDistance float64
	LensRadius    float64
	Lens          LensShape
}

// NewCamera constructs a camera looking from eye toward target with the
// given world-up hint, vertical field of view in degrees, lens shape,
// aperture diameter and focus distance (spec.md §4.8).
func NewCamera(eye, target, worldUp core.Vec3, vfovDegrees float64, lens LensShape, aperture, focusDistance float64) *Camera {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward).Normalize()

	planeHalf := math.Tan(vfovDegrees*math.Pi/180.0) * focusDistance

	return &Camera{
		Eye:            eye,
		Right:          right,
		Up:             up,
		Fwd:            forward,
		PlaneHalfRight: right.Mul(planeHalf),
		PlaneHalfUp:    up.Mul(planeHalf),
		FocusDistance:  focusDistance,
		LensRadius:     aperture / 2.0,
		Lens:           lens,
	}
}

// Ray returns a pinhole camera ray through normalized image coordinate nc,
// where nc.X, nc.Y ∈ roughly [-1, 1].
func (c *Camera) Ray(nc core.Vec2) core.Ray {
	dir := c.PlaneHalfRight.Mul(nc.X).Add(c.PlaneHalfUp.Mul(nc.Y)).Add(c.Fwd.Mul(c.FocusDistance))
	return core.NewRay(c.Eye, dir.Normalize())
}

// RayWithDOF returns a thin-lens camera ray through normalized image
// coordinate nc, jittering the origin across the lens when LensRadius>0.
// The outgoing direction formula is identical to Ray; only the origin
// moves, which is what produces depth-of-field blur away from the focal
// plane.
func (c *Camera) RayWithDOF(nc core.Vec2, sampler *core.Sampler) core.Ray {
	if c.LensRadius <= 0 {
		return c.Ray(nc)
	}

	u, v := c.sampleLens(sampler)
	origin := c.Eye.Add(c.Right.Mul(u * c.LensRadius)).Add(c.Up.Mul(v * c.LensRadius))
	dir := c.PlaneHalfRight.Mul(nc.X).Add(c.PlaneHalfUp.Mul(nc.Y)).Add(c.Fwd.Mul(c.FocusDistance))
	return core.NewRay(origin, dir.Normalize())
}

// sampleLens draws a point in [-1, 1]^2 on the configured lens shape.
func (c *Camera) sampleLens(sampler *core.Sampler) (u, v float64) {
	switch c.Lens {
	case LensCircle:
		for {
			u = sampler.Get1D()*2 - 1
			v = sampler.Get1D()*2 - 1
			if u*u+v*v <= 1 {
				return u, v
			}
		}
	default: // LensSquare
		u = sampler.Get1D()*2 - 1
		v = sampler.Get1D()*2 - 1
		return u, v
	}
}

// NormalizedCoord converts pixel coordinate (x, y) within a width x height
// image to the normalized coordinate convention of spec.md §4.8:
// `((fragCoord*2 - resolution) / min(W,H))` with the y axis flipped so +y
// is up in the image.
func NormalizedCoord(x, y float64, width, height int) core.Vec2 {
	minDim := float64(width)
	if height < width {
		minDim = float64(height)
	}
	nx := (2*x - float64(width)) / minDim
	ny := (float64(height) - 2*y) / minDim
	return core.NewVec2(nx, ny)
}
