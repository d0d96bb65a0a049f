// Package core provides the vector, matrix and ray primitives shared by
// every other package in the path tracer.
package core

import (
	"fmt"
	"math"
)

// Vec3 is a 3-component value type used for points, directions and colors.
type Vec3 struct {
	X, Y, Z float64
}

// Vec2 is a 2-component value type used for texture coordinates.
type Vec2 struct {
	X, Y float64
}

// NewVec3 constructs a Vec3.
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// NewVec2 constructs a Vec2.
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec3) String() string { return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z) }

// Add returns the componentwise sum.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the componentwise difference.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul scales the vector by a scalar.
func (v Vec3) Mul(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div divides the vector by a scalar.
func (v Vec3) Div(s float64) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// MulVec returns the componentwise (Hadamard) product.
func (v Vec3) MulVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Dot returns the dot product.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// LengthSquared avoids the square root when only relative magnitude matters.
func (v Vec3) LengthSquared() float64 { return v.Dot(v) }

// Normalize returns a unit vector in the same direction. A zero-length
// vector normalizes to NaN/Inf components by IEEE-754 division semantics;
// callers that can receive a degenerate vector must guard explicitly.
func (v Vec3) Normalize() Vec3 { return v.Div(v.Length()) }

// Negate returns the opposite vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Reflect reflects v about a surface with the given normal: v - 2(v·n)n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends v through a surface with the given normal and relative
// index of refraction eta using Snell's law. It returns the zero vector as
// a sentinel for total internal reflection (no real solution).
func (v Vec3) Refract(n Vec3, eta float64) Vec3 {
	cosI := math.Min(v.Negate().Dot(n), 1.0)
	sin2T := eta * eta * (1.0 - cosI*cosI)
	if sin2T > 1.0 {
		return Vec3{}
	}
	cosT := math.Sqrt(1.0 - sin2T)
	return v.Mul(eta).Add(n.Mul(eta*cosI - cosT))
}

// Clamp clamps every component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Luminance returns the Rec. 709 perceptual luminance of an RGB color.
func (v Vec3) Luminance() float64 { return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z }

// MaxComponent returns the largest of the three components.
func (v Vec3) MaxComponent() float64 { return math.Max(v.X, math.Max(v.Y, v.Z)) }

// XY swizzles to a Vec2 of (X, Y).
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }

// XZ swizzles to a Vec2 of (X, Z).
func (v Vec3) XZ() Vec2 { return Vec2{v.X, v.Z} }

// ZY swizzles to a Vec2 of (Z, Y).
func (v Vec3) ZY() Vec2 { return Vec2{v.Z, v.Y} }

// Add returns the componentwise sum of two Vec2 values.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the componentwise difference of two Vec2 values.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales a Vec2 by a scalar.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Length returns the Euclidean norm of a Vec2.
func (v Vec2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }
