package core

// Ray is a parametric line with an origin and a (not necessarily
// normalized) direction.
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay constructs a ray from an origin and direction.
func NewRay(origin, direction Vec3) Ray { return Ray{Origin: origin, Direction: direction} }

// NewRayTo constructs a ray from origin toward target, with a normalized direction.
func NewRayTo(origin, target Vec3) Ray {
	return Ray{Origin: origin, Direction: target.Sub(origin).Normalize()}
}

// At evaluates the ray's position at parameter t.
func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Direction.Mul(t)) }
