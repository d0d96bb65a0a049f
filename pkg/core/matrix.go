package core

import "math"

// Matrix44 is a row-major 4x4 affine transform.
type Matrix44 struct {
	E [4][4]float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Matrix44 {
	m := Matrix44{}
	for i := 0; i < 4; i++ {
		m.E[i][i] = 1.0
	}
	return m
}

// Translate returns a translation matrix.
func Translate(x, y, z float64) Matrix44 {
	m := Identity()
	m.E[0][3] = x
	m.E[1][3] = y
	m.E[2][3] = z
	return m
}

// Scale returns a non-uniform scale matrix.
func Scale(x, y, z float64) Matrix44 {
	m := Identity()
	m.E[0][0] = x
	m.E[1][1] = y
	m.E[2][2] = z
	return m
}

// RotateX returns a rotation matrix about the X axis (radians).
func RotateX(t float64) Matrix44 {
	s, c := math.Sin(t), math.Cos(t)
	m := Identity()
	m.E[1][1], m.E[1][2] = c, -s
	m.E[2][1], m.E[2][2] = s, c
	return m
}

// RotateY returns a rotation matrix about the Y axis (radians).
func RotateY(t float64) Matrix44 {
	s, c := math.Sin(t), math.Cos(t)
	m := Identity()
	m.E[0][0], m.E[0][2] = c, s
	m.E[2][0], m.E[2][2] = -s, c
	return m
}

// RotateZ returns a rotation matrix about the Z axis (radians).
func RotateZ(t float64) Matrix44 {
	s, c := math.Sin(t), math.Cos(t)
	m := Identity()
	m.E[0][0], m.E[0][1] = c, -s
	m.E[1][0], m.E[1][1] = s, c
	return m
}

// Mul composes two matrices: (m * o) applied to a point applies o first, then m.
func (m Matrix44) Mul(o Matrix44) Matrix44 {
	var r Matrix44
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.E[i][k] * o.E[k][j]
			}
			r.E[i][j] = sum
		}
	}
	return r
}

// MulPoint applies the matrix to a point, treating it as (x, y, z, 1) and
// dropping the resulting w component.
func (m Matrix44) MulPoint(v Vec3) Vec3 {
	return Vec3{
		X: m.E[0][0]*v.X + m.E[0][1]*v.Y + m.E[0][2]*v.Z + m.E[0][3],
		Y: m.E[1][0]*v.X + m.E[1][1]*v.Y + m.E[1][2]*v.Z + m.E[1][3],
		Z: m.E[2][0]*v.X + m.E[2][1]*v.Y + m.E[2][2]*v.Z + m.E[2][3],
	}
}

// Det returns the determinant via cofactor expansion along the first row.
func (m Matrix44) Det() float64 {
	sub3 := func(skipRow, skipCol int) [3][3]float64 {
		var s [3][3]float64
		ri := 0
		for r := 0; r < 4; r++ {
			if r == skipRow {
				continue
			}
			ci := 0
			for c := 0; c < 4; c++ {
				if c == skipCol {
					continue
				}
				s[ri][ci] = m.E[r][c]
				ci++
			}
			ri++
		}
		return s
	}
	det3 := func(s [3][3]float64) float64 {
		return s[0][0]*(s[1][1]*s[2][2]-s[1][2]*s[2][1]) -
			s[0][1]*(s[1][0]*s[2][2]-s[1][2]*s[2][0]) +
			s[0][2]*(s[1][0]*s[2][1]-s[1][1]*s[2][0])
	}
	det := 0.0
	sign := 1.0
	for c := 0; c < 4; c++ {
		det += sign * m.E[0][c] * det3(sub3(0, c))
		sign = -sign
	}
	return det
}

// Inverse computes the inverse via Gauss-Jordan elimination with partial
// pivoting. A singular matrix returns the identity matrix — a documented
// degraded behavior rather than an error, matching the source renderer.
func (m Matrix44) Inverse() Matrix44 {
	t := m
	s := Identity()

	for i := 0; i < 3; i++ {
		pivot := i
		pivotSize := math.Abs(t.E[i][i])
		for j := i + 1; j < 4; j++ {
			if v := math.Abs(t.E[j][i]); v > pivotSize {
				pivot = j
				pivotSize = v
			}
		}
		if pivotSize == 0.0 {
			return Identity()
		}
		if pivot != i {
			t.E[i], t.E[pivot] = t.E[pivot], t.E[i]
			s.E[i], s.E[pivot] = s.E[pivot], s.E[i]
		}

		for j := i + 1; j < 4; j++ {
			f := t.E[j][i] / t.E[i][i]
			for k := 0; k < 4; k++ {
				t.E[j][k] -= f * t.E[i][k]
				s.E[j][k] -= f * s.E[i][k]
			}
		}
	}

	for i := 3; i >= 0; i-- {
		f := t.E[i][i]
		if f == 0.0 {
			return Identity()
		}
		for j := 0; j < 4; j++ {
			t.E[i][j] /= f
			s.E[i][j] /= f
		}
		for j := 0; j < i; j++ {
			f = t.E[j][i]
			for k := 0; k < 4; k++ {
				t.E[j][k] -= f * t.E[i][k]
				s.E[j][k] -= f * s.E[i][k]
			}
		}
	}

	return s
}
