package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Z is the unit vector along the vertical axis, the axis of symmetry
// of every folded shape.
var Z = r3.Vec{Z: 1}

func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

type Set []r3.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r3.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r3.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

func FromR2(v r2.Vec, z float64) r3.Vec {
	return r3.Vec{
		X: v.X,
		Y: v.Y,
		Z: z,
	}
}

// Rotate rotates v by theta radians about axis k, which passes through
// the origin. Positive angles follow the right hand rule.
func Rotate(v, k r3.Vec, theta float64) r3.Vec {
	if theta == 0 {
		return v
	}
	return r3.Rotate(v, theta, k)
}

// RotateZ rotates v by theta radians about the vertical axis.
func RotateZ(v r3.Vec, theta float64) r3.Vec {
	return Rotate(v, Z, theta)
}

// ZProj returns the projection of v onto the vertical axis.
func ZProj(v r3.Vec) r3.Vec {
	return r3.Vec{Z: v.Z}
}

// Proj returns the projection of p onto q.
func Proj(p, q r3.Vec) r3.Vec {
	return r3.Scale(r3.Dot(p, q)/r3.Dot(q, q), q)
}

// Angle returns the angle between p and q in [0, pi].
// The result is NaN if either vector has zero length.
func Angle(p, q r3.Vec) float64 {
	c := r3.Dot(p, q) / (r3.Norm(p) * r3.Norm(q))
	return math.Acos(math.Max(-1, math.Min(1, c)))
}

// Unit returns the unit vector of v. Zero length vectors are returned
// as the zero vector with ok false.
func Unit(v r3.Vec) (u r3.Vec, ok bool) {
	n := r3.Norm(v)
	if n == 0 {
		return r3.Vec{}, false
	}
	return r3.Scale(1/n, v), true
}
