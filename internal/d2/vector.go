package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

// Rotate rotates p counter-clockwise by theta radians about the origin.
func Rotate(p r2.Vec, theta float64) r2.Vec {
	if theta == 0 {
		return p
	}
	return r2.Rotate(p, theta, r2.Vec{})
}

// Set is an ordered collection of points. Polygons are stored as
// a Set whose last point connects back to the first.
type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Translate returns a copy of the set displaced by v.
func (a Set) Translate(v r2.Vec) Set {
	s := make(Set, len(a))
	for i := range a {
		s[i] = r2.Add(a[i], v)
	}
	return s
}

// Rotate returns a copy of the set rotated counter-clockwise by theta about the origin.
func (a Set) Rotate(theta float64) Set {
	s := make(Set, len(a))
	for i := range a {
		s[i] = Rotate(a[i], theta)
	}
	return s
}

// Centroid returns the arithmetic mean of the set's points.
func (a Set) Centroid() r2.Vec {
	var c r2.Vec
	for _, v := range a {
		c = r2.Add(c, v)
	}
	return r2.Scale(1/float64(len(a)), c)
}
