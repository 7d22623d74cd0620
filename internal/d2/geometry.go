package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// relative tolerance of the area-sum point-in-triangle test.
	areaTol = 1e-9
	// relative tolerance under which two segments are considered parallel.
	parallelTol = 1e-9
	// tolerance of the collinearity test, relative to the segment lengths.
	collinearTol = 1e-8
)

// Ring pairs every element of s with its cyclic successor.
// Slices with fewer than two elements produce no pairs.
func Ring[T any](s []T) [][2]T {
	if len(s) < 2 {
		return nil
	}
	pairs := make([][2]T, len(s))
	for i := range s {
		pairs[i] = [2]T{s[i], s[(i+1)%len(s)]}
	}
	return pairs
}

// TriangleArea returns the unsigned area of triangle p1, p2, p3.
func TriangleArea(p1, p2, p3 r2.Vec) float64 {
	return math.Abs(r2.Cross(r2.Sub(p1, p2), r2.Sub(p1, p3))) / 2
}

// InTriangle reports whether q lies inside or on the border of
// triangle p1, p2, p3. The three sub-triangles formed with q must
// add up to the triangle's area within a relative tolerance.
func InTriangle(q, p1, p2, p3 r2.Vec) bool {
	area := TriangleArea(p1, p2, p3)
	sum := TriangleArea(q, p1, p2) + TriangleArea(q, p2, p3) + TriangleArea(q, p3, p1)
	return math.Abs(area-sum) <= areaTol*area
}

// Intersect returns the intersection point of segments p1-q1 and p2-q2.
// Parallel or collinear segments and intersections outside either
// segment report false.
func Intersect(p1, q1, p2, q2 r2.Vec) (r2.Vec, bool) {
	s1 := r2.Sub(q1, p1)
	s2 := r2.Sub(q2, p2)
	d := s2.Y*s1.X - s2.X*s1.Y
	if math.Abs(d) <= parallelTol*r2.Norm(s1)*r2.Norm(s2) {
		return r2.Vec{}, false
	}
	w := r2.Sub(p1, p2)
	ua := (s2.X*w.Y - s2.Y*w.X) / d
	if ua < 0 || ua > 1 {
		return r2.Vec{}, false
	}
	ub := (s1.X*w.Y - s1.Y*w.X) / d
	if ub < 0 || ub > 1 {
		return r2.Vec{}, false
	}
	return r2.Add(p1, r2.Scale(ua, s1)), true
}

// Collinear reports whether c lies on the infinite line through a and b.
func Collinear(a, b, c r2.Vec) bool {
	u := r2.Sub(b, a)
	w := r2.Sub(c, a)
	return math.Abs(r2.Cross(u, w)) <= collinearTol*math.Max(1, r2.Norm(u)*r2.Norm(w))
}

// OnSameLine reports whether segments p1-q1 and p2-q2 lie on the same line.
func OnSameLine(p1, q1, p2, q2 r2.Vec) bool {
	return Collinear(p1, q1, p2) && Collinear(p1, q1, q2)
}
