package d3

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// CircumcircleCenter returns the center of the circle passing through
// the three points of a non-degenerate triangle.
func CircumcircleCenter(p, q, r r3.Vec) r3.Vec {
	a := r3.Sub(p, r)
	b := r3.Sub(q, r)
	axb := r3.Cross(a, b)
	num := r3.Cross(r3.Sub(r3.Scale(r3.Norm2(a), b), r3.Scale(r3.Norm2(b), a)), axb)
	return r3.Add(r3.Scale(1/(2*r3.Norm2(axb)), num), r)
}

// CircumsphereCenter returns the center of the sphere passing through
// the four points of a non-degenerate tetrahedron.
func CircumsphereCenter(v0, v1, v2, v3 r3.Vec) r3.Vec {
	e1 := r3.Sub(v1, v0)
	e2 := r3.Sub(v2, v0)
	e3 := r3.Sub(v3, v0)
	det := mat.Det(mat.NewDense(3, 3, []float64{
		e1.X, e1.Y, e1.Z,
		e2.X, e2.Y, e2.Z,
		e3.X, e3.Y, e3.Z,
	}))
	sum := r3.Add(r3.Add(
		r3.Scale(r3.Norm2(e3), r3.Cross(e1, e2)),
		r3.Scale(r3.Norm2(e2), r3.Cross(e3, e1))),
		r3.Scale(r3.Norm2(e1), r3.Cross(e2, e3)),
	)
	return r3.Add(v0, r3.Scale(1/(2*det), sum))
}
