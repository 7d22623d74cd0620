package capsid

import (
	"math"

	"github.com/democapsid/capsid/internal/d2"
	"github.com/democapsid/capsid/lattice"
	"gonum.org/v1/gonum/spatial/r2"
)

// CKVectors are the Caspar-Klug vectors of a capsid face on a lattice:
// C_T, C_Q, C_T rotated by 120° and an auxiliary vector closing the net.
type CKVectors [4]r2.Vec

// NewCKVectors returns the CK vectors of the lattice indices (h,k)
// and (H,K) on basis b.
func NewCKVectors(h, k, H, K int, b lattice.Basis) CKVectors {
	a1, a2 := b.A1, b.A2
	a3 := d2.Rotate(a2, math.Pi/3)
	comb := func(i int, u r2.Vec, j int, v r2.Vec) r2.Vec {
		return r2.Add(r2.Scale(float64(i), u), r2.Scale(float64(j), v))
	}
	return CKVectors{
		comb(h, a1, k, a2),
		comb(H, a2, K, a3),
		comb(-h-k, a1, h, a2),
		comb(k, a1, -h, a3),
	}
}

// Lengths returns the three edge lengths folded into the icosahedron:
// |C_T|, |C_Q| and |C_T120 - C_Q|.
func (c CKVectors) Lengths() (a, b, cc float64) {
	return r2.Norm(c[0]), r2.Norm(c[1]), r2.Norm(r2.Sub(c[2], c[1]))
}

// FlatTriangle is a triangle of the capsid net.
type FlatTriangle [3]r2.Vec

// Area returns the unsigned area of the triangle.
func (t FlatTriangle) Area() float64 {
	return d2.TriangleArea(t[0], t[1], t[2])
}

// Triangles returns the three CK triangles spanning the origin and two
// CK vectors. Index 0 is the zero triangle so indices match
// FaceClass.Triangle.
func (c CKVectors) Triangles() [4]FlatTriangle {
	var o r2.Vec
	return [4]FlatTriangle{
		{},
		{o, c[0], c[3]},
		{o, c[1], c[0]},
		{o, c[2], c[1]},
	}
}
