package capsid

import (
	"fmt"

	"github.com/democapsid/capsid/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vertices holds the 12 folded icosahedron vertices, labelled A to L
// in index order.
type Vertices [12]r3.Vec

// FaceClass is one row of a Symmetry: a CK triangle anchored on three
// folded vertices and repeated around the z axis.
type FaceClass struct {
	// Triangle indexes the CK triangle, 1 to 3.
	Triangle int
	// Copies is the number of rotations by 2π/axis of the face.
	Copies int
	Label  string
	// Anchors index the folded vertices the triangle corners land on.
	Anchors [3]int
}

// Symmetry describes how the 20 faces of an icosahedron are built for
// one orientation of its symmetry axis.
type Symmetry struct {
	Axis    int
	Classes []FaceClass
	// Adjacency lists the five neighbours of every folded vertex.
	Adjacency [12][5]int

	fold foldFunc
	// cap returns the center and radius of the sphere capping a
	// cylinderized shell of radius r and half height h2.
	cap func(v *Vertices, r, h2 float64) (center r3.Vec, radius float64)
}

var symmetries = map[int]*Symmetry{
	5: {
		Axis: 5,
		Classes: []FaceClass{
			{1, 5, "T1-▲", [3]int{0, 2, 1}},
			{1, 5, "T1-▼", [3]int{6, 7, 11}},
			{2, 5, "T2-▲", [3]int{2, 6, 1}},
			{2, 5, "T2-▼", [3]int{6, 2, 7}},
		},
		Adjacency: [12][5]int{
			{1, 2, 3, 4, 5}, {0, 2, 5, 6, 10}, {0, 1, 3, 6, 7}, {0, 2, 4, 7, 8},
			{0, 3, 5, 8, 9}, {0, 1, 4, 9, 10}, {1, 2, 7, 10, 11}, {2, 3, 6, 8, 11},
			{3, 4, 7, 9, 11}, {4, 5, 8, 10, 11}, {1, 5, 6, 9, 11}, {6, 7, 8, 9, 10},
		},
		fold: foldPentagonal,
		cap: func(v *Vertices, r, h2 float64) (r3.Vec, float64) {
			return r3.Vec{Z: h2 - r/2}, v[0].Z + r/2 - h2
		},
	},
	3: {
		Axis: 3,
		Classes: []FaceClass{
			{1, 1, "T1-▔", [3]int{0, 1, 2}},
			{1, 3, "T1-▲", [3]int{1, 3, 2}},
			{1, 3, "T1-▼", [3]int{6, 11, 9}},
			{1, 1, "T1-▁", [3]int{9, 11, 10}},
			{2, 3, "T2-▼", [3]int{1, 6, 3}},
			{2, 3, "T2-▲", [3]int{9, 3, 6}},
			{3, 3, "T3-▼", [3]int{1, 5, 6}},
			{3, 3, "T3-▲", [3]int{11, 6, 5}},
		},
		Adjacency: [12][5]int{
			{1, 2, 4, 5, 8}, {0, 2, 3, 5, 6}, {0, 1, 3, 4, 7}, {1, 2, 6, 7, 9},
			{0, 2, 7, 8, 10}, {0, 1, 6, 8, 11}, {1, 3, 5, 9, 11}, {2, 3, 4, 9, 10},
			{0, 4, 5, 10, 11}, {3, 6, 7, 10, 11}, {4, 7, 8, 9, 11}, {5, 6, 8, 9, 10},
		},
		fold: foldTrigonal,
		cap: func(v *Vertices, _, _ float64) (r3.Vec, float64) {
			p, q := v[0], v[3]
			c := d3.CircumcircleCenter(p, q, r3.Vec{X: q.X, Y: -q.Y, Z: q.Z})
			return c, r3.Norm(r3.Sub(p, c))
		},
	},
	2: {
		Axis: 2,
		Classes: []FaceClass{
			{1, 2, "T1-▔", [3]int{0, 2, 1}},
			{1, 2, "T1-▔", [3]int{2, 4, 1}},
			{1, 2, "T1-▁", [3]int{9, 6, 10}},
			{1, 2, "T1-▁", [3]int{9, 10, 11}},
			{2, 2, "T2-▼", [3]int{0, 6, 2}},
			{2, 2, "T2-▲", [3]int{9, 2, 6}},
			{2, 2, "T2-▼", [3]int{2, 9, 4}},
			{2, 2, "T2-▲", [3]int{11, 4, 9}},
			{3, 2, "T3-▼", [3]int{0, 5, 6}},
			{3, 2, "T3-▲", [3]int{10, 6, 5}},
		},
		Adjacency: [12][5]int{
			{1, 2, 3, 5, 6}, {0, 2, 3, 4, 7}, {0, 1, 4, 6, 9}, {0, 1, 5, 7, 8},
			{1, 2, 7, 9, 11}, {0, 3, 6, 8, 10}, {0, 2, 5, 9, 10}, {1, 3, 4, 8, 11},
			{3, 5, 7, 10, 11}, {2, 4, 6, 10, 11}, {5, 6, 8, 9, 11}, {4, 7, 8, 9, 10},
		},
		fold: foldDigonal,
		cap: func(v *Vertices, _, _ float64) (r3.Vec, float64) {
			c := d3.CircumsphereCenter(v[0], v[1], v[4], v[5])
			return c, r3.Norm(r3.Sub(v[0], c))
		},
	},
}

// SymmetryOf returns the face layout for an axial symmetry of order
// axis. The returned value must not be modified.
func SymmetryOf(axis int) (*Symmetry, error) {
	s, ok := symmetries[axis]
	if !ok {
		return nil, fmt.Errorf("%w: got %d", ErrAxis, axis)
	}
	return s, nil
}

// Facets returns the number of facets assembled under s. It is always 20.
func (s *Symmetry) Facets() (n int) {
	for _, c := range s.Classes {
		n += c.Copies
	}
	return n
}

// Edges returns the 30 icosahedron edges as vertex index pairs with
// the smaller index first.
func (s *Symmetry) Edges() [][2]int {
	var edges [][2]int
	for i, nb := range s.Adjacency {
		for _, j := range nb {
			if i < j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}
