package capsid

import (
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh is a shell-wide vertex and edge set.
type Mesh struct {
	Vertices []r3.Vec
	Edges    [][2]int
}

// Weld merges the facet vertices lying within tol of each other into
// one Mesh. Repeated edges, in either direction, appear once. Vertex
// ids follow facet order.
func (c *Capsid) Weld(tol float64) Mesh {
	var (
		m    Mesh
		tree kdtree.Tree
		seen = make(map[[2]int]bool)
	)
	for _, f := range c.Facets[1:] {
		ids := make([]int, len(f.Vertices))
		for i, v := range f.Vertices {
			q := weldPoint{Vec: v}
			if near, d2 := tree.Nearest(q); near != nil && d2 <= tol*tol {
				ids[i] = near.(weldPoint).id
				continue
			}
			q.id = len(m.Vertices)
			tree.Insert(q, false)
			m.Vertices = append(m.Vertices, v)
			ids[i] = q.id
		}
		for _, e := range f.Edges {
			a, b := ids[e[0]], ids[e[1]]
			u := [2]int{min(a, b), max(a, b)}
			if a == b || seen[u] {
				continue
			}
			seen[u] = true
			m.Edges = append(m.Edges, [2]int{a, b})
		}
	}
	return m
}

var _ kdtree.Comparable = weldPoint{}

// weldPoint is a mesh vertex stored in the weld tree.
type weldPoint struct {
	r3.Vec
	id int
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
func (a weldPoint) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	p := b.(weldPoint)
	switch d {
	case 0:
		return a.X - p.X
	case 1:
		return a.Y - p.Y
	}
	return a.Z - p.Z
}

// Dims returns the number of dimensions described in the Comparable.
func (a weldPoint) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a weldPoint) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.Vec, b.(weldPoint).Vec))
}
