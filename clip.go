package capsid

import (
	"math"

	"github.com/democapsid/capsid/internal/d2"
	"github.com/democapsid/capsid/lattice"
	"gonum.org/v1/gonum/spatial/r2"
)

// FlatMesh is the lattice clipped to one CK triangle. Edges index
// Vertices and never join a vertex to itself.
type FlatMesh struct {
	Vertices []r2.Vec
	Edges    [][2]int
}

// Empty reports whether the mesh has no edges.
func (m FlatMesh) Empty() bool { return len(m.Edges) == 0 }

// vertexKey identifies a point after rounding its coordinates to 1e-9.
type vertexKey [2]int64

func keyOf(p r2.Vec) vertexKey {
	return vertexKey{int64(math.RoundToEven(p.X * 1e9)), int64(math.RoundToEven(p.Y * 1e9))}
}

// MeshTriangles clips lattice b to each of the three CK triangles of c.
// Index 0 of the result is empty so indices match FaceClass.Triangle.
func MeshTriangles(b lattice.Basis, c CKVectors) ([4]FlatMesh, error) {
	var meshes [4]FlatMesh
	cells, err := cellRange(b, c)
	if err != nil {
		return meshes, err
	}
	tris := c.Triangles()
	for i := 1; i < len(tris); i++ {
		meshes[i] = clipTriangle(b, tris[i], cells)
	}
	return meshes, nil
}

// cellRange returns the lattice cells [i0, i1]x[j0, j1] that may
// intersect the CK triangles, with a one cell margin.
func cellRange(b lattice.Basis, c CKVectors) (r [4]int, err error) {
	var coef d2.Set
	for _, v := range c {
		x, err := b.Coefficients(v)
		if err != nil {
			return r, err
		}
		coef = append(coef, x)
	}
	lo, hi := coef.Min(), coef.Max()
	return [4]int{
		int(math.RoundToEven(lo.X)) - 1, int(math.RoundToEven(hi.X)) + 1,
		int(math.RoundToEven(lo.Y)) - 1, int(math.RoundToEven(hi.Y)) + 1,
	}, nil
}

// meshBuilder accumulates a FlatMesh, merging vertices with equal keys
// and dropping repeated undirected edges. Vertex ids follow insertion order.
type meshBuilder struct {
	ids  map[vertexKey]int
	seen map[[2]int]bool
	mesh FlatMesh
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{
		ids:  make(map[vertexKey]int),
		seen: make(map[[2]int]bool),
	}
}

func (mb *meshBuilder) vertex(p r2.Vec, k vertexKey) int {
	id, ok := mb.ids[k]
	if !ok {
		id = len(mb.mesh.Vertices)
		mb.ids[k] = id
		mb.mesh.Vertices = append(mb.mesh.Vertices, p)
	}
	return id
}

func (mb *meshBuilder) edge(p, q r2.Vec) {
	kp, kq := keyOf(p), keyOf(q)
	if kp == kq {
		return
	}
	a, b := mb.vertex(p, kp), mb.vertex(q, kq)
	u := [2]int{min(a, b), max(a, b)}
	if mb.seen[u] {
		return
	}
	mb.seen[u] = true
	mb.mesh.Edges = append(mb.mesh.Edges, [2]int{a, b})
}

func clipTriangle(b lattice.Basis, tri FlatTriangle, cells [4]int) FlatMesh {
	mb := newMeshBuilder()
	sides := d2.Ring(tri[:])
	var pts []r2.Vec
	for i := cells[0]; i <= cells[1]; i++ {
		for j := cells[2]; j <= cells[3]; j++ {
			origin := b.Cell(i, j)
			for _, tiler := range b.Tilers {
				poly := d2.Ring(tiler(origin))
				pts = pts[:0]
				for _, e := range poly {
					if d2.InTriangle(e[0], tri[0], tri[1], tri[2]) {
						pts = append(pts, e[0])
					}
					for _, s := range sides {
						if x, ok := d2.Intersect(e[0], e[1], s[0], s[1]); ok {
							pts = append(pts, x)
						}
					}
				}
				for _, e := range boundaryEdges(pts, poly) {
					mb.edge(pts[e[0]], pts[e[1]])
				}
			}
		}
	}
	return mb.mesh
}

// boundaryEdges returns the edges between consecutive points of pts
// that lie along an edge of the tile polygon. A pair of points yields
// its two opposite edges, which collapse into one.
func boundaryEdges(pts []r2.Vec, poly [][2]r2.Vec) [][2]int {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	var edges [][2]int
	for _, e := range d2.Ring(idx) {
		for _, side := range poly {
			if d2.OnSameLine(pts[e[0]], pts[e[1]], side[0], side[1]) {
				edges = append(edges, e)
				break
			}
		}
	}
	if len(edges) == 2 && edges[0] == [2]int{edges[1][1], edges[1][0]} {
		edges = edges[:1]
	}
	return edges
}
