// Package capsid computes the geometry of viral capsid shells from
// Caspar-Klug lattice indices.
//
// A planar lattice is clipped to the three CK triangles of an
// icosahedral face, the icosahedron is folded so its edges match the
// CK vector lengths and every face is filled with an affine copy of
// its clipped mesh. The shell can then be inflated towards a sphere or
// a capped cylinder.
package capsid

import (
	"fmt"
	"math"
	"slices"

	"github.com/democapsid/capsid/internal/d2"
	"github.com/democapsid/capsid/internal/d3"
	"github.com/democapsid/capsid/lattice"
	"gonum.org/v1/gonum/spatial/r3"
)

// Facet is one face of the shell: an affine copy of a clipped CK
// triangle mesh placed on the folded icosahedron and inflated.
type Facet struct {
	Vertices []r3.Vec
	// Edges index Vertices and equal the edges of the source FlatMesh.
	Edges [][2]int
	Label string
	// Class indexes Symmetry.Classes and Copy counts the rotations of
	// the class about the z axis.
	Class, Copy int
	// Corners are the images of the CK triangle corners.
	Corners [3]r3.Vec

	affine d2.Transform
}

// Capsid is a folded and meshed capsid shell.
type Capsid struct {
	Params    Params
	Symmetry  *Symmetry
	Basis     lattice.Basis
	CK        CKVectors
	Triangles [4]FlatTriangle
	Meshes    [4]FlatMesh
	Fold      Fold
	// Facets holds the 20 shell faces starting at index 1. Index 0 is
	// an empty placeholder so facet and CK triangle indexing agree.
	Facets []Facet

	inflate Inflater
}

// Facets builds the capsid described by p and returns its facets. The
// first facet is an empty placeholder.
func Facets(p Params) ([]Facet, error) {
	c, err := Build(p)
	if err != nil {
		return nil, err
	}
	return c.Facets, nil
}

// Build validates p, meshes the lattice, folds the icosahedron and
// assembles every facet. Any error aborts the whole build.
func Build(p Params) (*Capsid, error) {
	p = p.withDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	sym, err := SymmetryOf(p.Axis)
	if err != nil {
		return nil, err
	}
	basis, err := lattice.New(p.Tile, p.R)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParams, err)
	}
	c := &Capsid{
		Params:   p,
		Symmetry: sym,
		Basis:    basis,
		CK:       NewCKVectors(p.H, p.K, p.HQ, p.KQ, basis),
	}
	c.Triangles = c.CK.Triangles()
	c.Meshes, err = MeshTriangles(basis, c.CK)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImpossibleConstruction, err)
	}
	c.Fold, err = FoldVertices(c.CK, p.Axis, p.MaxIter, p.Tol)
	if err != nil {
		return nil, err
	}
	c.inflate = inflater(p, &c.Fold.Vertices, sym)
	if err := c.assemble(); err != nil {
		return nil, err
	}
	return c, nil
}

// assemble maps the flat mesh of every face class onto its anchors,
// once per rotation about the z axis.
func (c *Capsid) assemble() error {
	v := &c.Fold.Vertices
	turn := 2 * math.Pi / float64(c.Symmetry.Axis)
	c.Facets = make([]Facet, 1, 1+c.Symmetry.Facets())
	for ic, class := range c.Symmetry.Classes {
		tri := c.Triangles[class.Triangle]
		src := d2.Columns(
			r3.Vec{X: tri[0].X, Y: tri[0].Y, Z: 1},
			r3.Vec{X: tri[1].X, Y: tri[1].Y, Z: 1},
			r3.Vec{X: tri[2].X, Y: tri[2].Y, Z: 1},
		)
		if det := src.Determinant(); det == 0 || math.IsNaN(det) {
			return fmt.Errorf("%w: CK triangle %d is degenerate", ErrImpossibleConstruction, class.Triangle)
		}
		inv := src.Inverse()
		mesh := c.Meshes[class.Triangle]
		for i := 0; i < class.Copies; i++ {
			theta := float64(i) * turn
			dst := d2.Columns(
				d3.RotateZ(v[class.Anchors[0]], theta),
				d3.RotateZ(v[class.Anchors[1]], theta),
				d3.RotateZ(v[class.Anchors[2]], theta),
			)
			f := Facet{
				Vertices: make([]r3.Vec, len(mesh.Vertices)),
				Edges:    slices.Clone(mesh.Edges),
				Label:    class.Label,
				Class:    ic,
				Copy:     i,
				affine:   dst.Mul(inv),
			}
			for j, p := range mesh.Vertices {
				f.Vertices[j] = c.inflate(f.affine.ApplyR3(p))
			}
			for j, p := range tri {
				f.Corners[j] = c.inflate(f.affine.ApplyR3(p))
			}
			c.Facets = append(c.Facets, f)
		}
	}
	return nil
}
