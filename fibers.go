package capsid

import (
	"github.com/democapsid/capsid/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Segment is a straight line between two points.
type Segment [2]r3.Vec

// PentonFibers returns a segment of the given length at each of the 12
// pentameric vertices, pointing along the sum of the vertex's five
// neighbours.
func (c *Capsid) PentonFibers(length float64) [12]Segment {
	var fibers [12]Segment
	v := &c.Fold.Vertices
	for i, nb := range c.Symmetry.Adjacency {
		var sum r3.Vec
		for _, j := range nb {
			sum = r3.Add(sum, v[j])
		}
		dir, ok := d3.Unit(sum)
		if !ok {
			dir, _ = d3.Unit(v[i])
		}
		base := c.inflate(v[i])
		fibers[i] = Segment{base, r3.Add(base, r3.Scale(length, dir))}
	}
	return fibers
}

// SurfaceAreaError compares the area of the flat net with the area of
// the folded icosahedron as (net - folded) / net. It is zero when the
// fold preserved every face.
func (c *Capsid) SurfaceAreaError() float64 {
	v := &c.Fold.Vertices
	var net, folded float64
	for _, class := range c.Symmetry.Classes {
		copies := float64(class.Copies)
		net += copies * c.Triangles[class.Triangle].Area()
		a := class.Anchors
		folded += copies * r3.Triangle{v[a[0]], v[a[1]], v[a[2]]}.Area()
	}
	return (net - folded) / net
}
