package capsid

import (
	"github.com/democapsid/capsid/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shell triangulates the inflated capsid surface. Every facet's CK
// triangle is split into subdiv² triangles before mapping, so inflated
// facets follow the curved surface. Triangles wind outwards from the
// origin.
func (c *Capsid) Shell(subdiv int) []r3.Triangle {
	n := max(subdiv, 1)
	tris := make([]r3.Triangle, 0, (len(c.Facets)-1)*n*n)
	for _, f := range c.Facets[1:] {
		src := c.Triangles[c.Symmetry.Classes[f.Class].Triangle]
		e1 := r2.Sub(src[1], src[0])
		e2 := r2.Sub(src[2], src[0])
		at := func(i, j int) r3.Vec {
			p := r2.Add(src[0], r2.Add(
				r2.Scale(float64(i)/float64(n), e1),
				r2.Scale(float64(j)/float64(n), e2),
			))
			return c.inflate(f.affine.ApplyR3(p))
		}
		for i := 0; i < n; i++ {
			for j := 0; i+j < n; j++ {
				tris = append(tris, outward(r3.Triangle{at(i, j), at(i+1, j), at(i, j+1)}))
				if i+j < n-1 {
					tris = append(tris, outward(r3.Triangle{at(i+1, j), at(i+1, j+1), at(i, j+1)}))
				}
			}
		}
	}
	return tris
}

func outward(t r3.Triangle) r3.Triangle {
	if r3.Dot(t.Normal(), t.Centroid()) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

// Bounds returns the axis-aligned box enclosing every facet vertex.
func (c *Capsid) Bounds() r3.Box {
	var pts d3.Set
	for _, f := range c.Facets[1:] {
		pts = append(pts, f.Vertices...)
	}
	return r3.Box(pts.Bounds())
}
