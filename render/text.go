package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/democapsid/capsid"
)

// WriteTSV writes one tab separated row per facet vertex with columns
// x, y, z, face and point. face is the facet's position in facets and
// point the vertex index within the facet. The first line is a header.
func WriteTSV(w io.Writer, facets []capsid.Facet) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "x\ty\tz\tface\tpoint")
	for i, f := range facets {
		for j, v := range f.Vertices {
			fmt.Fprintf(bw, "%.12g\t%.12g\t%.12g\t%d\t%d\n", v.X, v.Y, v.Z, i, j)
		}
	}
	return bw.Flush()
}

// WriteOBJ writes a Wavefront OBJ wireframe of the facets. Each facet
// becomes a group named after its label with its own vertices and
// line elements.
func WriteOBJ(w io.Writer, facets []capsid.Facet) error {
	bw := bufio.NewWriter(w)
	base := 1 // OBJ indices start at 1.
	for i, f := range facets {
		if len(f.Vertices) == 0 {
			continue
		}
		fmt.Fprintf(bw, "g %s_%d\n", f.Label, i)
		for _, v := range f.Vertices {
			fmt.Fprintf(bw, "v %.12g %.12g %.12g\n", v.X, v.Y, v.Z)
		}
		for _, e := range f.Edges {
			fmt.Fprintf(bw, "l %d %d\n", base+e[0], base+e[1])
		}
		base += len(f.Vertices)
	}
	return bw.Flush()
}

// WriteMeshOBJ writes a welded mesh as a single OBJ object.
func WriteMeshOBJ(w io.Writer, m capsid.Mesh) error {
	bw := bufio.NewWriter(w)
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.12g %.12g %.12g\n", v.X, v.Y, v.Z)
	}
	for _, e := range m.Edges {
		fmt.Fprintf(bw, "l %d %d\n", e[0]+1, e[1]+1)
	}
	return bw.Flush()
}
