package capsid

import (
	"testing"

	"github.com/democapsid/capsid/internal/d2"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestBoundaryEdges(t *testing.T) {
	square := d2.Ring([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	triangle := d2.Ring([]r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}})
	for _, test := range []struct {
		name string
		pts  []r2.Vec
		poly [][2]r2.Vec
		want [][2]int
	}{
		{
			name: "pair collapses to one edge",
			pts:  []r2.Vec{{X: 0.25, Y: 0}, {X: 0.75, Y: 0}},
			poly: square,
			want: [][2]int{{0, 1}},
		},
		{
			name: "closed ring keeps every side",
			pts:  []r2.Vec{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 2}},
			poly: triangle,
			want: [][2]int{{0, 1}, {1, 2}, {2, 0}},
		},
		{
			name: "two consecutive sides are both kept",
			pts:  []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
			poly: square,
			want: [][2]int{{0, 1}, {1, 2}},
		},
		{
			name: "chord across the tile is dropped",
			pts:  []r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}},
			poly: square,
			want: nil,
		},
	} {
		got := boundaryEdges(test.pts, test.poly)
		require.Equal(t, test.want, got, test.name)
	}
}

func TestMeshBuilderEdges(t *testing.T) {
	mb := newMeshBuilder()
	a, b, c := r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}
	mb.edge(a, b)
	mb.edge(b, a)
	mb.edge(a, a)
	mb.edge(b, c)
	require.Equal(t, []r2.Vec{a, b, c}, mb.mesh.Vertices)
	require.Equal(t, [][2]int{{0, 1}, {1, 2}}, mb.mesh.Edges)
}
