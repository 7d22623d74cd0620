package render

import (
	"image/color"
	"math"

	"github.com/democapsid/capsid"
	"github.com/democapsid/capsid/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	outlineColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	meshColors   = [4]color.Color{
		color.Black,
		color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff},
		color.RGBA{R: 0xb6, G: 0x49, B: 0x26, A: 0xff},
		color.RGBA{R: 0x2e, G: 0x62, B: 0x9e, A: 0xff},
	}
)

// PlotNet draws the flat net of c: the three clipped lattice meshes in
// distinct colours over the outlines of their CK triangles.
func PlotNet(c *capsid.Capsid) *plot.Plot {
	p := plot.New()
	p.Title.Text = c.Params.String()
	p.HideAxes()
	for i := 1; i < len(c.Meshes); i++ {
		m := c.Meshes[i]
		segs := make([][2]r2.Vec, len(m.Edges))
		for j, e := range m.Edges {
			segs[j] = [2]r2.Vec{m.Vertices[e[0]], m.Vertices[e[1]]}
		}
		p.Add(newSegments(segs, meshColors[i], vg.Points(0.75)))
	}
	var outline [][2]r2.Vec
	for _, t := range c.Triangles[1:] {
		for j := range t {
			outline = append(outline, [2]r2.Vec{t[j], t[(j+1)%3]})
		}
	}
	outlines := newSegments(outline, outlineColor, vg.Points(0.5))
	outlines.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
	p.Add(outlines)
	equalAspect(p)
	return p
}

// PlotProjection draws the facet edges of c as seen by a camera at the
// origin rotated by the Z-Y-X Euler angles theta, psi and phi. The
// projection is orthographic onto the camera's XY plane.
func PlotProjection(c *capsid.Capsid, theta, psi, phi float64) *plot.Plot {
	cam := d3.Camera(theta, psi, phi, r3.Vec{})
	p := plot.New()
	p.HideAxes()
	for _, f := range c.Facets[1:] {
		segs := make([][2]r2.Vec, len(f.Edges))
		for j, e := range f.Edges {
			segs[j] = [2]r2.Vec{xy(cam.Transform(f.Vertices[e[0]])), xy(cam.Transform(f.Vertices[e[1]]))}
		}
		p.Add(newSegments(segs, meshColors[c.Symmetry.Classes[f.Class].Triangle], vg.Points(0.5)))
	}
	equalAspect(p)
	return p
}

func xy(v r3.Vec) r2.Vec { return r2.Vec{X: v.X, Y: v.Y} }

// equalAspect widens the shorter data axis so a square canvas does not
// distort the geometry.
func equalAspect(p *plot.Plot) {
	cx := (p.X.Min + p.X.Max) / 2
	cy := (p.Y.Min + p.Y.Max) / 2
	half := math.Max(p.X.Max-p.X.Min, p.Y.Max-p.Y.Min) / 2
	p.X.Min, p.X.Max = cx-half, cx+half
	p.Y.Min, p.Y.Max = cy-half, cy+half
}

// segments is a plot.Plotter of disjoint line segments.
type segments struct {
	segs [][2]r2.Vec
	draw.LineStyle
}

func newSegments(segs [][2]r2.Vec, c color.Color, width vg.Length) *segments {
	return &segments{
		segs:      segs,
		LineStyle: draw.LineStyle{Color: c, Width: width},
	}
}

// Plot implements the plot.Plotter interface.
func (s *segments) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	for _, seg := range s.segs {
		c.StrokeLine2(s.LineStyle, trX(seg[0].X), trY(seg[0].Y), trX(seg[1].X), trY(seg[1].Y))
	}
}

// DataRange implements the plot.DataRanger interface.
func (s *segments) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, seg := range s.segs {
		for _, v := range seg {
			xmin, xmax = math.Min(xmin, v.X), math.Max(xmax, v.X)
			ymin, ymax = math.Min(ymin, v.Y), math.Max(ymax, v.Y)
		}
	}
	return xmin, xmax, ymin, ymax
}
