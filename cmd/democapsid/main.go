// Command democapsid builds a capsid shell from Caspar-Klug indices and
// writes it as a vertex table, a wireframe, a surface or an image.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/democapsid/capsid"
	"github.com/democapsid/capsid/internal/d3"
	"github.com/democapsid/capsid/render"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot/vg"
)

func main() {
	p := capsid.DefaultParams()
	flag.IntVar(&p.H, "h", p.H, "lattice index h of the first CK vector")
	flag.IntVar(&p.K, "k", p.K, "lattice index k of the first CK vector")
	flag.IntVar(&p.HQ, "H", p.HQ, "lattice index H of the second CK vector")
	flag.IntVar(&p.KQ, "K", p.KQ, "lattice index K of the second CK vector")
	flag.IntVar(&p.Axis, "axis", p.Axis, "axial symmetry: 2, 3 or 5")
	flag.Var(&p.Tile, "tile", "lattice tiling: hex, trihex, snubhex, rhombitrihex or their dual- variants")
	flag.Float64Var(&p.R, "R", p.R, "circumradius of the lattice hexagon")
	flag.Float64Var(&p.Sphericity, "s", p.Sphericity, "inflation strength in [-1, 1]")
	flag.IntVar(&p.MaxIter, "iter", p.MaxIter, "root finder iteration limit")
	flag.Float64Var(&p.Tol, "tol", p.Tol, "root finder tolerance")
	var (
		format  = flag.String("format", "tsv", "output format: tsv, obj, stl, png, net or proj")
		output  = flag.String("o", "", "output file. Standard output when empty for text formats")
		subdiv  = flag.Int("subdiv", 4, "facet subdivisions for stl and png output")
		theta   = flag.Float64("theta", 0, "projection camera rotation about z")
		psi     = flag.Float64("psi", 0, "projection camera rotation about y")
		phi     = flag.Float64("phi", 0, "projection camera rotation about x")
		fiber   = flag.Float64("fiber", 0, "length of penton fibers added to tsv and obj output")
		weld    = flag.Bool("weld", false, "merge coincident facet vertices in obj output")
		verbose = flag.Bool("v", false, "log solver diagnostics")
	)
	flag.Parse()

	c, err := capsid.Build(p)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("built %v T=%d inflation=%v", c.Params, c.Params.T(), c.Params.Inflation())
		log.Printf("fold: angle=%g probe=%g residual=%g iterations=%d",
			c.Fold.Angle, c.Fold.Probe, c.Fold.Residual, c.Fold.Iterations)
		log.Printf("surface area error: %g", c.SurfaceAreaError())
		b := d3.Box(c.Bounds())
		log.Printf("bounds: center=%v size=%v", b.Center(), b.Size())
	}

	facets := c.Facets
	if *fiber > 0 {
		for _, seg := range c.PentonFibers(*fiber) {
			facets = append(facets, capsid.Facet{
				Vertices: []r3.Vec{seg[0], seg[1]},
				Edges:    [][2]int{{0, 1}},
				Label:    "fiber",
			})
		}
	}

	switch *format {
	case "tsv":
		err = writeText(*output, func(w io.Writer) error { return render.WriteTSV(w, facets) })
	case "obj":
		err = writeText(*output, func(w io.Writer) error {
			if *weld {
				return render.WriteMeshOBJ(w, c.Weld(1e-6*p.R))
			}
			return render.WriteOBJ(w, facets)
		})
	case "stl":
		err = render.CreateSTL(outputOr(*output, "capsid.stl"), c.Shell(*subdiv))
	case "png":
		err = render.PreviewPNG(c.Shell(*subdiv), outputOr(*output, "capsid.png"), 768, 768, render.DefaultView())
	case "net":
		err = render.PlotNet(c).Save(6*vg.Inch, 6*vg.Inch, outputOr(*output, "net.png"))
	case "proj":
		err = render.PlotProjection(c, *theta, *psi, *phi).Save(6*vg.Inch, 6*vg.Inch, outputOr(*output, "proj.png"))
	default:
		err = fmt.Errorf("unknown output format %q", *format)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func writeText(path string, write func(io.Writer) error) error {
	if path == "" {
		return write(os.Stdout)
	}
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	if err := write(fp); err != nil {
		return err
	}
	return fp.Close()
}

func outputOr(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}
