package capsid

import (
	"math"

	"github.com/democapsid/capsid/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Inflater moves a point of the faceted shell towards a smooth surface.
type Inflater func(p r3.Vec) r3.Vec

// Spherize returns the Inflater of an isometric capsid. Points move
// along their position vector by s times their distance to the sphere
// through the folded vertices.
func Spherize(v *Vertices, s float64) Inflater {
	radius := r3.Norm(v[0])
	return func(p r3.Vec) r3.Vec {
		if s == 0 {
			return p
		}
		u, ok := d3.Unit(p)
		if !ok {
			return p
		}
		return r3.Add(p, r3.Scale(math.Abs(r3.Norm(p)-radius)*s, u))
	}
}

// Cylinderize returns the Inflater of an elongated capsid: a cylinder
// along z through the equatorial vertices closed by two spherical caps
// whose geometry depends on the axial symmetry.
func Cylinderize(v *Vertices, sym *Symmetry, s float64) Inflater {
	r := math.Hypot(v[6].X, v[6].Y)
	h2 := (v[4].Z - v[6].Z) / 2
	center, radius := sym.cap(v, r, h2)
	return func(p r3.Vec) r3.Vec {
		if s == 0 {
			return p
		}
		var dist float64
		var dir r3.Vec
		switch {
		case p.Z > h2:
			dist = math.Abs(r3.Norm(r3.Sub(p, r3.Vec{Z: center.Z})) - radius)
			dir = r3.Sub(p, r3.Vec{Z: h2})
		case p.Z < -h2:
			dist = math.Abs(r3.Norm(r3.Sub(p, r3.Vec{Z: -center.Z})) - radius)
			dir = r3.Sub(p, r3.Vec{Z: -h2})
		default:
			dist = r - math.Hypot(p.X, p.Y)
			dir = r3.Vec{X: p.X, Y: p.Y}
		}
		u, ok := d3.Unit(dir)
		if !ok {
			return p
		}
		return r3.Add(p, r3.Scale(dist*s, u))
	}
}

// inflater selects the Inflater for p: a sphere for isometric capsids
// and a capped cylinder otherwise.
func inflater(p Params, v *Vertices, sym *Symmetry) Inflater {
	if p.Inflation() == Sphere {
		return Spherize(v, p.Sphericity)
	}
	return Cylinderize(v, sym, p.Sphericity)
}
