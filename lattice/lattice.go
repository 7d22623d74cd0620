// Package lattice builds the periodic planar tilings that are meshed
// onto the faces of a capsid. A tiling is described by a Basis: two
// vectors spanning the lattice and the tile polygons placed in every
// lattice cell.
package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/democapsid/capsid/internal/d2"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

const sqrt3 = 1.7320508075688772

// Tiler returns the polygon of one tile shape placed in the lattice
// cell with the given origin. Polygons are closed rings: the last point
// connects back to the first.
type Tiler func(origin r2.Vec) []r2.Vec

// Basis is a periodic planar tiling. Sweeping every Tiler over all
// integer combinations of A1 and A2 covers the plane without gaps.
type Basis struct {
	A1, A2 r2.Vec
	Tilers []Tiler
}

var constructors = [numTiles]func(R float64) Basis{
	Hex:              hex,
	TriHex:           trihex,
	SnubHex:          snubhex,
	RhombiTriHex:     rhombitrihex,
	DualHex:          dualhex,
	DualTriHex:       dualtrihex,
	DualSnubHex:      dualsnubhex,
	DualRhombiTriHex: dualrhombitrihex,
}

// New returns the Basis of tiling t for a hexagon circumradius R.
func New(t Tile, R float64) (Basis, error) {
	if !t.valid() {
		return Basis{}, fmt.Errorf("%w: %v", ErrUnknownTile, t)
	}
	if R <= 0 || math.IsInf(R, 0) || math.IsNaN(R) {
		return Basis{}, errors.New("lattice: circumradius must be positive and finite")
	}
	return constructors[t](R), nil
}

// Det returns the determinant of the basis matrix, the signed area of
// one lattice cell.
func (b Basis) Det() float64 {
	return r2.Cross(b.A1, b.A2)
}

// Cell returns the origin of lattice cell (i, j).
func (b Basis) Cell(i, j int) r2.Vec {
	return r2.Add(r2.Scale(float64(i), b.A1), r2.Scale(float64(j), b.A2))
}

// Coefficients returns the lattice coordinates (x, y) of v such that
// v = x*A1 + y*A2.
func (b Basis) Coefficients(v r2.Vec) (r2.Vec, error) {
	m := mat.NewDense(2, 2, []float64{
		b.A1.X, b.A2.X,
		b.A1.Y, b.A2.Y,
	})
	var x mat.VecDense
	if err := x.SolveVec(m, mat.NewVecDense(2, []float64{v.X, v.Y})); err != nil {
		return r2.Vec{}, fmt.Errorf("lattice: degenerate basis: %w", err)
	}
	return r2.Vec{X: x.AtVec(0), Y: x.AtVec(1)}, nil
}

// Hexagon returns a regular hexagon of circumradius R with a vertex
// on the positive y axis, rotated counter-clockwise by theta.
func Hexagon(R, theta float64) []r2.Vec {
	r := R * sqrt3 / 2
	return d2.Set{
		{X: 0, Y: R}, {X: r, Y: R / 2}, {X: r, Y: -R / 2},
		{X: 0, Y: -R}, {X: -r, Y: -R / 2}, {X: -r, Y: R / 2},
	}.Rotate(theta)
}

// Triangle returns an equilateral triangle of circumradius R with a
// vertex on the positive y axis, rotated counter-clockwise by theta.
func Triangle(R, theta float64) []r2.Vec {
	a := sqrt3 * R
	return d2.Set{{X: 0, Y: R}, {X: a / 2, Y: -R / 2}, {X: -a / 2, Y: -R / 2}}.Rotate(theta)
}

// Square returns a square of circumradius R with a vertex on the
// positive y axis, rotated counter-clockwise by theta.
func Square(R, theta float64) []r2.Vec {
	return d2.Set{{X: 0, Y: R}, {X: R, Y: 0}, {X: 0, Y: -R}, {X: -R, Y: 0}}.Rotate(theta)
}

// at returns a Tiler placing poly displaced by offset in every cell.
func at(poly []r2.Vec, offset r2.Vec) Tiler {
	shape := d2.Set(poly).Translate(offset)
	return func(origin r2.Vec) []r2.Vec {
		return shape.Translate(origin)
	}
}

// sixfold returns the Tilers of poly and its five rotations by multiples
// of 60 degrees clockwise about the cell origin.
func sixfold(poly []r2.Vec) []Tiler {
	tilers := make([]Tiler, 6)
	for i := range tilers {
		tilers[i] = at(d2.Set(poly).Rotate(-float64(i)*math.Pi/3), r2.Vec{})
	}
	return tilers
}

func hex(R float64) Basis {
	r6 := R * sqrt3 / 2
	return Basis{
		A1:     r2.Vec{X: 2 * r6},
		A2:     r2.Vec{X: r6, Y: r6 * sqrt3},
		Tilers: []Tiler{at(Hexagon(R, 0), r2.Vec{})},
	}
}

func trihex(R float64) Basis {
	r6 := R * sqrt3 / 2
	R3 := R / sqrt3
	r3 := R3 / 2
	return Basis{
		A1: r2.Vec{X: 2 * R},
		A2: r2.Vec{X: R, Y: R * sqrt3},
		Tilers: []Tiler{
			at(Hexagon(R, -math.Pi/6), r2.Vec{}),
			at(Triangle(R3, -math.Pi/3), r2.Vec{X: R, Y: r6 - r3}),
			at(Triangle(R3, 0), r2.Vec{Y: r6 + r3}),
		},
	}
}

func snubhex(R float64) Basis {
	r6 := R * sqrt3 / 2
	R3 := 2 * r6 / 3
	r3 := R3 / 2
	up := Triangle(R3, 0)
	down := Triangle(R3, -math.Pi/3)
	return Basis{
		A1: r2.Vec{X: 2.5 * R, Y: R * sqrt3 / 2},
		A2: r2.Vec{X: 0.5 * R, Y: 3 * R * sqrt3 / 2},
		Tilers: []Tiler{
			at(Hexagon(R, -math.Pi/6), r2.Vec{}),
			at(down, r2.Vec{Y: -(r6 + r3)}),
			at(up, r2.Vec{X: R, Y: -(r6 - r3)}),
			at(down, r2.Vec{X: R, Y: r6 - r3}),
			at(up, r2.Vec{Y: r6 + r3}),
			at(up, r2.Vec{X: R, Y: r6 + r3}),
			at(up, r2.Vec{X: 1.5 * R, Y: r3}),
			at(down, r2.Vec{X: -R, Y: r6 - r3}),
			at(down, r2.Vec{X: 1.5 * R, Y: -r3}),
		},
	}
}

func rhombitrihex(R float64) Basis {
	r6 := R * sqrt3 / 2
	R4 := math.Sqrt(2*R*R) / 2
	r4 := R4 / math.Sqrt2
	R3 := R / sqrt3
	s1 := d2.Set(Square(R4, -math.Pi/4)).Translate(r2.Vec{Y: r4 + r6})
	return Basis{
		A1: r2.Vec{X: R + r6 + 0.5*R, Y: 0.5*R + r6},
		A2: r2.Vec{Y: 2*r6 + R},
		Tilers: []Tiler{
			at(Hexagon(R, -math.Pi/6), r2.Vec{}),
			at(s1, r2.Vec{}),
			at(s1.Rotate(-math.Pi/3), r2.Vec{}),
			at(s1.Rotate(-2*math.Pi/3), r2.Vec{}),
			at(Triangle(R3, math.Pi/2), r2.Vec{X: R + R3}),
			at(Triangle(R3, -math.Pi/2), r2.Vec{X: 0.5*R + 0.5*R3, Y: r6 + R3*sqrt3/2}),
		},
	}
}

func dualhex(R float64) Basis {
	r6 := R * sqrt3 / 2
	R3 := R / sqrt3
	r3 := R3 / 2
	return Basis{
		A1:     r2.Vec{X: 1.5 * R, Y: r6},
		A2:     r2.Vec{Y: 2 * r6},
		Tilers: sixfold(d2.Set(Triangle(R3, 0)).Translate(r2.Vec{Y: -(r6 - r3)})),
	}
}

func dualtrihex(R float64) Basis {
	r6 := R * sqrt3 / 2
	m := 0.25 * R * math.Sin(math.Pi/6) / math.Cos(math.Pi/3)
	inner := []r2.Vec{{X: 0, Y: 0}, {X: 0.5 * r6, Y: -m}, {X: r6, Y: 0}, {X: 0.5 * r6, Y: m}}
	outer := []r2.Vec{{X: -0.5 * r6, Y: 0.5*R + m}, {X: 0, Y: 0.5 * R}, {X: 0.5 * r6, Y: 0.5*R + m}, {X: 0, Y: 0.5*R + 2*m}}
	return Basis{
		A1:     r2.Vec{X: 2 * r6},
		A2:     r2.Vec{X: r6, Y: sqrt3 * r6},
		Tilers: append(sixfold(inner), sixfold(outer)...),
	}
}

func dualsnubhex(R float64) Basis {
	r6 := R * sqrt3 / 2
	pentagon := []r2.Vec{
		{X: 0, Y: 0},
		{X: 0, Y: r6 + R*sqrt3/6},
		{X: 0.5 * R, Y: r6 + R*sqrt3/3},
		{X: R, Y: r6 + R*sqrt3/6},
		{X: R, Y: R * sqrt3 / 3},
	}
	return Basis{
		A1:     r2.Vec{X: 2.5 * R, Y: r6},
		A2:     r2.Vec{X: 0.5 * R, Y: 2*r6 + 2*R*sqrt3/3 - R*sqrt3/6},
		Tilers: sixfold(pentagon),
	}
}

func dualrhombitrihex(R float64) Basis {
	r6 := R * sqrt3 / 2
	kite := []r2.Vec{{X: 0, Y: 0}, {X: 0, Y: r6}, {X: 0.5 * R, Y: r6}, {X: sqrt3 / 2 * r6, Y: 0.5 * r6}}
	return Basis{
		A1:     r2.Vec{X: 1.5 * R, Y: r6},
		A2:     r2.Vec{Y: 2 * r6},
		Tilers: sixfold(kite),
	}
}
