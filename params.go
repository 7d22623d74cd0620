package capsid

import (
	"fmt"
	"math"

	"github.com/democapsid/capsid/lattice"
)

// Params describes a capsid request. H and K step along the lattice
// towards the five-fold vertex and HQ, KQ set the lattice step of the
// elongated (quasi-equivalent) direction. Capsids with H==HQ and K==KQ
// are isometric.
type Params struct {
	H, K   int
	HQ, KQ int
	// Axis is the order of the symmetry axis aligned with z: 2, 3 or 5.
	Axis int
	Tile lattice.Tile
	// R is the circumradius of the lattice hexagon.
	R float64
	// Sphericity in [-1, 1] blends the faceted shell towards its sphere
	// or capped cylinder. Zero leaves it faceted.
	Sphericity float64
	// Fold solver settings. Zero values are replaced by the defaults.
	MaxIter int
	Tol     float64
}

const (
	defaultMaxIter = 100
	defaultTol     = 1e-15
)

// DefaultParams returns the parameters of a T=3 icosahedral capsid
// meshed with hexagons.
func DefaultParams() Params {
	return Params{
		H: 1, K: 1, HQ: 1, KQ: 1,
		Axis:    5,
		Tile:    lattice.Hex,
		R:       1,
		MaxIter: defaultMaxIter,
		Tol:     defaultTol,
	}
}

// Inflation is the smooth surface a shell is inflated towards.
type Inflation int

const (
	Sphere Inflation = iota
	Cylinder
)

func (i Inflation) String() string {
	if i == Sphere {
		return "sphere"
	}
	return "cylinder"
}

// Inflation returns Sphere for isometric capsids, where (h,k) equals
// (H,K), and Cylinder for elongated ones.
func (p Params) Inflation() Inflation {
	if p.H == p.HQ && p.K == p.KQ {
		return Sphere
	}
	return Cylinder
}

// T returns the triangulation number h²+hk+k².
func (p Params) T() int {
	return p.H*p.H + p.H*p.K + p.K*p.K
}

// Validate checks p is a well formed request.
func (p Params) Validate() error {
	if _, ok := symmetries[p.Axis]; !ok {
		return fmt.Errorf("%w: got %d", ErrAxis, p.Axis)
	}
	if _, err := lattice.ParseTile(p.Tile.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrTile, p.Tile)
	}
	switch {
	case p.H < 0 || p.K < 0 || p.HQ < 0 || p.KQ < 0:
		return fmt.Errorf("%w: negative lattice index in (%d,%d,%d,%d)", ErrParams, p.H, p.K, p.HQ, p.KQ)
	case p.H == 0 && p.K == 0:
		return fmt.Errorf("%w: h and k are both zero", ErrParams)
	case !(p.R > 0) || math.IsInf(p.R, 1):
		return fmt.Errorf("%w: circumradius %g not positive", ErrParams, p.R)
	case !(p.Sphericity >= -1 && p.Sphericity <= 1):
		return fmt.Errorf("%w: sphericity %g outside [-1, 1]", ErrParams, p.Sphericity)
	case p.MaxIter < 0:
		return fmt.Errorf("%w: negative iteration limit %d", ErrParams, p.MaxIter)
	case p.Tol < 0 || math.IsNaN(p.Tol):
		return fmt.Errorf("%w: tolerance %g not positive", ErrParams, p.Tol)
	}
	return nil
}

func (p Params) withDefaults() Params {
	if p.MaxIter == 0 {
		p.MaxIter = defaultMaxIter
	}
	if p.Tol == 0 {
		p.Tol = defaultTol
	}
	return p
}

func (p Params) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d) axis=%d tile=%v R=%g s=%g", p.H, p.K, p.HQ, p.KQ, p.Axis, p.Tile, p.R, p.Sphericity)
}
