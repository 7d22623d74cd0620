package capsid

import (
	"errors"
	"fmt"

	"github.com/democapsid/capsid/lattice"
)

// Error categories. Every error returned by Build wraps exactly one of
// them so callers can tell bad input apart from a solver that gave up.
var (
	// ErrConfig marks invalid input, rejected before any geometry runs.
	ErrConfig = errors.New("capsid: invalid configuration")
	// ErrNumerical marks a failure of the fold solver.
	ErrNumerical = errors.New("capsid: numerical failure")
)

var (
	// ErrAxis is returned for an axial symmetry other than 2, 3 or 5.
	ErrAxis = fmt.Errorf("%w: axial symmetry must be 2, 3 or 5", ErrConfig)
	// ErrTile is returned for a tile outside the supported tilings.
	ErrTile = fmt.Errorf("%w: %w", ErrConfig, lattice.ErrUnknownTile)
	// ErrParams is returned for out of range lattice indices, radius,
	// sphericity or solver settings.
	ErrParams = fmt.Errorf("%w: bad parameters", ErrConfig)

	// ErrProbeExhausted is returned when no fold angle in the probe range
	// gives a valid construction.
	ErrProbeExhausted = fmt.Errorf("%w: fold angle probe exhausted", ErrNumerical)
	// ErrNoConvergence is returned when a root search finds no sign change
	// or bisection reaches its iteration limit before the tolerance.
	ErrNoConvergence = fmt.Errorf("%w: root search did not converge", ErrNumerical)
	// ErrImpossibleConstruction is returned when the lattice lengths admit
	// no folded shape, for example a negative square root argument.
	ErrImpossibleConstruction = fmt.Errorf("%w: impossible construction", ErrNumerical)
)
