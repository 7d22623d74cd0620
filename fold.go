package capsid

import (
	"errors"
	"fmt"
	"math"

	"github.com/democapsid/capsid/internal/d3"
	"github.com/democapsid/capsid/internal/roots"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	sqrt3 = 1.7320508075688772
	sqrt5 = 2.23606797749979
	phi   = (1 + sqrt5) / 2

	// probeStep is the angular resolution of the search for a first
	// valid fold angle in [0, π/2).
	probeStep = math.Pi / 1800
)

// Fold is the outcome of folding the capsid net into its 12 vertices.
type Fold struct {
	Vertices Vertices
	// Probe is the first angle at which the fold is constructible and
	// Angle the solved fold angle. Both are zero for the closed form
	// five-fold construction.
	Probe, Angle float64
	// Residual is the fold objective at Angle.
	Residual   float64
	Iterations int
}

type foldFunc func(ck CKVectors, s solver) (Fold, error)

// FoldVertices solves the 12 icosahedron vertices whose edges have the
// lengths of the CK vectors, for the given axial symmetry.
func FoldVertices(ck CKVectors, axis, maxIter int, tol float64) (Fold, error) {
	sym, err := SymmetryOf(axis)
	if err != nil {
		return Fold{}, err
	}
	if a, b, _ := ck.Lengths(); !(a > 0 && b > 0) {
		return Fold{}, fmt.Errorf("%w: degenerate CK vectors |C_T|=%g |C_Q|=%g", ErrImpossibleConstruction, a, b)
	}
	f, err := sym.fold(ck, solver{maxIter: maxIter, tol: tol})
	if err != nil {
		return Fold{}, err
	}
	f.Vertices.center()
	return f, nil
}

var errNoBracket = fmt.Errorf("%w: no sign change in search interval", ErrNoConvergence)

type solver struct {
	maxIter int
	tol     float64
}

// solve refines the first sign change of f over [a, b], sampled in
// maxIter steps.
func (s solver) solve(f roots.Func, a, b float64) (roots.Result, error) {
	br, ok := roots.First(f, a, b, s.maxIter)
	if !ok {
		return roots.Result{}, errNoBracket
	}
	res := roots.Bisection(f, br.A, br.B, s.maxIter, s.tol)
	if !res.Converged {
		return res, fmt.Errorf("%w: residual %g after %d iterations", ErrNoConvergence, res.F, res.Iterations)
	}
	return res, nil
}

// probe returns the first angle in [0, π/2) at which construct succeeds.
func probe[T any](construct func(t float64) (T, error)) (float64, error) {
	for i := 0; float64(i)*probeStep < math.Pi/2; i++ {
		t := float64(i) * probeStep
		if _, err := construct(t); err == nil {
			return t, nil
		} else if !errors.Is(err, ErrNumerical) {
			return 0, err
		}
	}
	return 0, ErrProbeExhausted
}

// solveFold finds the root of the residual of construct within a
// quarter turn of the first valid probe angle. Angles where the
// construction fails are skipped by the bracket scan.
func solveFold[T any](s solver, construct func(t float64) (T, error), residual func(T) float64) (f Fold, best T, err error) {
	f.Probe, err = probe(construct)
	if err != nil {
		return f, best, err
	}
	objective := func(t float64) float64 {
		v, err := construct(t)
		if err != nil {
			return math.NaN()
		}
		return residual(v)
	}
	res, err := s.solve(objective, f.Probe, f.Probe+math.Pi/4)
	if err != nil {
		return f, best, err
	}
	best, err = construct(res.Root)
	if err != nil {
		return f, best, err
	}
	f.Angle, f.Residual, f.Iterations = res.Root, residual(best), res.Iterations
	return f, best, nil
}

// center shifts the vertices along z so their vertical extent is
// symmetric about z=0.
func (v *Vertices) center() {
	shift := -d3.Set(v[:]).Bounds().Center().Z
	for i := range v {
		v[i].Z += shift
	}
}

func ckAngle(ck CKVectors) float64 {
	return d3.Angle(d3.FromR2(ck[0], 0), d3.FromR2(ck[1], 0))
}

// foldPentagonal places the apex and upper pentagonal ring of a regular
// pentagonal pyramid and derives the lower ring in closed form.
func foldPentagonal(ck CKVectors, _ solver) (Fold, error) {
	a, b, _ := ck.Lengths()
	R5 := a * math.Sqrt((5+sqrt5)/10)
	h5 := (1 + sqrt5) * a / (2 * math.Sqrt(5+2*sqrt5))
	pA := r3.Vec{Z: h5}
	pB := d3.RotateZ(r3.Vec{X: -R5}, 54*math.Pi/180)
	pC := r3.Add(pB, r3.Vec{X: a})

	q := r3.Add(pC, d3.Rotate(r3.Vec{X: b}, r3.Vec{Y: 1}, -math.Pi-ckAngle(ck)))
	p := r3.Add(pB, d3.Proj(r3.Sub(q, pB), r3.Sub(pC, pB)))
	disc := R5*R5*p.Y*p.Y - (p.X*p.Y)*(p.X*p.Y)
	if p.Y == 0 || disc < 0 {
		return Fold{}, fmt.Errorf("%w: lower ring does not meet the pentagon circumcircle", ErrImpossibleConstruction)
	}
	d := r3.Vec{X: p.X, Y: -math.Abs(p.Y) * math.Sqrt(disc) / (p.Y * p.Y)}
	h2 := q.Z*q.Z - (p.Y-d.Y)*(p.Y-d.Y)
	if h2 < 0 {
		return Fold{}, fmt.Errorf("%w: lower ring height is imaginary", ErrImpossibleConstruction)
	}
	pG := r3.Add(d, r3.Vec{Z: -math.Sqrt(h2)})

	const turn = 2 * math.Pi / 5
	var v Vertices
	v[0], v[1], v[2] = pA, pB, pC
	for i := 1; i <= 3; i++ {
		v[2+i] = d3.RotateZ(pC, float64(i)*turn)
	}
	v[6] = pG
	for i := 1; i <= 4; i++ {
		v[6+i] = d3.RotateZ(pG, float64(i)*turn)
	}
	v[11] = r3.Vec{Z: pG.Z - pA.Z}
	return Fold{Vertices: v}, nil
}

// panel is one candidate fold: the free vertices placed for a fold
// angle and how far they are from closing the shell.
type panel struct {
	lifted, mirror, tip r3.Vec
	residual            float64
}

// hinge opens a side of length b from pivot towards toward by theta
// about k. It returns the foot p of the opened corner on the unopened
// side and the arm from p to the corner.
func hinge(pivot, toward, k r3.Vec, b, theta float64) (p, arm r3.Vec) {
	v := r3.Scale(b, r3.Unit(r3.Sub(toward, pivot)))
	o := d3.Rotate(v, k, theta)
	p = r3.Add(pivot, d3.Proj(o, v))
	return p, r3.Sub(r3.Add(pivot, o), p)
}

// swing solves the rotation of arm about axis through p that puts its
// tip at distance c from target.
func swing(s solver, p, arm, axis, target r3.Vec, c float64) (r3.Vec, error) {
	tip := func(t float64) r3.Vec { return r3.Add(p, d3.Rotate(arm, axis, t)) }
	res, err := s.solve(func(t float64) float64 {
		return c - r3.Norm(r3.Sub(tip(t), target))
	}, 0, 2*math.Pi)
	if err != nil {
		return r3.Vec{}, err
	}
	return tip(res.Root), nil
}

// foldTrigonal folds the net around a three-fold axis. One triangular
// face sits on top and the fold angle of its neighbours is solved so
// the middle band closes.
func foldTrigonal(ck CKVectors, s solver) (Fold, error) {
	a, b, c := ck.Lengths()
	theta := ckAngle(ck)
	pA := r3.Vec{Y: a / sqrt3}
	pB := r3.Vec{X: a / 2, Y: -a * sqrt3 / 6}
	pC := r3.Vec{X: -a / 2, Y: -a * sqrt3 / 6}
	qD := r3.Vec{Y: -a * 2 * sqrt3 / 3}

	construct := func(t float64) (panel, error) {
		v := r3.Scale(a*sqrt3/2, r3.Unit(qD))
		pD := r3.Add(r3.Vec{Y: -a * sqrt3 / 6}, d3.Rotate(v, r3.Unit(r3.Sub(pB, pC)), t))
		pF := d3.RotateZ(pD, 2*math.Pi/3)
		p, arm := hinge(pB, pD, r3.Unit(r3.Cross(pD, pB)), b, theta)
		pG, err := swing(s, p, arm, r3.Unit(r3.Sub(pB, pD)), pF, c)
		if err != nil {
			return panel{}, err
		}
		return panel{lifted: pD, mirror: pF, tip: pG, residual: math.Abs(pD.Y) - r3.Norm(r3.Sub(pG, d3.ZProj(pG)))}, nil
	}
	f, best, err := solveFold(s, construct, func(p panel) float64 { return p.residual })
	if err != nil {
		return f, err
	}

	const third = 2 * math.Pi / 3
	pD, pF, pG := best.lifted, best.mirror, best.tip
	pH := d3.RotateZ(pG, -third)
	ring := d3.RotateZ(r3.Sub(pH, d3.ZProj(pH)), math.Pi/3)
	pJ := r3.Add(r3.Scale(pA.Y, r3.Unit(ring)), r3.Vec{Z: pH.Z + pD.Z - pA.Z})
	f.Vertices = Vertices{
		pA, pB, pC, pD,
		d3.RotateZ(pF, third), pF, pG, pH,
		d3.RotateZ(pH, -third), pJ, d3.RotateZ(pJ, -third), d3.RotateZ(pJ, -2*third),
	}
	return f, nil
}

// foldDigonal folds the net around a two-fold axis. The top edge lies
// on the x axis and two fold angles are solved: the first closes the
// side band and the second places the lower edge.
func foldDigonal(ck CKVectors, s solver) (Fold, error) {
	a, b, c := ck.Lengths()
	theta := ckAngle(ck)
	pA := r3.Vec{X: a / 2}
	pB := r3.Vec{X: -a / 2}
	pC := r3.Vec{Y: -a * phi / 2, Z: -(a*phi - a) / 2}
	pD := r3.Vec{Y: a * phi / 2, Z: -(a*phi - a) / 2}

	construct := func(t float64) (panel, error) {
		mid := r3.Scale(0.5, r3.Add(pB, pC))
		pE := r3.Add(mid, d3.Rotate(r3.Sub(mid, pA), r3.Unit(r3.Sub(pC, pB)), t))
		pF := d3.RotateZ(pE, math.Pi)
		p, arm := hinge(pA, pC, r3.Unit(r3.Cross(pC, pA)), b, theta)
		pG, err := swing(s, p, arm, r3.Unit(r3.Sub(pA, pC)), pF, c)
		if err != nil {
			return panel{}, err
		}
		return panel{lifted: pE, mirror: pF, tip: pG, residual: r3.Norm(r3.Sub(pE, d3.ZProj(pE))) - r3.Norm(r3.Sub(pG, d3.ZProj(pG)))}, nil
	}
	f, best, err := solveFold(s, construct, func(p panel) float64 { return p.residual })
	if err != nil {
		return f, err
	}

	pE, pF, pG := best.lifted, best.mirror, best.tip
	h := pG.Z + pE.Z
	lower := func(t float64) r3.Vec { return r3.Add(d3.RotateZ(pA, t), r3.Vec{Z: h}) }
	res, err := s.solve(func(t float64) float64 {
		return r3.Norm(r3.Sub(lower(t), pF)) - b
	}, 0, 2*math.Pi)
	if err != nil {
		return f, err
	}
	pK := lower(res.Root)
	pI := r3.Add(r3.Scale(pD.Y, d3.RotateZ(r3.Unit(r3.Sub(pK, d3.ZProj(pK))), math.Pi/2)), r3.Vec{Z: h - pD.Z})
	f.Vertices = Vertices{
		pA, pB, pC, pD,
		pE, pF, pG, d3.RotateZ(pG, math.Pi),
		pI, d3.RotateZ(pI, math.Pi), pK, d3.RotateZ(pK, math.Pi),
	}
	return f, nil
}
