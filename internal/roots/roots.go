// Package roots finds zero crossings of scalar functions by scanning
// an interval for sign changes and refining a bracket with bisection.
package roots

import "math"

// Func is a scalar function of one variable. A NaN result marks an
// argument where the function is undefined.
type Func func(x float64) float64

// Bracket is an interval [A, B] over which a function changes sign.
type Bracket struct {
	A, B float64
}

// Scanner lazily yields the brackets of a function over an interval
// divided into equal steps. Samples evaluating to NaN never form part
// of a bracket. A Scanner is consumed once.
type Scanner struct {
	f       Func
	a, step float64
	n, i    int
	prev    float64
	cur     Bracket
}

// Brackets returns a Scanner over [a, b] divided into n steps.
func Brackets(f Func, a, b float64, n int) *Scanner {
	return &Scanner{
		f:    f,
		a:    a,
		step: (b - a) / float64(n),
		n:    n,
		prev: sign(f(a)),
	}
}

// Next advances the scanner to the next bracket. It returns false
// once the interval is exhausted.
func (s *Scanner) Next() bool {
	for s.i < s.n {
		s.i++
		x := s.a + float64(s.i)*s.step
		cur := sign(s.f(x))
		prev := s.prev
		s.prev = cur
		if !math.IsNaN(prev) && !math.IsNaN(cur) && prev != cur {
			s.cur = Bracket{A: s.a + float64(s.i-1)*s.step, B: x}
			return true
		}
	}
	return false
}

// Bracket returns the bracket found by the last call to Next.
func (s *Scanner) Bracket() Bracket { return s.cur }

// First returns the first bracket of f over [a, b] scanned in n steps.
func First(f Func, a, b float64, n int) (Bracket, bool) {
	s := Brackets(f, a, b, n)
	if !s.Next() {
		return Bracket{}, false
	}
	return s.Bracket(), true
}

// Result is the outcome of a Bisection.
type Result struct {
	// Iterations performed.
	Iterations int
	// F is the function value at Root.
	F    float64
	Root float64
	// Converged is false when the iteration limit was reached before
	// the bracket half-width fell under the tolerance.
	Converged bool
}

// Bisection refines the bracket [a, b] of f by interval halving. It stops
// when the midpoint is an exact zero, when the bracket half-width is
// less than tol or after maxIter iterations.
func Bisection(f Func, a, b float64, maxIter int, tol float64) Result {
	fa := f(a)
	var res Result
	for res.Iterations = 1; res.Iterations <= maxIter; res.Iterations++ {
		c := (a + b) / 2
		fc := f(c)
		res.Root, res.F = c, fc
		if fc == 0 || (b-a)/2 < tol {
			res.Converged = true
			return res
		}
		if !math.IsNaN(fc) && sign(fc) == sign(fa) {
			a, fa = c, fc
		} else {
			b = c
		}
	}
	res.Iterations = maxIter
	return res
}

// sign returns -1, 0 or 1 following the sign of x, or NaN.
func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	}
	return x
}
