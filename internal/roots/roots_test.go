package roots

import (
	"math"
	"testing"
)

func TestBrackets(t *testing.T) {
	var got []Bracket
	s := Brackets(math.Sin, 0.5, 10, 95)
	for s.Next() {
		got = append(got, s.Bracket())
	}
	want := []float64{math.Pi, 2 * math.Pi, 3 * math.Pi}
	if len(got) != len(want) {
		t.Fatalf("got %d brackets. want %d: %v", len(got), len(want), got)
	}
	for i, b := range got {
		if b.A > want[i] || b.B < want[i] {
			t.Errorf("bracket %v does not contain root %g", b, want[i])
		}
		if math.Abs(b.B-b.A-0.1) > 1e-12 {
			t.Errorf("bracket %v width not one step", b)
		}
	}
	if s.Next() {
		t.Error("exhausted scanner yielded another bracket")
	}
}

func TestBracketsNone(t *testing.T) {
	_, ok := First(func(x float64) float64 { return x*x + 1 }, -5, 5, 100)
	if ok {
		t.Fatal("found bracket for function without roots")
	}
}

func TestBracketsSkipNaN(t *testing.T) {
	// Sign changes across an undefined gap are not brackets.
	f := func(x float64) float64 {
		if x > 0.95 && x < 1.05 {
			return math.NaN()
		}
		return x - 1
	}
	if b, ok := First(f, 0, 2, 20); ok {
		t.Fatalf("bracket %v spans undefined samples", b)
	}
	b, ok := First(f, 0, 3, 30)
	if ok {
		t.Fatalf("bracket %v spans undefined samples", b)
	}
}

func TestBisection(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	b, ok := First(f, 0, 2, 10)
	if !ok {
		t.Fatal("no bracket")
	}
	res := Bisection(f, b.A, b.B, 100, 1e-15)
	if !res.Converged {
		t.Fatalf("did not converge: %+v", res)
	}
	if math.Abs(res.Root-math.Sqrt2) > 1e-14 {
		t.Errorf("got root %g. want %g", res.Root, math.Sqrt2)
	}
	if math.Abs(res.F) > 1e-13 {
		t.Errorf("residual %g too large", res.F)
	}
	if res.Iterations > 60 {
		t.Errorf("bisection took %d iterations", res.Iterations)
	}

	res = Bisection(f, b.A, b.B, 5, 1e-15)
	if res.Converged {
		t.Errorf("converged in 5 iterations: %+v", res)
	}
	if res.Iterations != 5 {
		t.Errorf("got %d iterations. want 5", res.Iterations)
	}
}

func TestBisectionExactZero(t *testing.T) {
	res := Bisection(func(x float64) float64 { return x - 1 }, 0, 2, 100, 1e-15)
	if !res.Converged || res.Root != 1 || res.Iterations != 1 {
		t.Errorf("got %+v. want exact root 1 at first iteration", res)
	}
}
