package d2

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestInTriangleCentroid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	box := NewBox2(r2.Vec{}, r2.Vec{X: 20, Y: 20})
	for i := 0; i < 1000; i++ {
		tri := box.RandomSet(rng, 3)
		if TriangleArea(tri[0], tri[1], tri[2]) < 1e-6 {
			continue
		}
		c := tri.Centroid()
		if !InTriangle(c, tri[0], tri[1], tri[2]) {
			t.Fatalf("centroid %v not in triangle %v", c, tri)
		}
		for _, v := range tri {
			if !InTriangle(v, tri[0], tri[1], tri[2]) {
				t.Fatalf("corner %v not in triangle %v", v, tri)
			}
		}
		far := r2.Add(box.Max, r2.Vec{X: 1, Y: 1})
		if InTriangle(far, tri[0], tri[1], tri[2]) {
			t.Fatalf("point %v outside bounds reported in triangle %v", far, tri)
		}
	}
}

func TestRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	box := NewBox2(r2.Vec{}, r2.Vec{X: 10, Y: 10})
	for _, p := range box.RandomSet(rng, 100) {
		if got := Rotate(p, 0); got != p {
			t.Errorf("rotate by zero changed %v to %v", p, got)
		}
		theta := rng.Float64() * 2 * math.Pi
		got := Rotate(p, theta)
		if math.Abs(r2.Norm(got)-r2.Norm(p)) > 1e-12 {
			t.Errorf("rotate changed norm of %v. got %g. want %g", p, r2.Norm(got), r2.Norm(p))
		}
	}
	got := Rotate(r2.Vec{X: 1}, math.Pi/2)
	if !EqualWithin(got, r2.Vec{Y: 1}, 1e-15) {
		t.Errorf("rotation is not counter-clockwise: got %v", got)
	}
}

func TestIntersect(t *testing.T) {
	for _, test := range []struct {
		name           string
		p1, q1, p2, q2 r2.Vec
		want           r2.Vec
		ok             bool
	}{
		{"cross", r2.Vec{X: -1}, r2.Vec{X: 1}, r2.Vec{Y: -1}, r2.Vec{Y: 1}, r2.Vec{}, true},
		{"endpoint", r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 1, Y: -1}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1}, true},
		{"parallel", r2.Vec{}, r2.Vec{X: 1}, r2.Vec{Y: 1}, r2.Vec{X: 1, Y: 1}, r2.Vec{}, false},
		{"collinear", r2.Vec{}, r2.Vec{X: 2}, r2.Vec{X: 1}, r2.Vec{X: 3}, r2.Vec{}, false},
		{"beyond first", r2.Vec{}, r2.Vec{X: 1}, r2.Vec{X: 2, Y: -1}, r2.Vec{X: 2, Y: 1}, r2.Vec{}, false},
		{"beyond second", r2.Vec{X: -1}, r2.Vec{X: 1}, r2.Vec{Y: 1}, r2.Vec{Y: 2}, r2.Vec{}, false},
	} {
		got, ok := Intersect(test.p1, test.q1, test.p2, test.q2)
		if ok != test.ok {
			t.Errorf("%s: got ok=%v. want %v", test.name, ok, test.ok)
			continue
		}
		if ok && !EqualWithin(got, test.want, 1e-12) {
			t.Errorf("%s: got %v. want %v", test.name, got, test.want)
		}
	}
}

func TestOnSameLine(t *testing.T) {
	a, b := r2.Vec{}, r2.Vec{X: 1, Y: 1}
	if !OnSameLine(a, b, r2.Vec{X: 3, Y: 3}, r2.Vec{X: -2, Y: -2}) {
		t.Error("segments on y=x not reported on same line")
	}
	if OnSameLine(a, b, r2.Vec{X: 3, Y: 3}, r2.Vec{X: 3, Y: 4}) {
		t.Error("crossing segment reported on same line")
	}
}

func TestRing(t *testing.T) {
	if got := Ring([]int{}); len(got) != 0 {
		t.Errorf("empty ring got %v", got)
	}
	if got := Ring([]int{7}); len(got) != 0 {
		t.Errorf("single element ring got %v", got)
	}
	got := Ring([]int{0, 1, 2})
	want := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("got %d pairs. want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d: got %v. want %v", i, got[i], want[i])
		}
	}
}

func TestTransformAffineFit(t *testing.T) {
	src := Set{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0.5, Y: 1.5}}
	dst := [3]r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 2}, {X: 0, Y: 4, Z: -1}}
	hom := Columns(
		r3.Vec{X: src[0].X, Y: src[0].Y, Z: 1},
		r3.Vec{X: src[1].X, Y: src[1].Y, Z: 1},
		r3.Vec{X: src[2].X, Y: src[2].Y, Z: 1},
	)
	inv := hom.Inverse()
	id := hom.Mul(inv)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(id.At(i, j)-want) > 1e-12 {
				t.Fatalf("M*inv(M) [%d,%d] got %g. want %g", i, j, id.At(i, j), want)
			}
		}
	}
	m := Columns(dst[0], dst[1], dst[2]).Mul(inv)
	for i := range src {
		got := m.ApplyR3(src[i])
		if r3.Norm(r3.Sub(got, dst[i])) > 1e-12 {
			t.Errorf("point %d mapped to %v. want %v", i, got, dst[i])
		}
	}
	if det := hom.Determinant(); math.Abs(det-3) > 1e-12 {
		t.Errorf("determinant got %g. want 3", det)
	}
}
