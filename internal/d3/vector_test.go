package d3

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func randVec(rng *rand.Rand, scale float64) r3.Vec {
	return r3.Vec{
		X: scale * (2*rng.Float64() - 1),
		Y: scale * (2*rng.Float64() - 1),
		Z: scale * (2*rng.Float64() - 1),
	}
}

func TestRotate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		v := randVec(rng, 10)
		k := r3.Unit(randVec(rng, 1))
		if got := Rotate(v, k, 0); got != v {
			t.Fatalf("rotation by zero changed %v to %v", v, got)
		}
		theta := 2 * math.Pi * rng.Float64()
		got := Rotate(v, k, theta)
		if math.Abs(r3.Norm(got)-r3.Norm(v)) > 1e-12 {
			t.Fatalf("rotation changed norm. got %g. want %g", r3.Norm(got), r3.Norm(v))
		}
		if math.Abs(r3.Dot(got, k)-r3.Dot(v, k)) > 1e-12 {
			t.Fatalf("rotation changed the axial component")
		}
	}
	got := RotateZ(r3.Vec{X: 1}, math.Pi/2)
	if !EqualWithin(got, r3.Vec{Y: 1}, 1e-15) {
		t.Errorf("rotation about Z is not right handed: got %v", got)
	}
}

func TestAngle(t *testing.T) {
	for _, test := range []struct {
		p, q r3.Vec
		want float64
	}{
		{r3.Vec{X: 1}, r3.Vec{X: 2}, 0},
		{r3.Vec{X: 1}, r3.Vec{Y: 3}, math.Pi / 2},
		{r3.Vec{X: 1, Y: 1}, r3.Vec{X: -1, Y: -1}, math.Pi},
		{r3.Vec{X: 1e-8, Y: 1}, r3.Vec{X: 1e-8, Y: 1}, 0},
	} {
		got := Angle(test.p, test.q)
		if math.IsNaN(got) || math.Abs(got-test.want) > 1e-7 {
			t.Errorf("angle between %v and %v: got %g. want %g", test.p, test.q, got, test.want)
		}
	}
}

func TestUnit(t *testing.T) {
	if _, ok := Unit(r3.Vec{}); ok {
		t.Error("zero vector has a unit vector")
	}
	u, ok := Unit(r3.Vec{Z: -4})
	if !ok || u != (r3.Vec{Z: -1}) {
		t.Errorf("got %v, %v. want (0,0,-1), true", u, ok)
	}
}

func TestCircumcenters(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		p, q, r := randVec(rng, 5), randVec(rng, 5), randVec(rng, 5)
		if r3.Norm(r3.Cross(r3.Sub(q, p), r3.Sub(r, p))) < 1e-3 {
			continue
		}
		c := CircumcircleCenter(p, q, r)
		rad := r3.Norm(r3.Sub(p, c))
		for _, v := range []r3.Vec{q, r} {
			if d := r3.Norm(r3.Sub(v, c)); math.Abs(d-rad) > 1e-8*rad {
				t.Fatalf("circumcircle: point at %g from center. want %g", d, rad)
			}
		}
		n := r3.Cross(r3.Sub(q, p), r3.Sub(r, p))
		if math.Abs(r3.Dot(r3.Sub(c, p), r3.Unit(n))) > 1e-8*rad {
			t.Fatal("circumcircle center not on the triangle's plane")
		}

		s := randVec(rng, 5)
		if math.Abs(r3.Dot(r3.Sub(s, p), r3.Unit(n))) < 1e-2 {
			continue
		}
		c = CircumsphereCenter(p, q, r, s)
		rad = r3.Norm(r3.Sub(p, c))
		for _, v := range []r3.Vec{q, r, s} {
			if d := r3.Norm(r3.Sub(v, c)); math.Abs(d-rad) > 1e-6*rad {
				t.Fatalf("circumsphere: point at %g from center. want %g", d, rad)
			}
		}
	}
}

func TestCamera(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	if cam := Camera(0, 0, 0, r3.Vec{}); cam != (Transform{}) {
		t.Fatalf("camera without rotation or offset is not the identity: %+v", cam)
	}
	center := r3.Vec{X: 1, Y: 2, Z: 3}
	cam := Camera(0.3, -0.7, 1.1, center)
	if got := cam.Transform(center); !EqualWithin(got, r3.Vec{}, 1e-12) {
		t.Errorf("camera center maps to %v. want origin", got)
	}
	for i := 0; i < 50; i++ {
		a, b := randVec(rng, 3), randVec(rng, 3)
		da := r3.Norm(r3.Sub(a, b))
		db := r3.Norm(r3.Sub(cam.Transform(a), cam.Transform(b)))
		if math.Abs(da-db) > 1e-12 {
			t.Fatalf("camera is not rigid: distance %g became %g", da, db)
		}
	}
	got := Camera(math.Pi/2, 0, 0, r3.Vec{}).Transform(r3.Vec{X: 1})
	if !EqualWithin(got, r3.Vec{Y: 1}, 1e-15) {
		t.Errorf("yaw of pi/2 maps x to %v. want y", got)
	}
}

func TestSetBounds(t *testing.T) {
	s := Set{{X: 1, Y: -2, Z: 3}, {X: -1, Y: 4, Z: 0}, {X: 0, Y: 0, Z: -5}}
	b := s.Bounds()
	if want := (r3.Vec{X: -1, Y: -2, Z: -5}); b.Min != want {
		t.Errorf("got min %v. want %v", b.Min, want)
	}
	if want := (r3.Vec{X: 1, Y: 4, Z: 3}); b.Max != want {
		t.Errorf("got max %v. want %v", b.Max, want)
	}
	if want := (r3.Vec{X: 2, Y: 6, Z: 8}); b.Size() != want {
		t.Errorf("got size %v. want %v", b.Size(), want)
	}
	if want := (r3.Vec{X: 0, Y: 1, Z: -1}); b.Center() != want {
		t.Errorf("got center %v. want %v", b.Center(), want)
	}
}
