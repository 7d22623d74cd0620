package d2

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// NewBox2 creates a 2d box with a given center and size.
func NewBox2(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}

// Random returns a random point within a bounding box.
func (b *Box) Random(rng *rand.Rand) r2.Vec {
	return r2.Vec{
		X: randomRange(rng, b.Min.X, b.Max.X),
		Y: randomRange(rng, b.Min.Y, b.Max.Y),
	}
}

// RandomSet returns a set of random points from within a bounding box.
func (b *Box) RandomSet(rng *rand.Rand, n int) Set {
	s := make([]r2.Vec, n)
	for i := range s {
		s[i] = b.Random(rng)
	}
	return s
}

// randomRange returns a random float64 [a,b)
func randomRange(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}
