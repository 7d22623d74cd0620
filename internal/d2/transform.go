package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 3x3 matrix acting on homogeneous planar
// coordinates (x, y, 1). Rows may hold anything, so the result of
// applying a Transform can be a point in space.
type Transform struct {
	data [3 * 3]float64 // stack stronk
}

// NewTransform returns a Transform populated with data in row-major form.
// A nil data returns the zero matrix.
func NewTransform(data []float64) Transform {
	if data == nil {
		data = make([]float64, 9)
	}
	if len(data) != 9 {
		panic("bad length")
	}
	t := Transform{}
	copy(t.data[:], data)
	return t
}

// Columns returns the Transform whose columns are a, b and c.
func Columns(a, b, c r3.Vec) Transform {
	return NewTransform([]float64{
		a.X, b.X, c.X,
		a.Y, b.Y, c.Y,
		a.Z, b.Z, c.Z,
	})
}

func (t *Transform) At(i, j int) float64 {
	return t.data[i*3+j]
}

func (t *Transform) Set(i, j int, v float64) {
	t.data[i*3+j] = v
}

// Mul multiplies 3x3 matrices.
func (a Transform) Mul(b Transform) Transform {
	m := Transform{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, a.At(i, 0)*b.At(0, j)+a.At(i, 1)*b.At(1, j)+a.At(i, 2)*b.At(2, j))
		}
	}
	return m
}

// ApplyR3 multiplies the homogeneous point (p.X, p.Y, 1) by the matrix.
func (t Transform) ApplyR3(p r2.Vec) r3.Vec {
	return r3.Vec{
		X: t.At(0, 0)*p.X + t.At(0, 1)*p.Y + t.At(0, 2),
		Y: t.At(1, 0)*p.X + t.At(1, 1)*p.Y + t.At(1, 2),
		Z: t.At(2, 0)*p.X + t.At(2, 1)*p.Y + t.At(2, 2),
	}
}

// Determinant returns the determinant of a 3x3 matrix.
func (a Transform) Determinant() float64 {
	return a.At(0, 0)*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) -
		a.At(0, 1)*(a.At(1, 0)*a.At(2, 2)-a.At(1, 2)*a.At(2, 0)) +
		a.At(0, 2)*(a.At(1, 0)*a.At(2, 1)-a.At(1, 1)*a.At(2, 0))
}

// Inverse returns the inverse of a 3x3 matrix.
func (a Transform) Inverse() Transform {
	m := Transform{}
	d := 1 / a.Determinant()
	m.Set(0, 0, (a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1))*d)
	m.Set(0, 1, (a.At(2, 1)*a.At(0, 2)-a.At(0, 1)*a.At(2, 2))*d)
	m.Set(0, 2, (a.At(0, 1)*a.At(1, 2)-a.At(1, 1)*a.At(0, 2))*d)
	m.Set(1, 0, (a.At(1, 2)*a.At(2, 0)-a.At(2, 2)*a.At(1, 0))*d)
	m.Set(1, 1, (a.At(2, 2)*a.At(0, 0)-a.At(2, 0)*a.At(0, 2))*d)
	m.Set(1, 2, (a.At(0, 2)*a.At(1, 0)-a.At(1, 2)*a.At(0, 0))*d)
	m.Set(2, 0, (a.At(1, 0)*a.At(2, 1)-a.At(2, 0)*a.At(1, 1))*d)
	m.Set(2, 1, (a.At(2, 0)*a.At(0, 1)-a.At(0, 0)*a.At(2, 1))*d)
	m.Set(2, 2, (a.At(0, 0)*a.At(1, 1)-a.At(0, 1)*a.At(1, 0))*d)
	return m
}
