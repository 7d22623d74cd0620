// Package render serializes and draws capsid shells: tab separated
// vertex tables, Wavefront OBJ wireframes, binary STL surfaces, plots
// of the flat net and of projected facets and shaded PNG previews.
package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize = 80
	stlRecordSize = 50 // normal, three vertices and a 2 byte attribute count.
)

// ErrNormalMismatch is returned by ReadSTL alongside the triangles when
// a stored facet normal disagrees with the normal of its vertices.
var ErrNormalMismatch = errors.New("stl: stored normal differs from vertex normal")

// CreateSTL writes shell triangles to a binary STL file at path.
func CreateSTL(path string, shell []r3.Triangle) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteSTL(fp, shell); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// WriteSTL writes shell triangles to w in binary STL format. The header
// text is left blank and every facet normal is the unit normal of its
// vertex winding.
func WriteSTL(w io.Writer, shell []r3.Triangle) error {
	if len(shell) == 0 {
		return errors.New("stl: no triangles to write")
	}
	if uint64(len(shell)) > math.MaxUint32 {
		return fmt.Errorf("stl: %d triangles exceed the format's count field", len(shell))
	}
	bw := bufio.NewWriter(w)
	var head [stlHeaderSize + 4]byte
	binary.LittleEndian.PutUint32(head[stlHeaderSize:], uint32(len(shell)))
	if _, err := bw.Write(head[:]); err != nil {
		return err
	}
	var rec stlRecord
	for _, t := range shell {
		rec.set(t)
		if _, err := bw.Write(rec.bytes()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSTL reads the triangles of a binary STL stream. Records holding
// NaN or infinite values or repeated vertices are an error. Normal
// mismatches do not stop reading and are reported as ErrNormalMismatch
// together with every triangle read.
func ReadSTL(r io.Reader) ([]r3.Triangle, error) {
	br := bufio.NewReader(r)
	var head [stlHeaderSize + 4]byte
	if _, err := io.ReadFull(br, head[:]); err != nil {
		return nil, fmt.Errorf("stl: reading header: %w", err)
	}
	count := binary.LittleEndian.Uint32(head[stlHeaderSize:])
	if count == 0 {
		return nil, errors.New("stl: header declares no triangles")
	}
	var (
		rec        stlRecord
		mismatches int
		shell      = make([]r3.Triangle, 0, count)
	)
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(br, rec[:]); err != nil {
			return nil, fmt.Errorf("stl: triangle %d of %d: %w", i+1, count, err)
		}
		normal, t := rec.get()
		if err := checkFacet(normal, t); err != nil {
			if !errors.Is(err, ErrNormalMismatch) {
				return nil, fmt.Errorf("stl: triangle %d of %d: %w", i+1, count, err)
			}
			mismatches++
		}
		shell = append(shell, triangleOf(t))
	}
	if mismatches > 0 {
		return shell, fmt.Errorf("%w in %d of %d triangles", ErrNormalMismatch, mismatches, count)
	}
	return shell, nil
}

// stlRecord is one little endian facet record.
type stlRecord [stlRecordSize]byte

func (rec *stlRecord) bytes() []byte { return rec[:] }

func (rec *stlRecord) set(t r3.Triangle) {
	putVec(rec[0:], toF32(r3.Unit(t.Normal())))
	for i, v := range t {
		putVec(rec[12*(i+1):], toF32(v))
	}
	binary.LittleEndian.PutUint16(rec[48:], 0)
}

func (rec *stlRecord) get() (normal [3]float32, t [3][3]float32) {
	normal = getVec(rec[0:])
	for i := range t {
		t[i] = getVec(rec[12*(i+1):])
	}
	return normal, t
}

func putVec(b []byte, v [3]float32) {
	for i, x := range v {
		binary.LittleEndian.PutUint32(b[4*i:], math32.Float32bits(x))
	}
}

func getVec(b []byte) (v [3]float32) {
	for i := range v {
		v[i] = math32.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return v
}

func toF32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func triangleOf(t [3][3]float32) r3.Triangle {
	var tri r3.Triangle
	for i, v := range t {
		tri[i] = r3.Vec{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
	}
	return tri
}

func checkFacet(normal [3]float32, t [3][3]float32) error {
	const (
		vertexTol = 1e-12
		normalTol = 5e-2
	)
	if !finite(normal) {
		return errors.New("NaN or infinite normal")
	}
	for _, v := range t {
		if !finite(v) {
			return errors.New("NaN or infinite vertex")
		}
	}
	for i := range t {
		if near(t[i], t[(i+1)%3], vertexTol) {
			return errors.New("repeated vertex")
		}
	}
	// Normals are compared up to sign.
	want := toF32(r3.Unit(triangleOf(t).Normal()))
	flipped := [3]float32{-want[0], -want[1], -want[2]}
	if !near(normal, want, normalTol) && !near(normal, flipped, normalTol) {
		return ErrNormalMismatch
	}
	return nil
}

func finite(v [3]float32) bool {
	for _, x := range v {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func near(a, b [3]float32, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}
