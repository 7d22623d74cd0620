package render

import (
	"os"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"gonum.org/v1/gonum/spatial/r3"
)

// View positions the preview camera. Coordinates refer to the model
// after it has been scaled into the bi-unit cube.
type View struct {
	Eye, Center, Up fauxgl.Vector
	Near, Far       float64
}

// DefaultView looks at the shell from slightly above its equator.
func DefaultView() View {
	return View{
		Eye:    fauxgl.V(3, -1.5, 1.5),
		Center: fauxgl.V(0, 0, 0),
		Up:     fauxgl.V(0, 0, 1),
		Near:   1,
		Far:    10,
	}
}

// PreviewPNG renders shell triangles as a shaded PNG image. The
// triangles are staged through a temporary STL file.
func PreviewPNG(shell []r3.Triangle, pngPath string, width, height int, view View) error {
	fp, err := os.CreateTemp("", "capsid-*.stl")
	if err != nil {
		return err
	}
	stlPath := fp.Name()
	defer os.Remove(stlPath)
	err = WriteSTL(fp, shell)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	return STLToPNG(stlPath, pngPath, width, height, view)
}

// STLToPNG renders an STL file as a shaded PNG image.
func STLToPNG(stlPath, pngPath string, width, height int, view View) error {
	mesh, err := fauxgl.LoadSTL(stlPath)
	if err != nil {
		return err
	}
	const (
		scale = 2  // supersampling
		fovy  = 30 // vertical field of view in degrees
	)
	var (
		light = fauxgl.V(-0.75, 1, 0.25).Normalize()
		color = fauxgl.HexColor("#468966")
	)
	mesh.BiUnitCube()
	context := fauxgl.NewContext(width*scale, height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(width) / float64(height)
	matrix := fauxgl.LookAt(view.Eye, view.Center, view.Up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, view.Eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample for antialiasing
	image := context.Image()
	image = resize.Resize(uint(width), uint(height), image, resize.Bilinear)
	return fauxgl.SavePNG(pngPath, image)
}
