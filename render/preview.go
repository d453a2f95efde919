package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/ringsphere"
	"github.com/soypat/ringsphere/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a preview render. Positions are given in the
// bi-unit cube the mesh is fitted into before drawing.
type View struct {
	// what position (point) to look at
	LookAt r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eye  r3.Vec
	Near float64
	Far  float64
	// Size of the output image in pixels.
	Width, Height int
	// Supersample renders at this multiple of the output size and then
	// downsamples for antialiasing. Values below 1 are treated as 1.
	Supersample int
}

// DefaultView looks down on the mesh from above the first octant with the
// Z axis pointing up.
var DefaultView = View{
	Up:          r3.Vec{Z: 1},
	Eye:         d3.Elem(3),
	Near:        1,
	Far:         10,
	Width:       768,
	Height:      432,
	Supersample: 2,
}

// PreviewImage rasterizes m with a Phong shader.
func PreviewImage(m *ringsphere.Mesh, view View) (image.Image, error) {
	const fovy = 30 // vertical field of view in degrees
	if view.Width <= 0 || view.Height <= 0 {
		return nil, fmt.Errorf("render: invalid preview size %dx%d", view.Width, view.Height)
	}
	tris := m.Triangles()
	if len(tris) == 0 {
		return nil, errors.New("render: no faces to preview")
	}
	scale := max(view.Supersample, 1)
	var (
		eye    = fauxVec(view.Eye)
		center = fauxVec(view.LookAt)
		up     = fauxVec(view.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize() // light direction
		color  = fauxgl.HexColor("#468966")           // object color
	)
	faux := make([]*fauxgl.Triangle, len(tris))
	for i, t := range tris {
		faux[i] = fauxgl.NewTriangleForPoints(fauxVec(t[0]), fauxVec(t[1]), fauxVec(t[2]))
	}
	mesh := fauxgl.NewTriangleMesh(faux)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()

	context := fauxgl.NewContext(view.Width*scale, view.Height*scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = color
	context.Shader = shader
	context.DrawMesh(mesh)

	img := context.Image()
	if scale > 1 {
		img = resize.Resize(uint(view.Width), uint(view.Height), img, resize.Bilinear)
	}
	return img, nil
}

// PreviewPNG renders m and saves the image to path as PNG.
func PreviewPNG(path string, m *ringsphere.Mesh, view View) error {
	img, err := PreviewImage(m, view)
	if err != nil {
		return err
	}
	if err := fauxgl.SavePNG(path, img); err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	logWritten(path, "png", m.FaceCount())
	return nil
}

func fauxVec(v r3.Vec) fauxgl.Vector {
	return fauxgl.V(v.X, v.Y, v.Z)
}
