package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/soypat/ringsphere"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const profileSize = 4 * vg.Inch

// Profile returns the silhouette of m in the XZ half plane x >= 0: the
// vertices lying on the positive X side of the Y=0 plane, in index order.
// For a generated mesh these are the top pole, the first vertex of every
// ring and the bottom pole.
func Profile(m *ringsphere.Mesh) plotter.XYs {
	const tol = 1e-9
	var xys plotter.XYs
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if math.Abs(v.Y) <= tol && v.X >= -tol {
			xys = append(xys, plotter.XY{X: v.X, Y: v.Z})
		}
	}
	return xys
}

// PlotProfile draws the silhouette of m against the ideal sphere outline of
// the given radius and writes the plot to w as PNG.
func PlotProfile(w io.Writer, m *ringsphere.Mesh, radius float64) error {
	if radius <= 0 {
		return fmt.Errorf("render: invalid profile radius %g", radius)
	}
	facets := Profile(m)
	if len(facets) == 0 {
		return errors.New("render: mesh has no profile vertices")
	}
	p := plot.New()
	p.Title.Text = "Tier profile"
	p.X.Label.Text = "radius"
	p.Y.Label.Text = "height"
	p.Add(plotter.NewGrid())

	const arcPoints = 64
	outline := make(plotter.XYs, arcPoints+1)
	for i := range outline {
		s, c := math.Sincos(math.Pi * float64(i) / arcPoints)
		outline[i] = plotter.XY{X: s * radius, Y: c * radius}
	}
	sphere, err := plotter.NewLine(outline)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	sphere.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	sphere.LineStyle.Color = color.Gray{Y: 128}

	line, err := plotter.NewLine(facets)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	line.LineStyle.Color = color.RGBA{R: 0x46, G: 0x89, B: 0x66, A: 0xff}
	line.LineStyle.Width = vg.Points(1.5)

	vertices, err := plotter.NewScatter(facets)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	vertices.GlyphStyle.Shape = draw.CircleGlyph{}
	vertices.GlyphStyle.Radius = vg.Points(3)

	p.Add(sphere, line, vertices)
	p.Legend.Add("sphere", sphere)
	p.Legend.Add("facets", line, vertices)
	p.Legend.Top = true

	wt, err := p.WriterTo(profileSize, profileSize, "png")
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// CreateProfile writes the profile plot of m to path as PNG.
func CreateProfile(path string, m *ringsphere.Mesh, radius float64) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	err = PlotProfile(fp, m, radius)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	logWritten(path, "png", len(Profile(m)))
	return nil
}
