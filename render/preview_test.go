package render_test

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/soypat/ringsphere"
	"github.com/soypat/ringsphere/render"
	"gonum.org/v1/plot/cmpimg"
)

const (
	// imgDelta a normalized imgDelta parameter to describe how close the matching
	// should be performed (imgDelta=0: perfect match, imgDelta=1, loose match)
	imgDelta = 0
)

func TestPreviewIdempotent(t *testing.T) {
	view := render.DefaultView
	view.Width, view.Height = 160, 90
	var images [2][]byte
	for i := range images {
		m, err := ringsphere.Generate(ringsphere.Hemisphere())
		if err != nil {
			t.Fatal(err)
		}
		img, err := render.PreviewImage(m, view)
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != view.Width || b.Dy() != view.Height {
			t.Fatalf("got image size %v, want %dx%d", b.Size(), view.Width, view.Height)
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			t.Fatal(err)
		}
		images[i] = buf.Bytes()
	}
	equal, err := cmpimg.EqualApprox("png", images[0], images[1], imgDelta)
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Error("previews of the same mesh differ")
	}
}

func TestPreviewErrors(t *testing.T) {
	view := render.DefaultView
	if _, err := render.PreviewImage(ringsphere.NewMesh(), view); err == nil {
		t.Error("expected error previewing empty mesh")
	}
	m, err := ringsphere.Generate(ringsphere.Sphere())
	if err != nil {
		t.Fatal(err)
	}
	view.Width = 0
	if _, err := render.PreviewImage(m, view); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestPreviewPNG(t *testing.T) {
	m, err := ringsphere.Generate(ringsphere.Sphere())
	if err != nil {
		t.Fatal(err)
	}
	view := render.DefaultView
	view.Width, view.Height, view.Supersample = 64, 64, 1
	path := filepath.Join(t.TempDir(), "sphere.png")
	if err := render.PreviewPNG(path, m, view); err != nil {
		t.Fatal(err)
	}
}
