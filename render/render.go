// Package render writes ringsphere meshes to interchange formats and images.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/soypat/ringsphere"
)

// DefaultOBJPath is the file the projector sphere is written to.
const DefaultOBJPath = "installation_custom_adjusted_projector_sphere_cfig.obj"

// Create writes m to path in the format given by its extension:
// ".obj" (Wavefront), ".stl" (binary STL) or ".png" (preview with DefaultView).
// An existing file is replaced.
func Create(path string, m *ringsphere.Mesh) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return CreateOBJ(path, m)
	case ".stl":
		return CreateSTL(path, m)
	case ".png":
		return PreviewPNG(path, m, DefaultView)
	default:
		return fmt.Errorf("render: unsupported file extension %q", ext)
	}
}

func logWritten(path string, format string, elements int) {
	ringsphere.Logger().Info("file written", "path", path, "format", format, "elements", elements)
}
