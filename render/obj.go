package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/soypat/ringsphere"
	"gonum.org/v1/gonum/spatial/r3"
)

// WriteOBJ writes vertices and faces in Wavefront OBJ format: one
// "v x y z" record per vertex followed by one "f i j k [l]" record per face.
// Face records use 1-based vertex indices in the face's winding order.
func WriteOBJ(w io.Writer, faces []ringsphere.Face, vertices []r3.Vec) error {
	for i, f := range faces {
		if len(f) != 3 && len(f) != 4 {
			return fmt.Errorf("render: face %d has %d vertices, want 3 or 4", i, len(f))
		}
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return fmt.Errorf("render: face %d references vertex %d of %d", i, idx, len(vertices))
			}
		}
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 80)
	for _, v := range vertices {
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'f', -1, 64)
		}
		buf = append(buf, '\n')
		bw.Write(buf) // bufio errors are sticky and returned by Flush.
	}
	for _, f := range faces {
		buf = append(buf[:0], 'f')
		for _, idx := range f {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		bw.Write(buf)
	}
	return bw.Flush()
}

// CreateOBJ writes m to path in Wavefront OBJ format, replacing any
// existing file.
func CreateOBJ(path string, m *ringsphere.Mesh) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	err = WriteOBJ(fp, m.Faces(), m.Vertices())
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	logWritten(path, "obj", m.FaceCount())
	return nil
}
