package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/ringsphere"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
	// maxSTLPrealloc caps the triangles allocated ahead of reading them.
	maxSTLPrealloc = 1 << 16
)

// STLTriangles returns m's faces as float32 triangles. Quads are split in two.
func STLTriangles(m *ringsphere.Mesh) []ms3.Triangle {
	tris := m.Triangles()
	model := make([]ms3.Triangle, len(tris))
	for i, t := range tris {
		for j, v := range t {
			model[i][j] = ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
		}
	}
	return model
}

// CreateSTL writes m to path as a binary STL file, replacing any existing file.
func CreateSTL(path string, m *ringsphere.Mesh) error {
	model := STLTriangles(m)
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	_, err = WriteBinarySTL(fp, model)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("render: writing %s: %w", path, err)
	}
	logWritten(path, "stl", len(model))
	return nil
}

// WriteBinarySTL writes model triangles to a writer in binary STL format.
// Normals are calculated from the triangle winding.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	nt := int64(len(model)) // int64 cast so that next line works correctly on 32bit machines.
	if nt > math.MaxUint32 {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	header := stlHeader{Count: uint32(nt)}
	copy(header.Name[:], "ringsphere")

	var buf [stlHeaderSize]byte
	header.put(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return n, err
	} else if n != len(buf) {
		return n, io.ErrShortWrite
	}
	var d stlTriangle
	for _, triangle := range model {
		d.Normal = arrayFromVec(ms3.Unit(triangle.Normal()))
		d.Vertex1 = arrayFromVec(triangle[0])
		d.Vertex2 = arrayFromVec(triangle[1])
		d.Vertex3 = arrayFromVec(triangle[2])
		d.put(buf[:])
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		} else if ngot != stlTriangleSize {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

// ReadBinarySTL reads the triangles of a binary STL file. Triangles whose
// stored normal disagrees with their winding are returned along with an error
// wrapping errNormalMismatch.
func ReadBinarySTL(r io.Reader) (output []ms3.Triangle, readErr error) {
	var hbuf [stlHeaderSize]byte
	if _, err := io.ReadFull(r, hbuf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	var header stlHeader
	header.get(hbuf[:])
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf [stlTriangleSize]byte
		d   stlTriangle
		i   int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, errNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, header.Count, readErr)
		}
	}()
	// The header count is untrusted until the body has been read.
	output = make([]ms3.Triangle, 0, min(int(header.Count), maxSTLPrealloc))
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, errNormalMismatch) {
				return nil, err
			}
			readErr = err
		}
		output = append(output, d.Triangle())
	}
	return output, readErr
}

// stlHeader defines the STL file header.
type stlHeader struct {
	Name  [80]uint8
	Count uint32 // Number of triangles
}

func (h stlHeader) put(b []byte) {
	_ = b[83] // early bounds check
	copy(b, h.Name[:])
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

func (h *stlHeader) get(b []byte) {
	_ = b[83] // early bounds check
	copy(h.Name[:], b)
	h.Count = binary.LittleEndian.Uint32(b[80:])
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0) // Zero out attributes.
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

var errNormalMismatch = errors.New("STL normal does not match triangle winding")

func (t stlTriangle) validate() error {
	const epsilon = 1e-12
	const normTol = 5e-2
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if t.Triangle().IsDegenerate(epsilon) {
		return errors.New("triangle is degenerate")
	}
	got := vecFromArray(t.Normal)
	calc := ms3.Unit(t.Triangle().Normal())
	if !equalWithin(calc, got, normTol) {
		return errNormalMismatch
	}
	return nil
}

func (t stlTriangle) Triangle() ms3.Triangle {
	return ms3.Triangle{vecFromArray(t.Vertex1), vecFromArray(t.Vertex2), vecFromArray(t.Vertex3)}
}

// equalWithin returns true if every component of a and b differ by at most tol.
func equalWithin(a, b ms3.Vec, tol float32) bool {
	d := ms3.AbsElem(ms3.Sub(a, b))
	return d.X <= tol && d.Y <= tol && d.Z <= tol
}

func vecFromArray(f [3]float32) ms3.Vec {
	return ms3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

func arrayFromVec(v ms3.Vec) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
