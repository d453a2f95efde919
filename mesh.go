package ringsphere

import (
	"fmt"

	"github.com/soypat/ringsphere/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Face is an ordered list of 3 or 4 vertex indices. The order is the
// winding: counter-clockwise when seen from outside the solid.
type Face []int

// IsQuad returns true if the face has four vertices.
func (f Face) IsQuad() bool { return len(f) == 4 }

// Triangle is three positions in winding order.
type Triangle [3]r3.Vec

// Mesh is an append-only store of vertex positions and faces.
// Vertices are identified by their insertion order. A face may only
// reference vertices that were added before it.
type Mesh struct {
	vertices []r3.Vec
	faces    []Face
}

// NewMesh returns an empty mesh.
func NewMesh() *Mesh {
	return &Mesh{}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v r3.Vec) int {
	m.vertices = append(m.vertices, v)
	return len(m.vertices) - 1
}

// AddFace appends a triangle or quad. Callers are responsible for passing
// indices of existing vertices; a face that breaks this panics.
func (m *Mesh) AddFace(indices ...int) {
	if len(indices) != 3 && len(indices) != 4 {
		panic(fmt.Sprintf("bug: face must have 3 or 4 vertices, got %d", len(indices)))
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(m.vertices) {
			panic(fmt.Sprintf("bug: face references vertex %d of %d", idx, len(m.vertices)))
		}
	}
	f := make(Face, len(indices))
	copy(f, indices)
	m.faces = append(m.faces, f)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.faces) }

// LastIndex returns the index of the most recently added vertex or -1 if
// the mesh is empty.
func (m *Mesh) LastIndex() int { return len(m.vertices) - 1 }

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) r3.Vec { return m.vertices[i] }

// Face returns face i. The returned slice must not be modified.
func (m *Mesh) Face(i int) Face { return m.faces[i] }

// Vertices returns a copy of the vertex positions in index order.
func (m *Mesh) Vertices() []r3.Vec {
	v := make([]r3.Vec, len(m.vertices))
	copy(v, m.vertices)
	return v
}

// Faces returns a copy of the faces in insertion order.
func (m *Mesh) Faces() []Face {
	faces := make([]Face, len(m.faces))
	for i, f := range m.faces {
		faces[i] = append(Face(nil), f...)
	}
	return faces
}

// Bounds returns the axis aligned bounding box of the vertices.
func (m *Mesh) Bounds() r3.Box {
	return r3.Box(d3.BoxOf(m.vertices))
}

// Triangles returns the faces as triangles. Quads (a, b, c, d) are split
// into (a, b, c) and (a, c, d), which keeps their winding.
func (m *Mesh) Triangles() []Triangle {
	tris := make([]Triangle, 0, len(m.faces)*2)
	for _, f := range m.faces {
		v := m.vertices
		tris = append(tris, Triangle{v[f[0]], v[f[1]], v[f[2]]})
		if f.IsQuad() {
			tris = append(tris, Triangle{v[f[0]], v[f[2]], v[f[3]]})
		}
	}
	return tris
}
