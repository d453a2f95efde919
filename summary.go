package ringsphere

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a finished mesh.
type Summary struct {
	Vertices  int
	Triangles int
	Quads     int
	// Edges is the number of distinct undirected edges.
	Edges  int
	Bounds r3.Box
	// Edge length statistics over distinct edges.
	EdgeMin, EdgeMax, EdgeMean, EdgeStdDev float64
}

// Summarize counts the mesh's elements and measures its edges.
func Summarize(m *Mesh) Summary {
	s := Summary{
		Vertices: m.VertexCount(),
		Bounds:   m.Bounds(),
	}
	seen := make(map[[2]int]struct{})
	var lengths []float64
	for _, f := range m.faces {
		if f.IsQuad() {
			s.Quads++
		} else {
			s.Triangles++
		}
		for i := range f {
			u, v := f[i], f[(i+1)%len(f)]
			if u > v {
				u, v = v, u
			}
			if _, ok := seen[[2]int{u, v}]; ok {
				continue
			}
			seen[[2]int{u, v}] = struct{}{}
			lengths = append(lengths, r3.Norm(r3.Sub(m.vertices[v], m.vertices[u])))
		}
	}
	s.Edges = len(lengths)
	if len(lengths) > 0 {
		s.EdgeMin = floats.Min(lengths)
		s.EdgeMax = floats.Max(lengths)
		s.EdgeMean, s.EdgeStdDev = stat.MeanStdDev(lengths, nil)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d vertices, %d triangles, %d quads, %d edges (length %.4g..%.4g, mean %.4g)",
		s.Vertices, s.Triangles, s.Quads, s.Edges, s.EdgeMin, s.EdgeMax, s.EdgeMean)
}
