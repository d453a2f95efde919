package ringsphere

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// directedEdges counts every directed edge (u, v) implied by the faces' winding.
func directedEdges(m *Mesh) map[[2]int]int {
	edges := make(map[[2]int]int)
	for _, f := range m.Faces() {
		for i := range f {
			edges[[2]int{f[i], f[(i+1)%len(f)]}]++
		}
	}
	return edges
}

// openEdges returns the directed edges whose reverse is missing. It fails the
// test if an edge appears twice in the same direction, which means two faces
// disagree on winding.
func openEdges(t testing.TB, m *Mesh) [][2]int {
	t.Helper()
	var open [][2]int
	edges := directedEdges(m)
	for e, n := range edges {
		if n != 1 {
			t.Errorf("directed edge %v appears %d times", e, n)
		}
		if edges[[2]int{e[1], e[0]}] == 0 {
			open = append(open, e)
		}
	}
	return open
}

func checkClosed(t testing.TB, m *Mesh) {
	t.Helper()
	total := 0
	for _, n := range directedEdges(m) {
		total += n
	}
	if total%2 != 0 {
		t.Errorf("odd number of directed edges: %d", total)
	}
	if open := openEdges(t, m); len(open) != 0 {
		t.Errorf("mesh is not closed, %d edges lack a reverse: %v", len(open), open)
	}
}

// checkOutward checks that every face normal points away from center.
func checkOutward(t testing.TB, m *Mesh, center r3.Vec) {
	t.Helper()
	for i, f := range m.Faces() {
		tri := Triangle{m.Vertex(f[0]), m.Vertex(f[1]), m.Vertex(f[2])}
		if r3.Dot(tri.Normal(), r3.Sub(tri.Centroid(), center)) <= 0 {
			t.Errorf("face %d %v points inward", i, f)
		}
	}
}

// referencedVertices returns the set of vertices used by faces[from:].
func referencedVertices(m *Mesh, from int) map[int]bool {
	used := make(map[int]bool)
	for _, f := range m.Faces()[from:] {
		for _, idx := range f {
			used[idx] = true
		}
	}
	return used
}
