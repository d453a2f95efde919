package ringsphere

import (
	"fmt"
	"math"
)

// Ring is a run of consecutive vertices in a mesh, recorded when emitted.
// A pole is a ring of one vertex.
type Ring struct {
	Start int
	Count int
}

// IsPole returns true if the ring is a single vertex.
func (r Ring) IsPole() bool { return r.Count == 1 }

// At returns the mesh index of the ring's i'th vertex. i wraps around the
// ring so At(-1) is the last vertex and At(Count) the first.
func (r Ring) At(i int) int {
	i %= r.Count
	if i < 0 {
		i += r.Count
	}
	return r.Start + i
}

// end returns one past the ring's last mesh index.
func (r Ring) end() int { return r.Start + r.Count }

// check returns an error if the ring is empty or not fully inside m.
func (r Ring) check(m *Mesh) error {
	if r.Count <= 0 {
		return fmt.Errorf("%w: ring at %d has %d vertices", ErrTopology, r.Start, r.Count)
	}
	if r.Start < 0 || r.end() > m.VertexCount() {
		return fmt.Errorf("%w: ring [%d,%d) outside mesh of %d vertices", ErrTopology, r.Start, r.end(), m.VertexCount())
	}
	return nil
}

// EmitRing appends the tier's vertices to m in increasing angle around the
// Z axis starting on the +X axis and returns the ring they form.
func EmitRing(m *Mesh, t Tier) Ring {
	ring := Ring{Start: m.VertexCount(), Count: t.Segments}
	step := tau / float64(t.Segments)
	for i := 0; i < t.Segments; i++ {
		s, c := math.Sincos(float64(i) * step)
		m.AddVertex(Vec(c*t.Radius, s*t.Radius, t.Height))
	}
	return ring
}

// EmitPole appends a single vertex on the Z axis at the given height.
func EmitPole(m *Mesh, height float64) Ring {
	return Ring{Start: m.AddVertex(Vec(0, 0, height)), Count: 1}
}
