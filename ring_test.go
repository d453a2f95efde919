package ringsphere

import (
	"math"
	"testing"

	"github.com/soypat/ringsphere/internal/d3"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestEmitRing(t *testing.T) {
	const tol = 1e-12
	for _, tier := range []Tier{
		{Radius: 0.5, Height: 0.1, Segments: 8},
		{Radius: 0.3, Height: -0.3, Segments: 6},
		{Radius: 2, Height: 0, Segments: 3},
		{Radius: 1, Height: 7, Segments: 13},
	} {
		m := NewMesh()
		EmitPole(m, 1)
		ring := EmitRing(m, tier)
		if ring.Start != 1 || ring.Count != tier.Segments {
			t.Errorf("got ring %+v for %d segments after a pole", ring, tier.Segments)
		}
		if m.VertexCount() != 1+tier.Segments {
			t.Fatalf("emitted %d vertices, want %d", m.VertexCount()-1, tier.Segments)
		}
		step := tau / float64(tier.Segments)
		for i := 0; i < ring.Count; i++ {
			v := m.Vertex(ring.At(i))
			if !scalar.EqualWithinAbs(v.Z, tier.Height, tol) {
				t.Errorf("vertex %d height %g, want %g", i, v.Z, tier.Height)
			}
			if !scalar.EqualWithinAbs(d3.AxialRadius(v), tier.Radius, tol) {
				t.Errorf("vertex %d radius %g, want %g", i, d3.AxialRadius(v), tier.Radius)
			}
			next := m.Vertex(ring.At(i + 1))
			dAngle := math.Atan2(next.Y, next.X) - math.Atan2(v.Y, v.X)
			dAngle = math.Mod(dAngle+tau, tau)
			if !scalar.EqualWithinAbs(dAngle, step, 1e-9) {
				t.Errorf("angle step between %d and %d is %g, want %g", i, i+1, dAngle, step)
			}
		}
		first := m.Vertex(ring.Start)
		if !scalar.EqualWithinAbs(first.Y, 0, tol) || first.X <= 0 {
			t.Errorf("first vertex must lie on +X, got %v", first)
		}
	}
}

func TestRingAt(t *testing.T) {
	r := Ring{Start: 10, Count: 4}
	for _, test := range []struct{ i, want int }{
		{0, 10}, {3, 13}, {4, 10}, {-1, 13}, {-4, 10}, {9, 11},
	} {
		if got := r.At(test.i); got != test.want {
			t.Errorf("At(%d) = %d, want %d", test.i, got, test.want)
		}
	}
	if r.IsPole() {
		t.Error("ring of 4 is not a pole")
	}
	m := NewMesh()
	pole := EmitPole(m, -3)
	if !pole.IsPole() || m.Vertex(pole.Start) != Vec(0, 0, -3) {
		t.Errorf("bad pole %+v at %v", pole, m.Vertex(pole.Start))
	}
}
