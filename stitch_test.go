package ringsphere

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestStitchTopPole(t *testing.T) {
	// Top pole and a single ring of 8 on a sphere of radius 0.5.
	m := NewMesh()
	pole := EmitPole(m, DefaultRadius)
	ring := EmitRing(m, TierAt(ArcAngle(DefaultArc), DefaultRadius, 8))
	if err := StitchTopPole(m, pole, ring); err != nil {
		t.Fatal(err)
	}
	if m.VertexCount() != 9 || m.FaceCount() != 8 {
		t.Fatalf("got %d vertices and %d faces, want 9 and 8", m.VertexCount(), m.FaceCount())
	}
	for i := 1; i < 8; i++ {
		want := Face{i + 1, 0, i}
		if got := m.Face(i - 1); !reflect.DeepEqual(got, want) {
			t.Errorf("face %d = %v, want %v", i-1, got, want)
		}
	}
	if got := m.Face(7); !reflect.DeepEqual(got, Face{1, 0, 8}) {
		t.Errorf("closing face %v, want [1 0 8]", got)
	}
	checkOutward(t, m, Vec(0, 0, 0))
	// Only the ring's own edges remain open.
	if open := openEdges(t, m); len(open) != 8 {
		t.Errorf("want the 8 ring edges open, got %d", len(open))
	}
}

func TestStitchBottomPole(t *testing.T) {
	m := NewMesh()
	ring := EmitRing(m, TierAt(3*pi/4, 1, 5))
	pole := EmitPole(m, -1)
	if err := StitchBottomPole(m, ring, pole); err != nil {
		t.Fatal(err)
	}
	if m.FaceCount() != 5 {
		t.Fatalf("fan of 5 emitted %d faces", m.FaceCount())
	}
	for _, f := range m.Faces() {
		if len(f) != 3 || f[1] != pole.Start {
			t.Errorf("fan face %v must be a triangle through the pole", f)
		}
	}
	checkOutward(t, m, Vec(0, 0, 0))
}

func TestStitchStrip(t *testing.T) {
	for _, n := range []int{3, 6, 8, 17} {
		m := NewMesh()
		a := EmitRing(m, TierAt(pi/3, 1, n))
		b := EmitRing(m, TierAt(2*pi/3, 1, n))
		if err := StitchStrip(m, a, b); err != nil {
			t.Fatal(err)
		}
		if m.FaceCount() != n {
			t.Errorf("strip of %d emitted %d faces", n, m.FaceCount())
		}
		for _, f := range m.Faces() {
			if !f.IsQuad() {
				t.Errorf("strip face %v is not a quad", f)
			}
		}
		wantLast := Face{b.At(0), a.At(0), a.At(n - 1), b.At(n - 1)}
		if got := m.Face(n - 1); !reflect.DeepEqual(got, wantLast) {
			t.Errorf("wraparound quad %v, want %v", got, wantLast)
		}
		checkOutward(t, m, Vec(0, 0, 0))
	}
}

func TestStitchUnevenReference(t *testing.T) {
	m := NewMesh()
	a := EmitRing(m, TierAt(1.48, DefaultRadius, 8))
	b := EmitRing(m, TierAt(2.22, DefaultRadius, 6))
	if err := StitchUneven(m, a, b); err != nil {
		t.Fatal(err)
	}
	A := func(i int) int { return a.At(i) }
	B := func(i int) int { return b.At(i) }
	want := []Face{
		{B(0), A(1), A(0)},
		{B(1), A(2), A(1)}, {B(1), A(1), B(0)},
		{B(2), A(3), A(2)}, {B(2), A(2), B(1)},
		{B(3), A(4), A(3)}, {B(3), A(3), B(2)}, {B(3), A(5), A(4)},
		{B(4), A(6), A(5)}, {B(4), A(5), B(3)},
		{B(5), A(7), A(6)}, {B(5), A(6), B(4)},
		{B(0), A(0), A(7)}, {B(0), A(7), B(5)},
	}
	if got := m.Faces(); !reflect.DeepEqual(got, want) {
		t.Fatalf("8 to 6 stitch mismatch\ngot  %v\nwant %v", got, want)
	}
	// Triangles with two vertices of the 8 ring consume its edges: 6 primary
	// plus 2 extra. The rest fill the edges of the 6 ring.
	consumeA := 0
	for _, f := range m.Faces() {
		n := 0
		for _, idx := range f {
			if idx < b.Start {
				n++
			}
		}
		if n == 2 {
			consumeA++
		}
	}
	if consumeA != 8 || m.FaceCount()-consumeA != 6 {
		t.Errorf("got %d faces on the 8 ring and %d on the 6 ring, want 8 and 6", consumeA, m.FaceCount()-consumeA)
	}
	if used := referencedVertices(m, 0); len(used) != 14 {
		t.Errorf("stitch references %d vertices, want all 14", len(used))
	}
	if got := ShiftPoints(8, 6); !reflect.DeepEqual(got, []int{0, 3}) {
		t.Errorf("ShiftPoints(8, 6) = %v, want [0 3]", got)
	}
	checkOutward(t, m, Vec(0, 0, 0))
}

func TestStitchUnevenClosed(t *testing.T) {
	for M := 3; M <= 12; M++ {
		for N := 3; N <= 12; N++ {
			t.Run(fmt.Sprintf("%d_to_%d", M, N), func(t *testing.T) {
				m := NewMesh()
				top := EmitPole(m, 1)
				a := EmitRing(m, TierAt(pi/3, 1, M))
				b := EmitRing(m, TierAt(2*pi/3, 1, N))
				bottom := EmitPole(m, -1)
				for _, pair := range [][2]Ring{{top, a}, {a, b}, {b, bottom}} {
					if err := Stitch(m, pair[0], pair[1]); err != nil {
						t.Fatal(err)
					}
				}
				checkClosed(t, m)
				wantFaces := M + N
				if M == N {
					wantFaces = M
				}
				if got := m.FaceCount() - M - N; got != wantFaces {
					t.Errorf("ring stitch emitted %d faces, want %d", got, wantFaces)
				}
			})
		}
	}
}

func TestStitchTopologyErrors(t *testing.T) {
	m := NewMesh()
	pole := EmitPole(m, 1)
	a := EmitRing(m, TierAt(pi/3, 1, 8))
	b := EmitRing(m, TierAt(2*pi/3, 1, 6))
	for _, test := range []struct {
		name string
		fn   func() error
	}{
		{"outside mesh", func() error { return Stitch(m, a, Ring{Start: b.Start, Count: 10}) }},
		{"negative start", func() error { return Stitch(m, Ring{Start: -1, Count: 3}, b) }},
		{"empty ring", func() error { return Stitch(m, a, Ring{Start: b.Start}) }},
		{"overlap", func() error { return Stitch(m, a, Ring{Start: a.Start + 2, Count: 6}) }},
		{"pole to pole", func() error { return Stitch(m, pole, pole) }},
		{"strip unequal", func() error { return StitchStrip(m, a, b) }},
		{"uneven pole", func() error { return StitchUneven(m, pole, b) }},
		{"top pole is ring", func() error { return StitchTopPole(m, a, b) }},
		{"bottom pole is ring", func() error { return StitchBottomPole(m, a, b) }},
	} {
		t.Run(test.name, func(t *testing.T) {
			faces := m.FaceCount()
			err := test.fn()
			if !errors.Is(err, ErrTopology) {
				t.Errorf("got error %v, want ErrTopology", err)
			}
			if m.FaceCount() != faces {
				t.Error("failed stitch must not emit faces")
			}
		})
	}
}
