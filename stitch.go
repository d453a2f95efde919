package ringsphere

import "fmt"

// Stitch connects upper to lower with outward wound faces. upper must have
// been emitted above lower. The stitch used depends on the rings:
//   - pole above a ring: StitchTopPole
//   - ring above a pole: StitchBottomPole
//   - rings of the same size: StitchStrip
//   - rings of different size: StitchUneven
func Stitch(m *Mesh, upper, lower Ring) error {
	switch {
	case upper.IsPole() && lower.IsPole():
		return fmt.Errorf("%w: can not stitch pole %d to pole %d", ErrTopology, upper.Start, lower.Start)
	case upper.IsPole():
		return StitchTopPole(m, upper, lower)
	case lower.IsPole():
		return StitchBottomPole(m, upper, lower)
	case upper.Count == lower.Count:
		return StitchStrip(m, upper, lower)
	}
	return StitchUneven(m, upper, lower)
}

// StitchTopPole fans the pole to every edge of ring, emitting ring.Count triangles.
func StitchTopPole(m *Mesh, pole, ring Ring) error {
	if err := checkPair(m, pole, ring); err != nil {
		return err
	}
	if !pole.IsPole() {
		return fmt.Errorf("%w: top pole has %d vertices", ErrTopology, pole.Count)
	}
	p := pole.Start
	for i := 1; i < ring.Count; i++ {
		m.AddFace(ring.At(i), p, ring.At(i-1))
	}
	m.AddFace(ring.At(0), p, ring.At(-1))
	return nil
}

// StitchBottomPole fans the pole below ring to every edge of the ring.
// The winding is the mirror of StitchTopPole so the faces point down and out.
func StitchBottomPole(m *Mesh, ring, pole Ring) error {
	if err := checkPair(m, ring, pole); err != nil {
		return err
	}
	if !pole.IsPole() {
		return fmt.Errorf("%w: bottom pole has %d vertices", ErrTopology, pole.Count)
	}
	p := pole.Start
	for i := 1; i < ring.Count; i++ {
		m.AddFace(ring.At(i-1), p, ring.At(i))
	}
	m.AddFace(ring.At(-1), p, ring.At(0))
	return nil
}

// StitchStrip connects two rings of equal size with one quad per pair of
// angularly matching edges.
func StitchStrip(m *Mesh, a, b Ring) error {
	if err := checkPair(m, a, b); err != nil {
		return err
	}
	if a.Count != b.Count {
		return fmt.Errorf("%w: strip needs equal rings, got %d and %d", ErrTopology, a.Count, b.Count)
	}
	for i := 1; i < b.Count; i++ {
		m.AddFace(b.At(i), a.At(i), a.At(i-1), b.At(i-1))
	}
	m.AddFace(b.At(0), a.At(0), a.At(-1), b.At(-1))
	return nil
}

// StitchUneven connects ring a (M vertices) above ring b (N vertices) with
// triangles when M and N differ.
//
// Vertex b[i] owns the a edges k in [edgeStart(i), edgeStart(i+1)), edge k
// joining a[k] and a[k+1]. Each owned edge gets a triangle (b[i], a[k+1], a[k])
// and each b edge a fill triangle (b[i], a[edgeStart(i)], b[i-1]), so the stitch
// emits M+N triangles. Where a vertex owns more than one edge the walk
// absorbs the surplus vertices of the larger ring, see ShiftPoints.
//
// For an 8 to 6 reduction this is the topology of the projector sphere:
// b[3] and b[0] each take one extra triangle.
func StitchUneven(m *Mesh, a, b Ring) error {
	if err := checkPair(m, a, b); err != nil {
		return err
	}
	if a.IsPole() || b.IsPole() {
		return fmt.Errorf("%w: uneven stitch needs two rings, got %d and %d vertices", ErrTopology, a.Count, b.Count)
	}
	M, N := a.Count, b.Count
	for i := 0; i < N; i++ {
		first, end := edgeStart(i, M, N), edgeStart(i+1, M, N)
		if i == 0 {
			// Wrap edge a[M-1]-a[0] is emitted when closing.
			first++
		}
		k := first
		if k < end {
			m.AddFace(b.At(i), a.At(k+1), a.At(k))
			k++
		}
		if i > 0 {
			m.AddFace(b.At(i), a.At(edgeStart(i, M, N)), b.At(i-1))
		}
		for ; k < end; k++ {
			m.AddFace(b.At(i), a.At(k+1), a.At(k))
		}
	}
	m.AddFace(b.At(0), a.At(0), a.At(-1))
	m.AddFace(b.At(0), a.At(edgeStart(0, M, N)), b.At(-1))
	return nil
}

// ShiftPoints returns the positions i of the smaller ring's walk at which
// vertex i absorbs more than one edge of an M vertex ring when stitched to an
// N vertex ring. Position 0 includes the closing wrap edge.
// For M=8, N=6 it returns [0 3].
func ShiftPoints(M, N int) []int {
	var shifts []int
	for i := 0; i < N; i++ {
		if edgeStart(i+1, M, N)-edgeStart(i, M, N) > 1 {
			shifts = append(shifts, i)
		}
	}
	return shifts
}

// edgeStart returns ceil(i*M/N) - 1, the first edge of the M ring owned by
// vertex i of the N ring. edgeStart(0) is -1, the wrap edge.
func edgeStart(i, M, N int) int {
	return (i*M+N-1)/N - 1
}

func checkPair(m *Mesh, a, b Ring) error {
	if err := a.check(m); err != nil {
		return err
	}
	if err := b.check(m); err != nil {
		return err
	}
	if a.Start < b.end() && b.Start < a.end() {
		return fmt.Errorf("%w: rings [%d,%d) and [%d,%d) overlap", ErrTopology, a.Start, a.end(), b.Start, b.end())
	}
	return nil
}
