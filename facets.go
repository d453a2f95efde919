package ringsphere

import (
	"math"

	"github.com/soypat/ringsphere/internal/d3"
	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/spatial/r3"
)

var (
	_ kdtree.Interface = kdFacets{}
	_ kdtree.Bounder   = kdFacets{}
)

// Normal returns the unnormalized normal given by the triangle's winding.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t[1], t[0]), r3.Sub(t[2], t[0]))
}

// Centroid returns the mean of the triangle's vertices.
func (t Triangle) Centroid() r3.Vec {
	return r3.Scale(1./3, r3.Add(r3.Add(t[0], t[1]), t[2]))
}

// ClosestPoint returns the point of the triangle nearest to p.
func (t Triangle) ClosestPoint(p r3.Vec) r3.Vec {
	a, b, c := t[0], t[1], t[2]
	ab, ac, ap := r3.Sub(b, a), r3.Sub(c, a), r3.Sub(p, a)
	s1, s2 := r3.Dot(ab, ap), r3.Dot(ac, ap)
	if s1 <= 0 && s2 <= 0 {
		return a
	}
	bp := r3.Sub(p, b)
	s3, s4 := r3.Dot(ab, bp), r3.Dot(ac, bp)
	if s3 >= 0 && s4 <= s3 {
		return b
	}
	vc := s1*s4 - s3*s2
	if vc <= 0 && s1 >= 0 && s3 <= 0 {
		return r3.Add(a, r3.Scale(s1/(s1-s3), ab))
	}
	cp := r3.Sub(p, c)
	s5, s6 := r3.Dot(ab, cp), r3.Dot(ac, cp)
	if s6 >= 0 && s5 <= s6 {
		return c
	}
	vb := s5*s2 - s1*s6
	if vb <= 0 && s2 >= 0 && s6 <= 0 {
		return r3.Add(a, r3.Scale(s2/(s2-s6), ac))
	}
	va := s3*s6 - s5*s4
	if va <= 0 && s4-s3 >= 0 && s5-s6 >= 0 {
		w := (s4 - s3) / ((s4 - s3) + (s5 - s6))
		return r3.Add(b, r3.Scale(w, r3.Sub(c, b)))
	}
	denom := 1 / (va + vb + vc)
	v, w := vb*denom, vc*denom
	return r3.Add(a, r3.Add(r3.Scale(v, ab), r3.Scale(w, ac)))
}

// FacetIndex answers distance queries against the faces of a finished mesh.
// Candidate facets are found by nearest centroid in a k-d tree and the exact
// distance is then measured to each candidate.
type FacetIndex struct {
	tree       *kdtree.Tree
	candidates int
}

// defaultCandidates is the number of nearest centroids inspected per query.
const defaultCandidates = 6

// NewFacetIndex indexes the triangles of m. The mesh must have faces.
func NewFacetIndex(m *Mesh) *FacetIndex {
	tris := m.Triangles()
	if len(tris) == 0 {
		panic("bug: facet index of mesh without faces")
	}
	facets := make(kdFacets, len(tris))
	for i, t := range tris {
		facets[i] = kdFacet{tri: t, centroid: t.Centroid()}
	}
	return &FacetIndex{
		tree:       kdtree.New(facets, true),
		candidates: min(defaultCandidates, len(facets)),
	}
}

// Nearest returns the facet whose centroid is closest to p.
func (fi *FacetIndex) Nearest(p r3.Vec) Triangle {
	got, _ := fi.tree.Nearest(kdFacet{centroid: p})
	return got.(kdFacet).tri
}

// Distance returns the signed distance from p to the nearest facet found.
// Points on the outward side of the facet, as given by its winding, are
// positive.
func (fi *FacetIndex) Distance(p r3.Vec) float64 {
	keep := kdtree.NewNKeeper(fi.candidates)
	fi.tree.NearestSet(keep, kdFacet{centroid: p})
	best := math.Inf(1)
	sign := 1.0
	for _, c := range keep.Heap {
		if c.Comparable == nil {
			continue
		}
		tri := c.Comparable.(kdFacet).tri
		closest := tri.ClosestPoint(p)
		dir := r3.Sub(p, closest)
		dist := r3.Norm(dir)
		if dist < best {
			best = dist
			sign = math.Copysign(1, r3.Dot(tri.Normal(), dir))
		}
	}
	return sign * best
}

// kdFacet is a triangle positioned in the tree by its centroid.
type kdFacet struct {
	tri      Triangle
	centroid r3.Vec
}

type kdFacets []kdFacet

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//
//	c = a_d - b_d
func (a kdFacet) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return axis(a.centroid, int(d)) - axis(b.(kdFacet).centroid, int(d))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdFacet) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between centroids.
func (a kdFacet) Distance(b kdtree.Comparable) float64 {
	return r3.Norm2(r3.Sub(a.centroid, b.(kdFacet).centroid))
}

func (k kdFacets) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdFacets) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdFacets) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), facets: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdFacets) Slice(start, end int) kdtree.Interface { return k[start:end] }

// Bounds returns the box containing every centroid.
func (k kdFacets) Bounds() *kdtree.Bounding {
	set := make(d3.Set, len(k))
	for i := range k {
		set[i] = k[i].centroid
	}
	return &kdtree.Bounding{
		Min: kdFacet{centroid: set.Min()},
		Max: kdFacet{centroid: set.Max()},
	}
}

func axis(v r3.Vec, dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("bug: invalid dimension")
}

type kdPlane struct {
	dim    int
	facets kdFacets
}

func (p kdPlane) Less(i, j int) bool {
	return axis(p.facets[i].centroid, p.dim) < axis(p.facets[j].centroid, p.dim)
}
func (p kdPlane) Swap(i, j int) {
	p.facets[i], p.facets[j] = p.facets[j], p.facets[i]
}
func (p kdPlane) Len() int {
	return len(p.facets)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.facets = p.facets[start:end]
	return p
}
