package ringsphere

import "math"

// Tier is the geometry of one ring of vertices around the Z axis.
type Tier struct {
	// Radius is the distance of the ring's vertices to the Z axis.
	Radius float64
	// Height is the Z coordinate shared by the ring's vertices.
	Height float64
	// Segments is the number of vertices in the ring.
	Segments int
}

// ArcAngle converts an arc constant to the angle it subtends.
// Arc constants are arc lengths on a sphere of unit diameter so the angle
// does not change with the radius of the generated sphere.
func ArcAngle(arc float64) float64 {
	return arc / pi * tau
}

// TierAt returns the tier whose vertices lie on a sphere of the given radius
// at polar angle polar, measured from the top pole. Tiers below the equator
// get a negative height.
func TierAt(polar, radius float64, segments int) Tier {
	s, c := math.Sincos(polar)
	return Tier{
		Radius:   s * radius,
		Height:   c * radius,
		Segments: segments,
	}
}

// CircumscribedRadius returns the vertex radius of a regular polygon with the
// given number of sides whose edge midpoints lie at distance r from its center.
//
// Flat bases use this instead of the on-sphere radius: a polygon with its
// vertices on the sphere has its edge midpoints inside it, which makes the
// base look inset.
func CircumscribedRadius(r float64, segments int) float64 {
	return r / math.Cos(pi/float64(segments))
}

// Circumscribe returns t with its radius corrected so that the tier's polygon
// circumscribes the circle of the original radius.
func (t Tier) Circumscribe() Tier {
	t.Radius = CircumscribedRadius(t.Radius, t.Segments)
	return t
}
