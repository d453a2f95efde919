package ringsphere

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// tolerance used when comparing derived geometry.
	tolerance = 1e-9
)

// Vec returns the position (x, y, z). Z points up.
func Vec(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// Magnitude returns the euclidean length of v.
func Magnitude(v r3.Vec) float64 {
	return r3.Norm(v)
}
