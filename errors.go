package ringsphere

import "errors"

var (
	// ErrConfiguration is returned when shape parameters can not describe a mesh,
	// such as a ring with fewer than three segments or nothing to stitch.
	ErrConfiguration = errors.New("ringsphere: invalid configuration")
	// ErrTopology is returned when a stitch is requested between rings that
	// are empty, overlap or are not fully contained in the mesh.
	ErrTopology = errors.New("ringsphere: invalid topology")
)
