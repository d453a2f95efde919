package ringsphere

import "fmt"

// Generate builds the mesh described by cfg. Rings are emitted from the top
// down and each is stitched to the level above it as soon as it exists, so
// faces never reference vertices that come later. The returned mesh is
// owned by the caller.
func Generate(cfg Config) (*Mesh, error) {
	tiers, err := cfg.TierGeometry()
	if err != nil {
		return nil, err
	}
	log := Logger()
	m := NewMesh()
	var (
		prev    Ring
		hasPrev bool
	)
	if cfg.TopPole {
		prev, hasPrev = EmitPole(m, cfg.Radius), true
	}
	for i, tier := range tiers {
		ring := EmitRing(m, tier)
		log.Debug("tier emitted", "tier", i, "segments", tier.Segments, "radius", tier.Radius, "height", tier.Height, "start", ring.Start)
		if hasPrev {
			if !prev.IsPole() && prev.Count != ring.Count {
				log.Debug("uneven stitch", "tier", i, "from", prev.Count, "to", ring.Count, "shifts", ShiftPoints(prev.Count, ring.Count))
			}
			if err := Stitch(m, prev, ring); err != nil {
				return nil, fmt.Errorf("stitching tier %d: %w", i, err)
			}
		}
		prev, hasPrev = ring, true
	}
	if cfg.BottomPole {
		pole := EmitPole(m, cfg.bottomPoleHeight(tiers[len(tiers)-1]))
		if err := Stitch(m, prev, pole); err != nil {
			return nil, fmt.Errorf("stitching bottom pole: %w", err)
		}
	}
	log.Info("mesh generated", "vertices", m.VertexCount(), "faces", m.FaceCount())
	return m, nil
}
