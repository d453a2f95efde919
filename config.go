package ringsphere

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Reference shape constants of the projector sphere.
const (
	// DefaultRadius is the radius of the generated sphere.
	DefaultRadius = 0.5
	// DefaultArc is the arc constant between consecutive tiers of the hemisphere.
	DefaultArc = 0.37
	// UpperSegments is the vertex count of the tier nearest to the top pole.
	UpperSegments = 8
	// MiddleSegments is the vertex count of the tier at the slice.
	MiddleSegments = 8
	// LowerSegments is the vertex count of the hexagonal base.
	LowerSegments = 6
	// SphereArc spaces three tiers evenly between two poles.
	SphereArc = pi / 8
	// SphereSegments is the vertex count of each tier of the closed sphere.
	SphereSegments = 8
)

// Preset names accepted by LoadConfig and PresetConfig.
const (
	PresetHemisphere = "hemisphere"
	PresetSphere     = "sphere"
)

// TierConfig describes one ring of the generated mesh.
type TierConfig struct {
	// Arc is the arc constant between the previous tier (or the top of the
	// sphere for the first tier) and this one. See ArcAngle.
	Arc float64 `json:"arc"`
	// Segments is the number of vertices of the ring.
	Segments int `json:"segments"`
	// FlatBase marks the last tier as a flat polygonal base that
	// circumscribes the sphere instead of a ring on it.
	FlatBase bool `json:"flatBase"`
}

// Config holds the shape parameters of a generation run.
type Config struct {
	// Radius of the sphere.
	Radius float64 `json:"radius"`
	// TopPole adds a vertex at (0, 0, Radius) fanned to the first tier.
	TopPole bool `json:"topPole"`
	// BottomPole adds a vertex on the Z axis fanned to the last tier. It sits
	// at -Radius, or in the base plane when the last tier is a flat base.
	BottomPole bool `json:"bottomPole"`
	// Tiers from top to bottom.
	Tiers []TierConfig `json:"tiers"`
}

// Hemisphere returns the projector sphere configuration: two rings of 8
// followed by a hexagonal flat base, capped by poles at the top and at the
// center of the base.
func Hemisphere() Config {
	return Config{
		Radius:     DefaultRadius,
		TopPole:    true,
		BottomPole: true,
		Tiers: []TierConfig{
			{Arc: DefaultArc, Segments: UpperSegments},
			{Arc: DefaultArc, Segments: MiddleSegments},
			{Arc: DefaultArc, Segments: LowerSegments, FlatBase: true},
		},
	}
}

// Sphere returns a closed sphere of three rings of 8 between two poles.
func Sphere() Config {
	return Config{
		Radius:     DefaultRadius,
		TopPole:    true,
		BottomPole: true,
		Tiers: []TierConfig{
			{Arc: SphereArc, Segments: SphereSegments},
			{Arc: SphereArc, Segments: SphereSegments},
			{Arc: SphereArc, Segments: SphereSegments},
		},
	}
}

// PresetConfig returns the configuration with the given preset name.
func PresetConfig(name string) (Config, error) {
	switch strings.ToLower(name) {
	case "", PresetHemisphere:
		return Hemisphere(), nil
	case PresetSphere:
		return Sphere(), nil
	}
	return Config{}, fmt.Errorf("%w: unknown preset %q", ErrConfiguration, name)
}

// Validate checks that the configuration describes a mesh with at least one
// stitch.
func (cfg Config) Validate() error {
	_, err := cfg.TierGeometry()
	return err
}

// TierGeometry returns the radius and height of every tier. Tier polar
// angles accumulate the arc angle of each tier from the top pole.
func (cfg Config) TierGeometry() ([]Tier, error) {
	if cfg.Radius <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive, got %g", ErrConfiguration, cfg.Radius)
	}
	if len(cfg.Tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrConfiguration)
	}
	if cfg.levels() < 2 {
		return nil, fmt.Errorf("%w: need at least two levels to stitch, got %d", ErrConfiguration, cfg.levels())
	}
	tiers := make([]Tier, len(cfg.Tiers))
	polar := 0.0
	for i, tc := range cfg.Tiers {
		switch {
		case tc.Segments < 3:
			return nil, fmt.Errorf("%w: tier %d has %d segments, need at least 3", ErrConfiguration, i, tc.Segments)
		case tc.Arc <= 0:
			return nil, fmt.Errorf("%w: tier %d arc must be positive, got %g", ErrConfiguration, i, tc.Arc)
		case tc.FlatBase && i != len(cfg.Tiers)-1:
			return nil, fmt.Errorf("%w: tier %d is a flat base but is not the last tier", ErrConfiguration, i)
		}
		polar += ArcAngle(tc.Arc)
		if polar >= pi-tolerance {
			return nil, fmt.Errorf("%w: tier %d reaches past the bottom of the sphere (polar angle %g)", ErrConfiguration, i, polar)
		}
		tiers[i] = TierAt(polar, cfg.Radius, tc.Segments)
		if tc.FlatBase {
			tiers[i] = tiers[i].Circumscribe()
		}
	}
	return tiers, nil
}

// Poles returns the number of poles in the configuration.
func (cfg Config) Poles() int {
	n := 0
	if cfg.TopPole {
		n++
	}
	if cfg.BottomPole {
		n++
	}
	return n
}

// VertexCount returns the number of vertices Generate emits for cfg.
func (cfg Config) VertexCount() int {
	n := cfg.Poles()
	for _, tc := range cfg.Tiers {
		n += tc.Segments
	}
	return n
}

func (cfg Config) levels() int { return cfg.Poles() + len(cfg.Tiers) }

// bottomPoleHeight returns the height of the bottom pole given the last tier.
func (cfg Config) bottomPoleHeight(last Tier) float64 {
	if cfg.Tiers[len(cfg.Tiers)-1].FlatBase {
		return last.Height
	}
	return -cfg.Radius
}

// fileConfig is the JSON layout read by LoadConfig. Absent fields keep the
// preset's value.
type fileConfig struct {
	Preset     string       `json:"preset"`
	Radius     *float64     `json:"radius"`
	TopPole    *bool        `json:"topPole"`
	BottomPole *bool        `json:"bottomPole"`
	Tiers      []TierConfig `json:"tiers"`
}

// LoadConfig reads a JSON configuration. Fields not present in the input
// keep the value of the selected "preset" (hemisphere by default). A "tiers"
// array replaces the preset's tiers entirely.
//
//	{"preset": "sphere", "radius": 2}
func LoadConfig(r io.Reader) (Config, error) {
	var fc fileConfig
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return Config{}, fmt.Errorf("%w: decoding json: %v", ErrConfiguration, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Config{}, fmt.Errorf("%w: trailing data after configuration", ErrConfiguration)
	}
	cfg, err := PresetConfig(fc.Preset)
	if err != nil {
		return Config{}, err
	}
	if fc.Radius != nil {
		cfg.Radius = *fc.Radius
	}
	if fc.TopPole != nil {
		cfg.TopPole = *fc.TopPole
	}
	if fc.BottomPole != nil {
		cfg.BottomPole = *fc.BottomPole
	}
	if fc.Tiers != nil {
		cfg.Tiers = fc.Tiers
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
