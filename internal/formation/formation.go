package formation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
)

// Kind names a formation type.
type Kind string

const (
	Grid   Kind = "grid"
	Sphere Kind = "sphere"
	Rings  Kind = "rings"
	Helix  Kind = "helix"
	// Custom formations carry their own point list and bypass generation.
	Custom Kind = "custom"
)

var ErrUnknownKind = errors.New("unknown formation type")

// ParseKind maps a type name from a scene file to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case Grid, Sphere, Rings, Helix, Custom:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Point is one target position and light colour.
type Point struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Color Color   `json:"color"`
}

// UnmarshalJSON decodes a point from a scene file. A point without a
// colour is white.
func (p *Point) UnmarshalJSON(data []byte) error {
	type plain Point
	v := plain{Color: Color{R: 255, G: 255, B: 255}}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = Point(v)
	return nil
}

// Formation is an ordered list of target points. It need not match the
// particle count: At wraps the index so short formations repeat.
type Formation []Point

// At returns the point for particle i, taken modulo the formation length.
func (f Formation) At(i int) Point {
	return f[i%len(f)]
}

// Generator builds procedural formations. Rings draws its jitter and
// remainder scatter from rng, so a Generator is not safe for concurrent use.
type Generator struct {
	palette Palette
	rng     *rand.Rand
}

func NewGenerator(palette Palette, rng *rand.Rand) *Generator {
	return &Generator{palette: palette, rng: rng}
}

// Generate builds count points of the given kind, scaled by spacing.
// Custom has no generator and is rejected like any unknown kind.
func (g *Generator) Generate(kind Kind, count int, spacing float64) (Formation, error) {
	switch kind {
	case Grid:
		return g.Grid(count, spacing), nil
	case Sphere:
		return g.Sphere(count, spacing), nil
	case Rings:
		return g.Rings(count, spacing), nil
	case Helix:
		return g.Helix(count, spacing), nil
	}
	return nil, fmt.Errorf("no generator for formation %q: %w", kind, ErrUnknownKind)
}

func (g *Generator) randomRange(min, max float64) float64 {
	return g.rng.Float64()*(max-min) + min
}
