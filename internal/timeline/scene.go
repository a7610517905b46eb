package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/iburimskiy/drone-show/internal/formation"
)

var ErrMalformedScene = errors.New("malformed scene")

// Scene is a titled show description, either built in or loaded from JSON.
type Scene struct {
	Title  string
	Layers []Layer
}

type sceneFile struct {
	Title  string      `json:"title"`
	Layers []layerFile `json:"layers"`
}

type layerFile struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Type     string              `json:"type"`
	Duration *float64            `json:"duration"`
	Points   formation.Formation `json:"points,omitempty"`
}

// maxDurationMs is the longest layer a time.Duration can hold.
const maxDurationMs = float64(math.MaxInt64 / int64(time.Millisecond))

// ParseScene decodes and validates a scene document. Any failure is
// reported as ErrMalformedScene and nothing is partially returned.
func ParseScene(data []byte) (Scene, error) {
	var raw sceneFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return Scene{}, fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}

	scene := Scene{Title: raw.Title, Layers: make([]Layer, 0, len(raw.Layers))}
	for i, l := range raw.Layers {
		layer, err := l.toLayer()
		if err != nil {
			return Scene{}, fmt.Errorf("%w: layer %d: %v", ErrMalformedScene, i, err)
		}
		scene.Layers = append(scene.Layers, layer)
	}
	if err := scene.Validate(); err != nil {
		return Scene{}, err
	}
	return scene, nil
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("read scene: %w", err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	return scene, nil
}

func (l layerFile) toLayer() (Layer, error) {
	kind, err := formation.ParseKind(l.Type)
	if err != nil {
		return Layer{}, err
	}
	if l.Duration == nil {
		return Layer{}, errors.New("missing duration")
	}
	if math.Abs(*l.Duration) > maxDurationMs {
		return Layer{}, fmt.Errorf("duration %vms: %w", *l.Duration, ErrInvalidDuration)
	}
	layer := Layer{
		ID:       l.ID,
		Name:     l.Name,
		Type:     kind,
		Duration: time.Duration(*l.Duration * float64(time.Millisecond)),
	}
	if kind == formation.Custom {
		layer.Points = l.Points
	}
	return layer, nil
}

// Validate checks that the scene can drive a show: at least one layer,
// positive durations that fit in one timeline, known types and points
// for every custom layer.
func (s Scene) Validate() error {
	if len(s.Layers) == 0 {
		return fmt.Errorf("%w: no layers", ErrMalformedScene)
	}
	if _, err := Build(s.Layers); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedScene, err)
	}
	for i, l := range s.Layers {
		if _, err := formation.ParseKind(string(l.Type)); err != nil {
			return fmt.Errorf("%w: layer %d (%s): %v", ErrMalformedScene, i, l.ID, err)
		}
		if l.Type == formation.Custom && len(l.Points) == 0 {
			return fmt.Errorf("%w: layer %d (%s): custom layer without points", ErrMalformedScene, i, l.ID)
		}
	}
	return nil
}

// Clone returns a copy sharing no slices with s.
func (s Scene) Clone() Scene {
	out := Scene{Title: s.Title, Layers: make([]Layer, len(s.Layers))}
	for i, l := range s.Layers {
		l.Points = append(formation.Formation(nil), l.Points...)
		out.Layers[i] = l
	}
	return out
}

// DefaultScene is the built-in show played until a scene file is loaded.
func DefaultScene() Scene {
	return Scene{
		Title: "PyeongChang Tribute",
		Layers: []Layer{
			{ID: "layer_01_standby", Name: "Standby", Type: formation.Grid, Duration: 3 * time.Second},
			{ID: "layer_02_rings", Name: "Olympic Rings", Type: formation.Rings, Duration: 5 * time.Second},
			{ID: "layer_03_sphere", Name: "Spinning Globe", Type: formation.Sphere, Duration: 5 * time.Second},
			{ID: "layer_04_helix", Name: "DNA Helix", Type: formation.Helix, Duration: 5 * time.Second},
		},
	}
}
