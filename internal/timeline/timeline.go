package timeline

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/iburimskiy/drone-show/internal/formation"
)

var ErrInvalidDuration = errors.New("invalid layer duration")

// Layer is one named step of a show: a formation held for Duration.
type Layer struct {
	ID       string
	Name     string
	Type     formation.Kind
	Duration time.Duration
	// Points is only consulted for custom layers.
	Points formation.Formation
}

// Segment is a layer placed on the show's time axis. Segments cover
// [Start, End) and are never modified once built.
type Segment struct {
	Layer
	Start time.Duration
	End   time.Duration
	Index int
}

// Contains reports whether t falls inside the half-open interval [Start, End).
func (s Segment) Contains(t time.Duration) bool {
	return s.Start <= t && t < s.End
}

// Timeline is the contiguous sequence of segments derived from a layer list.
type Timeline struct {
	Segments []Segment
	Total    time.Duration
}

// Build accumulates layer durations into contiguous segments. An empty
// layer list yields an empty zero-length timeline; a total that does not
// fit in a time.Duration is rejected.
func Build(layers []Layer) (Timeline, error) {
	segments := make([]Segment, 0, len(layers))
	var acc time.Duration
	for i, l := range layers {
		if l.Duration <= 0 {
			return Timeline{}, fmt.Errorf("layer %d (%s): not positive: %w", i, l.ID, ErrInvalidDuration)
		}
		if acc > math.MaxInt64-l.Duration {
			return Timeline{}, fmt.Errorf("layer %d (%s): total overflows: %w", i, l.ID, ErrInvalidDuration)
		}
		start := acc
		acc += l.Duration
		segments = append(segments, Segment{Layer: l, Start: start, End: acc, Index: i})
	}
	return Timeline{Segments: segments, Total: acc}, nil
}

func (tl Timeline) Len() int {
	return len(tl.Segments)
}

func (tl Timeline) find(t time.Duration) (int, bool) {
	i := sort.Search(len(tl.Segments), func(i int) bool { return tl.Segments[i].End > t })
	if i < len(tl.Segments) && tl.Segments[i].Contains(t) {
		return i, true
	}
	return i, false
}

// SegmentAt returns the segment active at t. Times outside the timeline,
// including t == Total, resolve to the last segment. ok is false only
// when the timeline is empty.
func (tl Timeline) SegmentAt(t time.Duration) (Segment, bool) {
	if len(tl.Segments) == 0 {
		return Segment{}, false
	}
	if i, ok := tl.find(t); ok {
		return tl.Segments[i], true
	}
	return tl.Segments[len(tl.Segments)-1], true
}

// DisplaySegmentAt is SegmentAt for labelling: out-of-range times show the
// first segment instead of the last.
func (tl Timeline) DisplaySegmentAt(t time.Duration) (Segment, bool) {
	if len(tl.Segments) == 0 {
		return Segment{}, false
	}
	if i, ok := tl.find(t); ok {
		return tl.Segments[i], true
	}
	return tl.Segments[0], true
}
