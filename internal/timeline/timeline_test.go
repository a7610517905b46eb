package timeline

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/drone-show/internal/formation"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestBuildExample(t *testing.T) {
	tl, err := Build([]Layer{
		{ID: "a", Type: formation.Grid, Duration: ms(3000)},
		{ID: "b", Type: formation.Rings, Duration: ms(5000)},
	})
	require.NoError(t, err)
	require.Len(t, tl.Segments, 2)

	assert.Equal(t, ms(0), tl.Segments[0].Start)
	assert.Equal(t, ms(3000), tl.Segments[0].End)
	assert.Equal(t, 0, tl.Segments[0].Index)
	assert.Equal(t, ms(3000), tl.Segments[1].Start)
	assert.Equal(t, ms(8000), tl.Segments[1].End)
	assert.Equal(t, 1, tl.Segments[1].Index)
	assert.Equal(t, ms(8000), tl.Total)
	assert.Equal(t, "b", tl.Segments[1].ID)
}

func TestBuildSegmentsAreContiguous(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for trial := 0; trial < 50; trial++ {
		n := rng.IntN(12) + 1
		layers := make([]Layer, n)
		var sum time.Duration
		for i := range layers {
			layers[i] = Layer{Type: formation.Grid, Duration: ms(rng.IntN(9000) + 1)}
			sum += layers[i].Duration
		}

		tl, err := Build(layers)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), tl.Segments[0].Start)
		assert.Equal(t, sum, tl.Total)
		assert.Equal(t, tl.Total, tl.Segments[n-1].End)
		for i := 0; i+1 < n; i++ {
			assert.Equal(t, tl.Segments[i].End, tl.Segments[i+1].Start)
		}

		// every instant belongs to exactly one segment
		for k := 0; k < 40; k++ {
			at := time.Duration(rng.Int64N(int64(tl.Total)))
			matches := 0
			for _, s := range tl.Segments {
				if s.Contains(at) {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "t=%v", at)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	tl, err := Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tl.Len())
	assert.Equal(t, time.Duration(0), tl.Total)

	_, ok := tl.SegmentAt(0)
	assert.False(t, ok)
	_, ok = tl.DisplaySegmentAt(0)
	assert.False(t, ok)
}

func TestBuildRejectsNonPositiveDuration(t *testing.T) {
	_, err := Build([]Layer{{ID: "x", Duration: 0}})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = Build([]Layer{{ID: "x", Duration: ms(10)}, {ID: "y", Duration: -ms(1)}})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestBuildRejectsOverflowingTotal(t *testing.T) {
	half := time.Duration(math.MaxInt64/2 + 1)
	_, err := Build([]Layer{{ID: "a", Duration: half}, {ID: "b", Duration: half}})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	tl, err := Build([]Layer{{ID: "a", Duration: half}, {ID: "b", Duration: half - 1}})
	require.NoError(t, err)
	assert.Equal(t, time.Duration(math.MaxInt64), tl.Total)
	assert.Equal(t, tl.Total, tl.Segments[1].End)
}

func TestSegmentAtBoundaries(t *testing.T) {
	tl, err := Build([]Layer{{Duration: ms(3000)}, {Duration: ms(5000)}, {Duration: ms(1000)}})
	require.NoError(t, err)

	tests := []struct {
		at      time.Duration
		index   int
		display int
	}{
		{0, 0, 0},
		{ms(2999), 0, 0},
		{ms(3000), 1, 1},
		{ms(7999), 1, 1},
		{ms(8000), 2, 2},
		{ms(9000), 2, 0},
		{ms(12000), 2, 0},
		{-ms(1), 2, 0},
	}
	for _, tt := range tests {
		s, ok := tl.SegmentAt(tt.at)
		require.True(t, ok)
		assert.Equal(t, tt.index, s.Index, "SegmentAt(%v)", tt.at)

		d, ok := tl.DisplaySegmentAt(tt.at)
		require.True(t, ok)
		assert.Equal(t, tt.display, d.Index, "DisplaySegmentAt(%v)", tt.at)
	}
}
