package main

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/drone-show/internal/engine"
)

func newEngine(t *testing.T) *engine.Engine {
	cfg := engine.DefaultConfig()
	cfg.Seed = 1
	cfg.Drones = 200
	e, err := engine.New(cfg)
	require.NoError(t, err)
	return e
}

func TestCommands(t *testing.T) {
	e := newEngine(t)

	run := func(ev *tcell.EventKey) {
		cmd, ok := command(ev, zerolog.Nop())
		require.True(t, ok)
		cmd(e)
	}

	run(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.True(t, e.IsPlaying())

	run(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	run(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, 2*time.Second, e.CurrentTime())
	run(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, time.Second, e.CurrentTime())

	run(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 1.25, e.Speed())

	run(tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone))
	assert.Equal(t, 300, e.DroneCount())
	assert.Equal(t, 300, e.Particles().Len())

	run(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.Equal(t, time.Duration(0), e.CurrentTime())

	_, ok := command(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), zerolog.Nop())
	assert.False(t, ok)
	_, ok = command(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), zerolog.Nop())
	assert.False(t, ok)
}

func TestRejectedSettingsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	report := logRejected(zerolog.New(&buf))

	report(nil)
	assert.Empty(t, buf.String())

	report(fmt.Errorf("%w: drone count -1", engine.ErrInvalidSetting))
	assert.Contains(t, buf.String(), "setting rejected")
	assert.Contains(t, buf.String(), "drone count -1")
}

func TestCommandsLogRejectedSettings(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	e := newEngine(t)

	cmd, ok := command(tcell.NewEventKey(tcell.KeyRune, '=', tcell.ModNone), log)
	require.True(t, ok)
	cmd(e)
	assert.Empty(t, buf.String(), "accepted settings are not logged")
	assert.Equal(t, 300, e.DroneCount())
}

func TestProgressLine(t *testing.T) {
	assert.Equal(t, "━━──", progressLine(4, 0.5))
	assert.Equal(t, "────", progressLine(4, 0))
	assert.Equal(t, "━━━━", progressLine(4, 1))
}

type gridScreen struct {
	w, h  int
	cells map[[2]int]rune
	shown int
}

func newGridScreen(w, h int) *gridScreen {
	return &gridScreen{w: w, h: h, cells: map[[2]int]rune{}}
}

func (g *gridScreen) Size() (int, int) { return g.w, g.h }
func (g *gridScreen) Clear()           { g.cells = map[[2]int]rune{} }
func (g *gridScreen) Show()            { g.shown++ }
func (g *gridScreen) SetContent(x, y int, mainc rune, _ []rune, _ tcell.Style) {
	g.cells[[2]int{x, y}] = mainc
}

func (g *gridScreen) row(y int) string {
	out := make([]rune, g.w)
	for x := range out {
		r, ok := g.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		out[x] = r
	}
	return string(out)
}

func TestViewDraw(t *testing.T) {
	s := newGridScreen(80, 24)
	e := newEngine(t)
	v := &view{screen: s, eng: e}
	v.draw(e.Tick(0))

	assert.Equal(t, 1, s.shown)
	assert.Contains(t, s.row(0), "PyeongChang Tribute | 1. Standby")
	assert.Contains(t, s.row(23), "paused")

	plotted := 0
	for pos := range s.cells {
		if pos[1] >= 1 && pos[1] <= 22 {
			plotted++
		}
	}
	assert.Positive(t, plotted)
}

func TestViewDrawTinyScreen(t *testing.T) {
	s := newGridScreen(5, 2)
	e := newEngine(t)
	(&view{screen: s, eng: e}).draw(e.Tick(0))
	assert.Empty(t, s.cells)
	assert.Equal(t, 1, s.shown)
}
