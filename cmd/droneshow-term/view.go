package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/drone-show/internal/animation"
	"github.com/iburimskiy/drone-show/internal/engine"
	"github.com/iburimskiy/drone-show/internal/render"
)

// surface is the part of tcell.Screen the view draws through.
type surface interface {
	Size() (int, int)
	Clear()
	Show()
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

type view struct {
	screen surface
	eng    *engine.Engine
}

// draw renders one frame. Terminal cells are about twice as tall as they
// are wide, so the vertical axis gets half the horizontal resolution.
func (v *view) draw(f engine.Frame) {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	if w < 10 || h < 4 {
		s.Show()
		return
	}

	plotH := h - 2
	sx := float64(w) / render.WorldSize
	sy := float64(plotH) / render.WorldSize * 1.2
	v.eng.Particles().Each(func(_ int, p animation.Particle) {
		pr, ok := render.Project(p, 0, 0)
		if !ok {
			return
		}
		col := int(float64(w)/2 + pr.X*sx)
		row := 1 + int(float64(plotH)/2+pr.Y*sy)
		if col < 0 || col >= w || row < 1 || row > plotH {
			return
		}
		fg := tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B))
		glyph := '·'
		if pr.Scale > 0.7 {
			glyph = '•'
		}
		s.SetContent(col, row, glyph, nil, tcell.StyleDefault.Foreground(fg).Background(tcell.ColorBlack))
	})

	header := v.eng.Title()
	if seg, ok := v.eng.ActiveSegment(); ok {
		header = fmt.Sprintf("%s | %d. %s", header, seg.Index+1, seg.Name)
	}
	printAt(s, 0, 0, header, tcell.StyleDefault.Bold(true))

	tl := v.eng.Timeline()
	state := "paused"
	if v.eng.IsPlaying() {
		state = "playing"
	}
	status := fmt.Sprintf("%s %5.1fs/%.1fs x%.2f  %d drones  space ←→ ↑↓ [ ] -= r q",
		state, f.Time.Seconds(), tl.Total.Seconds(), v.eng.Speed(), v.eng.DroneCount())
	bar := []rune(progressLine(w, render.Progress(f.Time, tl.Total)))
	for i, r := range bar {
		s.SetContent(i, h-1, r, nil, tcell.StyleDefault.Foreground(tcell.ColorTeal))
	}
	printAt(s, 0, h-1, status, tcell.StyleDefault.Reverse(true))
	s.Show()
}

func progressLine(w int, progress float64) string {
	filled := int(progress * float64(w))
	out := make([]rune, w)
	for i := range out {
		if i < filled {
			out[i] = '━'
		} else {
			out[i] = '─'
		}
	}
	return string(out)
}

func printAt(s surface, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
