package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/drone-show/internal/config"
	"github.com/iburimskiy/drone-show/internal/render"
)

var background = color.RGBA{R: 17, G: 24, B: 39, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.drawParticles(screen)
	g.drawHeader(screen)
	g.drawButton(screen)
	g.drawProgressBar(screen)
	g.drawStatus(screen)
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	cx := float64(config.WindowWidth) / 2
	cy := float64(config.WindowHeight)/2 - config.BarMargin/2
	for _, p := range g.particles {
		pr, ok := render.Project(p, cx, cy)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(screen, float32(pr.X), float32(pr.Y), float32(pr.Radius), render.RGBA(p.Color, 255), true)
	}
}

func (g *Game) drawHeader(screen *ebiten.Image) {
	label := g.eng.Title()
	if seg, ok := g.eng.ActiveSegment(); ok {
		label = fmt.Sprintf("%s  |  %d. %s (%s)", label, seg.Index+1, seg.Name, seg.Type)
	}
	ebitenutil.DebugPrintAt(screen, label, config.ButtonX+config.ButtonWidth+20, config.ButtonY+10)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)

	text := "Load Scene"
	textWidth := len(text) * 6
	ebitenutil.DebugPrintAt(screen, text, config.ButtonX+(config.ButtonWidth-textWidth)/2, config.ButtonY+(config.ButtonHeight-16)/2)
}

func (g *Game) drawProgressBar(screen *ebiten.Image) {
	b := g.bar
	tl := g.eng.Timeline()
	progress := render.Progress(g.frame.Time, tl.Total)

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), color.RGBA{R: 25, G: 30, B: 40, A: 200}, false)

	// one tinted band per segment
	for i, s := range tl.Segments {
		x0 := b.X + render.Progress(s.Start, tl.Total)*b.W
		x1 := b.X + render.Progress(s.End, tl.Total)*b.W
		vector.DrawFilledRect(screen, float32(x0), float32(b.Y), float32(x1-x0), float32(b.H), segmentColor(i, len(tl.Segments), 40), false)
	}
	if progress > 0 {
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(progress*b.W), float32(b.H), color.RGBA{R: 0, G: 160, B: 200, A: 140}, false)
	}
	for _, x := range b.Markers(tl) {
		vector.StrokeLine(screen, float32(x), float32(b.Y), float32(x), float32(b.Y+b.H), 2, color.RGBA{R: 220, G: 220, B: 230, A: 200}, false)
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, color.RGBA{R: 70, G: 80, B: 100, A: 255}, false)

	indicatorX := b.X + progress*b.W
	vector.DrawFilledCircle(screen, float32(indicatorX), float32(b.Y+b.H/2), 8, color.White, false)
	vector.StrokeCircle(screen, float32(indicatorX), float32(b.Y+b.H/2), 8, 2, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)

	ebitenutil.DebugPrintAt(screen, formatDuration(g.frame.Time), int(b.X), int(b.Y+b.H+4))
	total := formatDuration(tl.Total)
	ebitenutil.DebugPrintAt(screen, total, int(b.X+b.W)-len(total)*6, int(b.Y+b.H+4))

	if g.barHovered {
		mouseX, mouseY := ebiten.CursorPosition()
		tip := formatDuration(render.TimeAt(b.Fraction(float64(mouseX)), tl.Total))

		tipWidth := len(tip)*6 + 10
		tipX := min(max(mouseX-tipWidth/2, 0), config.WindowWidth-tipWidth)
		tipY := mouseY - 25

		vector.DrawFilledRect(screen, float32(tipX), float32(tipY), float32(tipWidth), 20, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
		vector.StrokeRect(screen, float32(tipX), float32(tipY), float32(tipWidth), 20, 1, color.RGBA{R: 100, G: 110, B: 130, A: 255}, false)
		ebitenutil.DebugPrintAt(screen, tip, tipX+5, tipY+3)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	state := "Paused"
	if g.eng.IsPlaying() {
		state = "Playing"
	}
	status := fmt.Sprintf("%s  x%.2f  spacing %.1f  drones %d  |  Space play/pause  <- -> seek  Up/Down speed  [ ] spacing  -/= drones  O open  R restart  Q quit",
		state, g.eng.Speed(), g.eng.Spacing(), g.eng.DroneCount())
	if g.lastErr != nil {
		status += "  |  Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}
