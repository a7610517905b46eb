package game

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/drone-show/internal/animation"
	"github.com/iburimskiy/drone-show/internal/clock"
	"github.com/iburimskiy/drone-show/internal/config"
	"github.com/iburimskiy/drone-show/internal/engine"
	"github.com/iburimskiy/drone-show/internal/render"
)

// Game hosts an engine inside ebiten's frame loop: Update ticks the
// engine and applies controls, Draw only reads the last snapshot.
type Game struct {
	eng   *engine.Engine
	log   zerolog.Logger
	timer clock.FrameTimer

	frame     engine.Frame
	particles []animation.Particle

	// input edge detection
	keys keyEdges

	// button state
	buttonHovered bool
	buttonPressed bool

	// progress bar
	bar         render.Bar
	barHovered  bool
	barDragging bool

	lastErr error
}

func New(eng *engine.Engine, log zerolog.Logger) *Game {
	return &Game{
		eng:  eng,
		log:  log,
		keys: keyEdges{},
		bar: render.Bar{
			X: config.BarX,
			Y: config.WindowHeight - config.BarMargin,
			W: config.WindowWidth - 2*config.BarX,
			H: config.BarHeight,
		},
	}
}

func (g *Game) Update() error {
	if g.keys.justPressed(ebiten.KeyEscape) || g.keys.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.handleButton()
	g.handleProgressBar()
	g.handleKeys()

	// controls first, then the tick, so this frame shows their effect
	delta := g.timer.Next(time.Now())
	g.frame = g.eng.Tick(delta)
	g.particles = g.eng.Snapshot(g.particles)
	return nil
}

func (g *Game) handleButton() {
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.lastErr = g.openSceneDialog()
			// the dialog blocks; don't count that time as show time
			g.timer.Reset()
		}
		g.buttonPressed = false
	}
}

func (g *Game) handleProgressBar() {
	mouseX, mouseY := ebiten.CursorPosition()
	mx, my := float64(mouseX), float64(mouseY)
	g.barHovered = g.bar.Contains(mx, my)

	if g.barHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.barDragging = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.barDragging = false
	}
	if g.barDragging {
		total := g.eng.Timeline().Total
		g.eng.Seek(render.TimeAt(g.bar.Fraction(mx), total))
	}
}

func (g *Game) handleKeys() {
	if g.keys.justPressed(ebiten.KeySpace) {
		g.eng.TogglePlay()
	}
	if g.keys.justPressed(ebiten.KeyHome) || g.keys.justPressed(ebiten.KeyR) {
		g.eng.Restart()
	}
	if g.keys.justPressed(ebiten.KeyO) {
		g.lastErr = g.openSceneDialog()
		g.timer.Reset()
	}

	step := config.SeekStep * time.Millisecond
	if g.keys.justPressed(ebiten.KeyArrowRight) {
		g.eng.Seek(min(g.eng.CurrentTime()+step, g.eng.Timeline().Total))
	}
	if g.keys.justPressed(ebiten.KeyArrowLeft) {
		g.eng.Seek(max(g.eng.CurrentTime()-step, 0))
	}

	if g.keys.justPressed(ebiten.KeyArrowUp) {
		g.apply(g.eng.SetSpeed(math.Min(g.eng.Speed()+config.SpeedStep, config.MaxSpeed)))
	}
	if g.keys.justPressed(ebiten.KeyArrowDown) {
		g.apply(g.eng.SetSpeed(math.Max(g.eng.Speed()-config.SpeedStep, 0)))
	}

	if g.keys.justPressed(ebiten.KeyBracketRight) {
		g.apply(g.eng.SetSpacing(math.Min(g.eng.Spacing()+config.SpacingStep, config.MaxSpacing)))
	}
	if g.keys.justPressed(ebiten.KeyBracketLeft) {
		g.apply(g.eng.SetSpacing(math.Max(g.eng.Spacing()-config.SpacingStep, config.MinSpacing)))
	}

	if g.keys.justPressed(ebiten.KeyEqual) {
		g.apply(g.eng.SetDroneCount(min(g.eng.DroneCount()+config.DroneStep, config.MaxDrones)))
	}
	if g.keys.justPressed(ebiten.KeyMinus) {
		g.apply(g.eng.SetDroneCount(max(g.eng.DroneCount()-config.DroneStep, config.MinDrones)))
	}
}

func (g *Game) apply(err error) {
	if err != nil {
		g.lastErr = err
		g.log.Warn().Err(err).Msg("setting rejected")
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
