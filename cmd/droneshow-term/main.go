// Command droneshow-term plays a drone show in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/iburimskiy/drone-show/internal/config"
	"github.com/iburimskiy/drone-show/internal/engine"
	"github.com/iburimskiy/drone-show/internal/logging"
)

const frameInterval = time.Second / 30

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if engine.IsConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.Load("droneshow-term", os.Args[1:])
	if err != nil {
		return err
	}

	// stdout belongs to the screen; log only to a file
	log := zerolog.Nop()
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		log = logging.New(f, settings.LogLevel)
	}

	cfg, err := settings.EngineConfig()
	if err != nil {
		return err
	}
	eng, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	v := &view{screen: screen, eng: eng}
	loop := engine.NewLoop(eng, frameInterval, v.draw)
	go pollInput(screen, loop, log, cancel)

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// pollInput turns key presses into engine commands run on the loop goroutine.
func pollInput(screen tcell.Screen, loop *engine.Loop, log zerolog.Logger, quit context.CancelFunc) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if cmd, ok := command(ev, log); ok {
				loop.Post(cmd)
				continue
			}
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				quit()
				return
			}
		}
	}
}

// logRejected returns a sink for control errors, which are reported but
// never stop the show.
func logRejected(log zerolog.Logger) func(error) {
	return func(err error) {
		if err != nil {
			log.Warn().Err(err).Msg("setting rejected")
		}
	}
}

func command(ev *tcell.EventKey, log zerolog.Logger) (func(*engine.Engine), bool) {
	apply := logRejected(log)
	seek := time.Duration(config.SeekStep) * time.Millisecond
	switch ev.Key() {
	case tcell.KeyRight:
		return func(e *engine.Engine) { e.Seek(min(e.CurrentTime()+seek, e.Timeline().Total)) }, true
	case tcell.KeyLeft:
		return func(e *engine.Engine) { e.Seek(max(e.CurrentTime()-seek, 0)) }, true
	case tcell.KeyUp:
		return func(e *engine.Engine) { apply(e.SetSpeed(min(e.Speed()+config.SpeedStep, config.MaxSpeed))) }, true
	case tcell.KeyDown:
		return func(e *engine.Engine) { apply(e.SetSpeed(max(e.Speed()-config.SpeedStep, 0))) }, true
	case tcell.KeyHome:
		return (*engine.Engine).Restart, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return func(e *engine.Engine) { e.TogglePlay() }, true
		case 'r':
			return (*engine.Engine).Restart, true
		case ']':
			return func(e *engine.Engine) { apply(e.SetSpacing(min(e.Spacing()+config.SpacingStep, config.MaxSpacing))) }, true
		case '[':
			return func(e *engine.Engine) { apply(e.SetSpacing(max(e.Spacing()-config.SpacingStep, config.MinSpacing))) }, true
		case '=', '+':
			return func(e *engine.Engine) { apply(e.SetDroneCount(min(e.DroneCount()+config.DroneStep, config.MaxDrones))) }, true
		case '-':
			return func(e *engine.Engine) { apply(e.SetDroneCount(max(e.DroneCount()-config.DroneStep, config.MinDrones))) }, true
		}
	}
	return nil, false
}
