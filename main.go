package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/drone-show/internal/config"
	"github.com/iburimskiy/drone-show/internal/engine"
	"github.com/iburimskiy/drone-show/internal/game"
	"github.com/iburimskiy/drone-show/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if engine.IsConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	settings, err := config.Load("droneshow", args)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	log := logging.New(out, settings.LogLevel)

	cfg, err := settings.EngineConfig()
	if err != nil {
		log.Error().Err(err).Msg("configuration")
		return err
	}
	eng, err := engine.New(cfg, engine.WithLogger(log))
	if err != nil {
		log.Error().Err(err).Msg("engine")
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Drone Show - Space: Play/Pause, O: Open scene, Esc/Q: Quit")

	g := game.New(eng, log)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error().Err(err).Msg("game loop")
		return err
	}
	return nil
}
