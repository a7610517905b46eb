package game

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/drone-show/internal/timeline"
)

func (g *Game) openSceneDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Drone Show"),
		zenity.FileFilters{{
			Name:     "Scene",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	g.log.Info().Str("path", filename).Msg("scene selected")
	return g.loadScene(filename)
}

// loadScene swaps in the scene at path. A bad file is reported to the
// user and the current show keeps playing.
func (g *Game) loadScene(path string) error {
	scene, err := timeline.LoadScene(path)
	if err == nil {
		err = g.eng.LoadScene(scene)
	}
	if err != nil {
		g.notify(fmt.Sprintf("Could not load %s:\n%v", path, err))
		return err
	}
	return nil
}

func (g *Game) notify(msg string) {
	if err := zenity.Error(msg, zenity.Title("Load failed"), zenity.ErrorIcon); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		g.log.Warn().Err(err).Msg("error dialog")
	}
}
