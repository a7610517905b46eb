package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iburimskiy/drone-show/internal/engine"
	"github.com/iburimskiy/drone-show/internal/timeline"
)

const (
	configName = "droneshow.cfg"
	envPrefix  = "DRONESHOW"
)

// Settings are the user-facing knobs of the show applications.
type Settings struct {
	ConfigDir    string  `mapstructure:"configDir"`
	LogLevel     string  `mapstructure:"logLevel"`
	LogFile      string  `mapstructure:"logFile"`
	Drones       int     `mapstructure:"drones"`
	Spacing      float64 `mapstructure:"spacing"`
	Speed        float64 `mapstructure:"speed"`
	Scene        string  `mapstructure:"scene"`
	Seed         uint64  `mapstructure:"seed"`
	TransitionMs int     `mapstructure:"transitionMs"`
	Autoplay     bool    `mapstructure:"autoplay"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("drones", 1000)
	v.SetDefault("spacing", 1.0)
	v.SetDefault("speed", 1.0)
	v.SetDefault("scene", "")
	v.SetDefault("seed", 0)
	v.SetDefault("transitionMs", 2000)
	v.SetDefault("autoplay", false)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("configDir", "", "directory containing "+configName+".json")
	fs.String("logLevel", "info", "log level (trace, debug, info, warn, error)")
	fs.String("logFile", "", "write logs to this file instead of stdout")
	fs.Int("drones", 1000, "number of drones")
	fs.Float64("spacing", 1.0, "formation spacing multiplier")
	fs.Float64("speed", 1.0, "playback speed multiplier")
	fs.String("scene", "", "scene JSON file to play instead of the built-in show")
	fs.Uint64("seed", 0, "random seed for drone phases and ring jitter (0: time based)")
	fs.Int("transitionMs", 2000, "formation morph duration in milliseconds")
	fs.Bool("autoplay", false, "start playing immediately")
	return fs
}

// Load resolves settings from defaults, an optional JSON config file,
// DRONESHOW_* environment variables and command-line args, in rising order.
func Load(name string, args []string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	fs := newFlagSet(name)
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if err := v.BindPFlags(fs); err != nil {
		return Settings{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if dir := v.GetString("configDir"); dir != "" {
		v.SetConfigName(configName)
		v.SetConfigType("json")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("error reading config file: %v", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	return s, nil
}

// EngineConfig overlays the settings onto the default engine
// configuration, loading the scene file if one is set.
func (s Settings) EngineConfig() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cfg.Drones = s.Drones
	cfg.Spacing = s.Spacing
	cfg.Speed = s.Speed
	cfg.Seed = s.Seed
	cfg.Autoplay = s.Autoplay
	cfg.Transition = time.Duration(s.TransitionMs) * time.Millisecond

	if s.Scene != "" {
		scene, err := timeline.LoadScene(s.Scene)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.Scene = scene
	}
	return cfg, nil
}
