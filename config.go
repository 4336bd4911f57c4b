package demoncoin

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings read from the environment. Gameplay
// constants live in Tuning.
type Config struct {
	Title      string  `env:"TITLE" envDefault:"Notcoin vs Little Demons"`
	Width      int     `env:"WIDTH" envDefault:"800"`
	Height     int     `env:"HEIGHT" envDefault:"600"`
	AssetDir   string  `env:"ASSETS" envDefault:"assets"`
	TuningFile string  `env:"TUNING"`
	Volume     float64 `env:"VOLUME" envDefault:"1"`
	Debug      bool    `env:"DEBUG"`
	LogFormat  string  `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel   string  `env:"LOG_LEVEL" envDefault:"info"`
}

// EnvPrefix is prepended to every Config variable name.
const EnvPrefix = "DEMONCOIN_"

// ParseConfig loads Config from the process environment.
func ParseConfig() (Config, error) {
	return parseConfig(env.Options{Prefix: EnvPrefix})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("parse env: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.Volume < 0 {
		cfg.Volume = 0
	}
	if cfg.Volume > 1 {
		cfg.Volume = 1
	}
	return cfg, nil
}

// NewLogger builds the slog logger described by the config.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	if c.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if c.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
