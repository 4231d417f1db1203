// Package config reads the process configuration from the environment.
package config

import (
	"fmt"

	"moria-kernel/internal/domain"
	"moria-kernel/internal/engine"
	"moria-kernel/pkg/logger"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the cavern tools.
type Config struct {
	Seed     uint32 `env:"CAVERN_SEED" envDefault:"0"` // 0 takes the seed from the clock
	Level    int    `env:"CAVERN_LEVEL" envDefault:"1"`
	Height   int    `env:"CAVERN_HEIGHT" envDefault:"66"`
	Width    int    `env:"CAVERN_WIDTH" envDefault:"198"`
	Monsters int    `env:"CAVERN_MONSTERS" envDefault:"14"`
	Rooms    int    `env:"CAVERN_ROOMS" envDefault:"24"`
	Objects  int    `env:"CAVERN_OBJECTS" envDefault:"30"`
	Seams    bool   `env:"CAVERN_SEAMS" envDefault:"true"`

	HighlightSeams bool `env:"CAVERN_HIGHLIGHT_SEAMS" envDefault:"false"`

	SaveDir   string `env:"CAVERN_SAVE_DIR" envDefault:"saves"`
	DB        string `env:"CAVERN_DB"` // sqlite path; empty keeps saves in SaveDir
	DebugAddr string `env:"CAVERN_DEBUG_ADDR"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects sizes the kernel cannot hold.
func (c Config) Validate() error {
	if c.Height < domain.ScreenHeight || c.Height > domain.MaxHeight {
		return fmt.Errorf("cave height %d out of range [%d, %d]", c.Height, domain.ScreenHeight, domain.MaxHeight)
	}
	if c.Width < domain.ScreenWidth || c.Width > domain.MaxWidth {
		return fmt.Errorf("cave width %d out of range [%d, %d]", c.Width, domain.ScreenWidth, domain.MaxWidth)
	}
	if c.Level < 0 {
		return fmt.Errorf("negative level %d", c.Level)
	}
	if c.Monsters < 0 || c.Rooms < 1 || c.Objects < 0 {
		return fmt.Errorf("bad population: %d monsters, %d rooms, %d objects", c.Monsters, c.Rooms, c.Objects)
	}
	return nil
}

// Engine returns the game parameters.
func (c Config) Engine() engine.Config {
	return engine.Config{
		Seed:           c.Seed,
		Height:         c.Height,
		Width:          c.Width,
		Rooms:          c.Rooms,
		Objects:        c.Objects,
		Seams:          c.Seams,
		Monsters:       c.Monsters,
		HighlightSeams: c.HighlightSeams,
	}
}

// Logger returns the logger settings.
func (c Config) Logger() logger.Config {
	return logger.Config{Level: c.LogLevel, Format: c.LogFormat}
}
