package dungeon

import (
	"moria-kernel/internal/domain"
	"moria-kernel/internal/rng"
)

// Config holds the generation parameters of a dungeon level.
type Config struct {
	Height  int
	Width   int
	Rooms   int
	Objects int
	Seams   bool
}

// DefaultConfig returns a full-size level.
func DefaultConfig() Config {
	return Config{
		Height:  domain.MaxHeight,
		Width:   domain.MaxWidth,
		Rooms:   24,
		Objects: 30,
		Seams:   true,
	}
}

// Generate builds a dungeon level at the given depth.
func Generate(depth int, cfg Config, r *rng.RNG) *Level {
	b := NewLevel(depth, r).
		WithSize(cfg.Height, cfg.Width).
		WithRooms(cfg.Rooms)
	if cfg.Seams {
		b.WithSeams()
	}
	return b.WithDoors().
		PlaceStairs().
		ScatterObjects(cfg.Objects).
		Build()
}
