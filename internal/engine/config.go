package engine

import "moria-kernel/internal/domain"

// Config holds the start-up parameters of a game.
type Config struct {
	// Seed is the base seed. Every level, monster and roll follows from it;
	// 0 takes it from the clock.
	Seed   uint32
	Height int
	Width  int

	// Rooms and Objects bound how many rooms and loose objects a dungeon
	// level gets; Seams streaks its rock with mineral veins.
	Rooms   int
	Objects int
	Seams   bool

	// Monsters is the base number of monsters allocated on a fresh dungeon
	// level.
	Monsters int
	// HighlightSeams draws magma and quartz with '%' instead of '#'.
	HighlightSeams bool
}

// NewConfig returns the default configuration (clock seed, full-size cave).
func NewConfig() Config {
	return Config{
		Seed:     0,
		Height:   domain.MaxHeight,
		Width:    domain.MaxWidth,
		Rooms:    24,
		Objects:  30,
		Seams:    true,
		Monsters: 14,
	}
}
