// Package storage saves and restores the simulation state: the generator,
// the cave and both entity pools, in a compact binary format.
package storage

import (
	"errors"
	"fmt"

	"moria-kernel/internal/domain"
	"moria-kernel/internal/engine"
	"moria-kernel/internal/rng"
)

var (
	ErrBadMagic           = errors.New("storage: not a cave snapshot")
	ErrUnsupportedVersion = errors.New("storage: unsupported snapshot version")
	ErrCorrupt            = errors.New("storage: corrupt snapshot")
	ErrNotFound           = errors.New("storage: snapshot not found")
)

// Snapshot is everything needed to resume a game exactly where it stopped:
// the same rolls, the same cave, the same pool slots.
type Snapshot struct {
	RNG         rng.State
	Level       int
	Turn        int
	Player      engine.Player
	TotalWinner bool
	PanelRow    int
	PanelCol    int
	Cave        *domain.Cave
	Monsters    []domain.Monster
	Treasures   []domain.Treasure
}

// Capture copies the state of g. The snapshot shares nothing with the game.
func Capture(g *engine.Game) *Snapshot {
	cave := domain.NewCave(g.Cave.Height, g.Cave.Width)
	copy(cave.Cells, g.Cave.Cells)

	return &Snapshot{
		RNG:         g.RNG.Snapshot(),
		Level:       g.Level,
		Turn:        g.Turn,
		Player:      g.Player,
		TotalWinner: g.TotalWinner,
		PanelRow:    g.Panel.Row,
		PanelCol:    g.Panel.Col,
		Cave:        cave,
		Monsters:    append([]domain.Monster(nil), g.Monsters.Records()...),
		Treasures:   append([]domain.Treasure(nil), g.Treasures.Records()...),
	}
}

// Validate checks that the snapshot fits the engine's pools and that every
// grid reference points at a record.
func (s *Snapshot) Validate() error {
	if s.Cave == nil || s.Cave.Height < 1 || s.Cave.Width < 1 ||
		s.Cave.Height > domain.MaxHeight || s.Cave.Width > domain.MaxWidth {
		return fmt.Errorf("%w: bad cave size", ErrCorrupt)
	}
	if len(s.Cave.Cells) != s.Cave.Height*s.Cave.Width {
		return fmt.Errorf("%w: %d cells for a %dx%d cave", ErrCorrupt, len(s.Cave.Cells), s.Cave.Height, s.Cave.Width)
	}
	if len(s.Monsters) > engine.MaxMonsters-engine.MinMonsterIndex {
		return fmt.Errorf("%w: %d monsters", ErrCorrupt, len(s.Monsters))
	}
	if len(s.Treasures) > engine.MaxTreasures-engine.MinTreasureIndex {
		return fmt.Errorf("%w: %d objects", ErrCorrupt, len(s.Treasures))
	}
	if !s.RNG.Valid() {
		return fmt.Errorf("%w: generator state %d", ErrCorrupt, s.RNG.Current)
	}
	if s.Player.Y < 0 || s.Player.Y >= s.Cave.Height || s.Player.X < 0 || s.Player.X >= s.Cave.Width {
		return fmt.Errorf("%w: player at (%d,%d)", ErrCorrupt, s.Player.Y, s.Player.X)
	}

	monsterEnd := engine.MinMonsterIndex + len(s.Monsters)
	treasureEnd := engine.MinTreasureIndex + len(s.Treasures)
	for i, c := range s.Cave.Cells {
		if int(c.Cptr) >= monsterEnd {
			return fmt.Errorf("%w: cell %d points at monster %d", ErrCorrupt, i, c.Cptr)
		}
		if int(c.Tptr) >= treasureEnd {
			return fmt.Errorf("%w: cell %d points at object %d", ErrCorrupt, i, c.Tptr)
		}
	}
	return nil
}

// Apply installs the snapshot into g, replacing its cave, pools, generator
// and player. g keeps its bestiary and messenger.
func (s *Snapshot) Apply(g *engine.Game) error {
	if err := s.Validate(); err != nil {
		return err
	}

	cave := domain.NewCave(s.Cave.Height, s.Cave.Width)
	copy(cave.Cells, s.Cave.Cells)

	g.SetCave(cave)
	g.Monsters.Restore(s.Monsters)
	g.Treasures.Restore(s.Treasures)
	g.RNG.Restore(s.RNG)
	g.Player = s.Player
	g.Level = s.Level
	g.Turn = s.Turn
	g.TotalWinner = s.TotalWinner
	g.Panel.Set(s.PanelRow, s.PanelCol)
	return nil
}
