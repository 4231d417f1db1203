package domain

import (
	"errors"
	"fmt"
)

// MoveFlags describe how a species moves and what it carries.
type MoveFlags uint32

const (
	MoveAttackOnly MoveFlags = 1 << 0
	MoveNormal     MoveFlags = 1 << 1
	MoveRandom20   MoveFlags = 1 << 3
	MoveRandom40   MoveFlags = 1 << 4
	MoveRandom75   MoveFlags = 1 << 5
	MoveInvisible  MoveFlags = 1 << 16
	MoveOpenDoor   MoveFlags = 1 << 17
	MovePhase      MoveFlags = 1 << 18
	MoveEatsOther  MoveFlags = 1 << 19
	MovePicksUp    MoveFlags = 1 << 20
	MoveMultiply   MoveFlags = 1 << 21
	MoveCarryObj   MoveFlags = 1 << 24
	MoveCarryGold  MoveFlags = 1 << 25
	MoveWin        MoveFlags = 1 << 31 // killing it wins the game; never compacted
)

// DefenseFlags describe what a species is and resists.
type DefenseFlags uint16

const (
	DefenseDragon  DefenseFlags = 1 << 0
	DefenseAnimal  DefenseFlags = 1 << 1
	DefenseEvil    DefenseFlags = 1 << 2
	DefenseUndead  DefenseFlags = 1 << 3
	DefenseFrost   DefenseFlags = 1 << 4
	DefenseFire    DefenseFlags = 1 << 5
	DefensePoison  DefenseFlags = 1 << 6
	DefenseAcid    DefenseFlags = 1 << 7
	DefenseLight   DefenseFlags = 1 << 8
	DefenseStone   DefenseFlags = 1 << 9
	DefenseNoSleep DefenseFlags = 1 << 12
	DefenseInfra   DefenseFlags = 1 << 13
	DefenseMaxHP   DefenseFlags = 1 << 14 // always spawns with full hit dice
)

// SpeedBias is added to species speeds so they fit an unsigned byte.
const SpeedBias = 10

// Species is an immutable monster template.
type Species struct {
	Name       string
	Move       MoveFlags
	Defense    DefenseFlags
	Exp        uint16
	Sleep      uint8 // base sleep; 0 means never asleep
	Perception uint8 // radius in which it notices the player
	AC         uint8
	Speed      uint8 // biased by SpeedBias
	Glyph      byte
	HitDice    [2]uint8
	Level      uint8
}

// IsUndead reports whether the species answers to "summon undead".
func (s *Species) IsUndead() bool { return s.Defense&DefenseUndead != 0 }

// IsDragon reports whether the species draws as a dragon.
func (s *Species) IsDragon() bool { return s.Glyph == 'd' || s.Glyph == 'D' }

// NeverCompact reports whether compaction must leave the species alone.
func (s *Species) NeverCompact() bool { return s.Move&MoveWin != 0 }

// MaxHitPoints reports whether the species spawns with maximum hit points.
func (s *Species) MaxHitPoints() bool { return s.Defense&DefenseMaxHP != 0 }

// MaxHP is the highest value the hit dice can roll.
func (s *Species) MaxHP() int { return int(s.HitDice[0]) * int(s.HitDice[1]) }

// ErrBestiary is wrapped by every validation failure from NewBestiary.
var ErrBestiary = errors.New("invalid bestiary")

// Bestiary is a validated species table. Ordinary species are sorted by
// level; the win species follow them at the end of the table.
type Bestiary struct {
	species  []Species
	levels   []int // levels[l]: ordinary species at or below level l
	winCount int
	undead   bool
}

// NewBestiary indexes table, whose last winCount entries are the win
// species. Every level from 0 to the highest ordinary level must hold at
// least one species, since selection draws uniformly inside a level.
func NewBestiary(table []Species, winCount int) (*Bestiary, error) {
	if winCount < 1 || winCount >= len(table) {
		return nil, fmt.Errorf("%w: need at least one win species and one ordinary species", ErrBestiary)
	}
	ordinary := table[:len(table)-winCount]

	maxLevel := int(ordinary[len(ordinary)-1].Level)
	levels := make([]int, maxLevel+1)
	prev := 0
	for i, s := range ordinary {
		if int(s.Level) < prev {
			return nil, fmt.Errorf("%w: %q (index %d) breaks level ordering", ErrBestiary, s.Name, i)
		}
		prev = int(s.Level)
		levels[s.Level]++
	}
	for l := 0; l <= maxLevel; l++ {
		if levels[l] == 0 {
			return nil, fmt.Errorf("%w: no species at level %d", ErrBestiary, l)
		}
		if l > 0 {
			levels[l] += levels[l-1]
		}
	}

	b := &Bestiary{
		species:  table,
		levels:   levels,
		winCount: winCount,
	}
	for i := range ordinary {
		if ordinary[i].IsUndead() {
			b.undead = true
			break
		}
	}
	return b, nil
}

// Len is the number of species, win species included.
func (b *Bestiary) Len() int { return len(b.species) }

// Get returns the template for id. The result must not be modified.
func (b *Bestiary) Get(id int) *Species { return &b.species[id] }

// MaxLevel is the deepest ordinary level.
func (b *Bestiary) MaxLevel() int { return len(b.levels) - 1 }

// UpTo is the number of ordinary species at or below level.
func (b *Bestiary) UpTo(level int) int { return b.levels[level] }

// WinStart is the id of the first win species.
func (b *Bestiary) WinStart() int { return b.levels[len(b.levels)-1] }

// WinCount is the number of win species.
func (b *Bestiary) WinCount() int { return b.winCount }

// HasUndead reports whether any ordinary species is undead.
func (b *Bestiary) HasUndead() bool { return b.undead }
