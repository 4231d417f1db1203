package engine

import (
	"errors"

	"moria-kernel/internal/domain"
	"moria-kernel/internal/pool"

	"github.com/sirupsen/logrus"
)

const (
	// monsterNasty is the 1-in-N chance of an out-of-depth monster.
	monsterNasty = 50
	// summonLevelAdjust deepens the level used to pick summoned monsters.
	summonLevelAdjust = 2
	// summonTries is how many adjacent cells a summon tries.
	summonTries = 10
	// undeadScan is how far the undead search walks the table from a
	// random start before drawing a new one.
	undeadScan = 20
)

var (
	// ErrNoWinMonsterSlot means the win monster could not get a pool slot.
	// The pool is sized so this cannot happen; the game cannot go on.
	ErrNoWinMonsterSlot = errors.New("engine: no pool slot for the win monster")
	// ErrNoWinMonsterSite means no open cell out of the player's sight could
	// be found for the win monster.
	ErrNoWinMonsterSite = errors.New("engine: no cell for the win monster")
)

// SelectSpecies picks a species id for a monster generated on level.
//
// On the town level the pick is uniform over the town tier. Deeper down, one
// time in monsterNasty the level is pushed deeper by a normal offset to give
// an out-of-depth monster. Otherwise two species at or below the level are
// drawn and the higher id kept, which favours the tougher end of the band;
// the tier of that species becomes the level. The result is then drawn
// uniformly from that single tier.
func (g *Game) SelectSpecies(level int) int {
	b := g.Bestiary
	if level == 0 {
		return g.RNG.Randint(b.UpTo(0)) - 1
	}

	if level > b.MaxLevel() {
		level = b.MaxLevel()
	}

	if g.RNG.Randint(monsterNasty) == 1 {
		level += abs(g.RNG.Randnor(0, 4)) + 1
		if level > b.MaxLevel() {
			level = b.MaxLevel()
		}
	} else {
		num := b.UpTo(level) - b.UpTo(0)
		i := g.RNG.Randint(num) - 1
		j := g.RNG.Randint(num) - 1
		if j > i {
			i = j
		}
		level = int(b.Get(i + b.UpTo(0)).Level)
	}

	return g.RNG.Randint(b.UpTo(level)-b.UpTo(level-1)) - 1 + b.UpTo(level-1)
}

// PlaceMonster puts a new monster of species id on (y, x). It fails, leaving
// the cell untouched, when the cell is already occupied or no pool slot can
// be freed.
func (g *Game) PlaceMonster(y, x, id int, asleep bool) bool {
	cell := g.Cave.At(y, x)
	if cell.Cptr != 0 {
		return false
	}

	index, ok := g.Monsters.Alloc(g.CompactMonsters)
	if !ok {
		g.log.WithFields(logrus.Fields{"y": y, "x": x, "species": id}).Debug("Monster pool exhausted, spawn skipped.")
		return false
	}

	species := g.Bestiary.Get(id)
	m := g.Monsters.At(index)
	*m = domain.Monster{
		Y:       uint8(y),
		X:       uint8(x),
		Species: uint16(id),
		HP:      int16(g.rollHitPoints(species)),
		Speed:   int16(int(species.Speed) - domain.SpeedBias + g.Player.Speed),
		Dist:    uint8(domain.Distance(g.Player.Y, g.Player.X, y, x)),
	}
	cell.Cptr = uint8(index)

	if asleep && species.Sleep != 0 {
		m.Sleep = int16(int(species.Sleep)*2 + g.RNG.Randint(int(species.Sleep)*10))
	}
	return true
}

func (g *Game) rollHitPoints(s *domain.Species) int {
	if s.MaxHitPoints() {
		return s.MaxHP()
	}
	return g.RNG.DamrollDice(s.HitDice)
}

// PlaceWinMonster places one of the win species somewhere open, empty and
// out of the player's sight. It does nothing once the game has been won.
//
// Failing to place it is not recoverable: after logging, it panics with
// ErrNoWinMonsterSlot or ErrNoWinMonsterSite.
func (g *Game) PlaceWinMonster() {
	if g.TotalWinner {
		return
	}

	index, ok := g.Monsters.Alloc(g.CompactMonsters)
	if !ok {
		g.log.Log(logrus.FatalLevel, "Could not allocate the win monster.")
		panic(ErrNoWinMonsterSlot)
	}

	y, x, found := g.randomCell(func(y, x int, cell *domain.Cell) bool {
		return !cell.Closed() && cell.Cptr == 0 && cell.Tptr == 0 &&
			domain.Distance(y, x, g.Player.Y, g.Player.X) > MaxSight
	})
	if !found {
		g.Monsters.Remove(index)
		g.log.Log(logrus.FatalLevel, "No cell out of sight for the win monster.")
		panic(ErrNoWinMonsterSite)
	}

	id := g.RNG.Randint(g.Bestiary.WinCount()) - 1 + g.Bestiary.WinStart()
	species := g.Bestiary.Get(id)

	m := g.Monsters.At(index)
	*m = domain.Monster{
		Y:       uint8(y),
		X:       uint8(x),
		Species: uint16(id),
		HP:      int16(g.rollHitPoints(species)),
		Speed:   int16(int(species.Speed) - domain.SpeedBias + g.Player.Speed),
		Dist:    uint8(domain.Distance(g.Player.Y, g.Player.X, y, x)),
	}
	g.Cave.At(y, x).Cptr = uint8(index)

	g.log.WithFields(logrus.Fields{"species": species.Name, "y": y, "x": x}).Info("Win monster placed.")
}

// AllocMonsters scatters count level-appropriate monsters over open, empty
// cells farther than minDistance from the player. Dragons are always placed
// asleep. Returns the number actually placed.
func (g *Game) AllocMonsters(count, minDistance int, asleep bool) int {
	placed := 0
	for i := 0; i < count; i++ {
		y, x, found := g.randomCell(func(y, x int, cell *domain.Cell) bool {
			return !cell.Closed() && cell.Cptr == 0 &&
				domain.Distance(y, x, g.Player.Y, g.Player.X) > minDistance
		})
		if !found {
			g.log.WithField("min_distance", minDistance).Warn("No free cell for a monster.")
			break
		}

		id := g.SelectSpecies(g.Level)
		sleep := asleep || g.Bestiary.Get(id).IsDragon()

		if g.PlaceMonster(y, x, id, sleep) {
			placed++
		}
	}
	return placed
}

// SummonMonster places a monster from a slightly deeper level next to
// (y, x). On success it returns the cell the monster landed on.
func (g *Game) SummonMonster(y, x int, asleep bool) (int, int, bool) {
	id := g.SelectSpecies(g.Level + summonLevelAdjust)
	return g.placeAdjacent(id, y, x, asleep)
}

// SummonUndead places an awake undead monster next to (y, x). On success it
// returns the cell the monster landed on.
func (g *Game) SummonUndead(y, x int) (int, int, bool) {
	if !g.Bestiary.HasUndead() {
		return y, x, false
	}

	limit := g.Bestiary.WinStart()
	for {
		id := g.RNG.Randint(limit) - 1
		for tries := 0; tries < undeadScan && id < limit; tries++ {
			if g.Bestiary.Get(id).IsUndead() {
				return g.placeAdjacent(id, y, x, false)
			}
			id++
		}
	}
}

// placeAdjacent tries cells within one step of (y, x), the centre included.
func (g *Game) placeAdjacent(id, y, x int, asleep bool) (int, int, bool) {
	for i := 0; i < summonTries; i++ {
		yy := y - 2 + g.RNG.Randint(3)
		xx := x - 2 + g.RNG.Randint(3)
		if !g.Cave.InBounds(yy, xx) {
			continue
		}

		cell := g.Cave.At(yy, xx)
		if cell.Fval <= domain.MaxOpenSpace && cell.Cptr == 0 {
			if !g.PlaceMonster(yy, xx, id, asleep) {
				return y, x, false
			}
			return yy, xx, true
		}
	}
	return y, x, false
}

// CompactMonsters frees monster slots by removing monsters far from the
// player. Each pass removes, with one chance in three, every monster beyond
// the current distance threshold; the threshold shrinks until something is
// removed or it drops below zero. Win species are never removed.
//
// While ProcessMonsters is running, monsters at or below the one being
// processed are only tombstoned, which frees nothing yet.
func (g *Game) CompactMonsters() bool {
	g.msgPrint("Compacting monsters...")

	ok := pool.Compact(compactStart, compactStep, func(threshold int) int {
		removed := 0
		for i := g.Monsters.Next() - 1; i >= g.Monsters.Min(); i-- {
			m := g.Monsters.At(i)
			if m.Dead() {
				continue
			}
			if threshold < int(m.Dist) && g.RNG.Randint(3) == 1 {
				if g.Bestiary.Get(int(m.Species)).NeverCompact() {
					continue
				}
				if g.active < i {
					g.Monsters.Remove(i)
					removed++
				} else {
					g.Monsters.Tombstone(i)
				}
			}
		}
		if removed > 0 {
			g.log.WithFields(logrus.Fields{
				"threshold": threshold,
				"removed":   removed,
			}).Info("Monsters compacted.")
		}
		return removed
	})

	if !ok {
		g.log.Warn("Monster compaction freed nothing.")
	}
	return ok
}

// DeleteMonster removes the monster in slot i and clears its cell. Outside
// ProcessMonsters, and for slots above the one being processed, the last
// monster moves into the hole. Otherwise the slot is tombstoned and
// reclaimed by ProcessMonsters when it gets there.
func (g *Game) DeleteMonster(i int) {
	if g.active < i {
		g.Monsters.Remove(i)
		return
	}
	g.TombstoneMonster(i)
}

// TombstoneMonster marks slot i dead without moving any other monster, so
// that indices held by an iteration stay valid. The slot stays in use until
// reclaimed.
func (g *Game) TombstoneMonster(i int) {
	g.Monsters.Tombstone(i)
}

// ProcessMonsters calls fn for every live monster, from the highest slot
// down. fn may delete monsters, itself included, and may place new ones
// (they are not visited this round). Tombstones are reclaimed on the way.
func (g *Game) ProcessMonsters(fn func(index int, m *domain.Monster)) {
	defer func() { g.active = -1 }()

	for i := g.Monsters.Next() - 1; i >= g.Monsters.Min(); i-- {
		g.active = i
		m := g.Monsters.At(i)
		if !m.Dead() {
			fn(i, m)
		}
		if g.Monsters.At(i).Dead() {
			g.Monsters.Reclaim(i)
		}
	}
}

// UpdateMonsterDistances refreshes every monster's cached distance to the
// player.
func (g *Game) UpdateMonsterDistances() {
	records := g.Monsters.Records()
	for i := range records {
		m := &records[i]
		if m.Dead() {
			continue
		}
		m.Dist = uint8(domain.Distance(g.Player.Y, g.Player.X, int(m.Y), int(m.X)))
	}
}

// randomCell samples interior cells until ok accepts one.
func (g *Game) randomCell(ok func(y, x int, cell *domain.Cell) bool) (int, int, bool) {
	for try := 0; try < maxPlacementTries; try++ {
		y := g.RNG.Randint(g.Cave.Height - 2)
		x := g.RNG.Randint(g.Cave.Width - 2)
		if ok(y, x, g.Cave.At(y, x)) {
			return y, x, true
		}
	}
	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
