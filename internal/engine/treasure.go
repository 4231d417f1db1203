package engine

import (
	"moria-kernel/internal/domain"
	"moria-kernel/internal/pool"
)

// Enchantment bonus scaling.
const (
	objStdAdjust = 125 // percent of the level added to the deviation
	objStdMin    = 7   // deviation at level 0
)

// Popt returns a free object slot, compacting the floor first when the pool
// is full.
func (g *Game) Popt() (int, bool) {
	return g.Treasures.Alloc(g.CompactObjects)
}

// PlaceObject puts t on the floor at (y, x) and returns its slot. It fails
// when the cell already holds an object or no slot can be freed.
func (g *Game) PlaceObject(y, x int, t domain.Treasure) (int, bool) {
	cell := g.Cave.At(y, x)
	if cell.Tptr != 0 {
		return 0, false
	}

	index, ok := g.Popt()
	if !ok {
		return 0, false
	}
	*g.Treasures.At(index) = t
	cell.Tptr = uint8(index)
	return index, true
}

// Pusht releases slot i, moving the last object into it and repointing the
// cell that held the moved object. It does not touch the released object's
// own cell: use DeleteObject for anything lying in the cave.
func (g *Game) Pusht(i int) {
	g.Treasures.Remove(i)
}

// DeleteObject removes the object lying on (y, x). A corridor cell that the
// object blocked becomes plain corridor again. Returns false when the cell
// held nothing.
func (g *Game) DeleteObject(y, x int) bool {
	cell := g.Cave.At(y, x)
	i := int(cell.Tptr)
	if i == 0 {
		return false
	}

	cell.Tptr = 0
	cell.Mark = false
	if cell.Fval == domain.BlockedFloor {
		cell.Fval = domain.CorridorFloor
	}
	g.Pusht(i)
	return true
}

// CompactObjects frees object slots by deleting objects far from the player.
// Each pass visits every object beyond the distance threshold and removes it
// with a chance that depends on its kind; the threshold shrinks by
// compactStep until a pass removes something. Stairs and store entrances
// are never removed. Fails once the threshold drops below zero.
func (g *Game) CompactObjects() bool {
	g.msgPrint("Compacting objects...")

	lowest := compactStart
	ok := pool.Compact(compactStart, compactStep, func(threshold int) int {
		lowest = threshold
		removed := 0
		for y := 0; y < g.Cave.Height; y++ {
			for x := 0; x < g.Cave.Width; x++ {
				cell := g.Cave.At(y, x)
				if cell.Tptr == 0 || domain.Distance(y, x, g.Player.Y, g.Player.X) <= threshold {
					continue
				}
				chance := domain.RemovalChance(g.Treasures.At(int(cell.Tptr)).Kind)
				if g.RNG.Randint(100) <= chance {
					g.DeleteObject(y, x)
					removed++
				}
			}
		}
		return removed
	})

	if lowest < compactStart {
		g.NeedsRedraw = true
	}

	entry := g.log.WithField("threshold", lowest)
	if !ok {
		entry.Warn("Object compaction freed nothing.")
	} else {
		entry.Info("Objects compacted.")
	}
	return ok
}

// Magik reports success on a chance-percent roll.
func (g *Game) Magik(chance int) bool {
	return g.RNG.Randint(100) <= chance
}

// MBonus rolls an enchantment bonus of at least base. The spread grows with
// level and is capped at maxStd; the normal roll is folded to its absolute
// value and divided by ten.
func (g *Game) MBonus(base, maxStd, level int) int {
	stdDev := objStdAdjust*level/100 + objStdMin
	if stdDev > maxStd || level > maxStd {
		stdDev = maxStd
	}

	// With no spread there is nothing to roll, so no Randnor draws are
	// made. The stream therefore differs from one that always draws here.
	if stdDev < 1 {
		return base
	}

	tmp := g.RNG.Randnor(0, stdDev)
	bonus := abs(tmp)/10 + base
	if bonus < base {
		return base
	}
	return bonus
}
