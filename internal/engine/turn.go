package engine

import "moria-kernel/internal/domain"

// MaxMallocChance is the 1-in-n chance per turn that a wandering monster
// turns up out of sight of the player.
const MaxMallocChance = 160

// Tick advances the game by one turn: maybe a wandering monster, fresh
// distances, then act for every live monster. act may be nil.
func (g *Game) Tick(act func(index int, m *domain.Monster)) {
	g.Turn++

	if g.RNG.Randint(MaxMallocChance) == 1 {
		g.AllocMonsters(1, MaxSight, false)
	}
	g.UpdateMonsterDistances()

	if act != nil {
		g.ProcessMonsters(act)
	}
}

// WakeUp is a minimal monster turn: sleepers count down.
func WakeUp(_ int, m *domain.Monster) {
	if m.Sleep > 0 {
		m.Sleep--
	}
}
