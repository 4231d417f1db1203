package engine

import (
	"testing"

	"moria-kernel/internal/domain"
)

func TestTick(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	g.PlaceMonster(5, 5, idRat, true)
	m := g.MonsterAt(5, 5)
	sleep := m.Sleep

	visited := 0
	g.Tick(func(i int, m *domain.Monster) {
		visited++
		WakeUp(i, m)
	})

	if g.Turn != 1 {
		t.Errorf("turn = %d, want 1", g.Turn)
	}
	if visited != g.Monsters.Len() {
		t.Errorf("visited %d monsters, want %d", visited, g.Monsters.Len())
	}
	if m.Sleep != sleep-1 {
		t.Errorf("sleep = %d, want %d", m.Sleep, sleep-1)
	}
	if want := uint8(domain.Distance(g.Player.Y, g.Player.X, 5, 5)); m.Dist != want {
		t.Errorf("dist = %d, want %d", m.Dist, want)
	}
	checkLinks(t, g)
}

func TestTick_WanderersStayOutOfSight(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)

	for i := 0; i < 20*MaxMallocChance; i++ {
		g.Tick(nil)
	}

	if g.Monsters.Len() == 0 {
		t.Fatal("no wandering monster turned up")
	}
	for _, m := range g.Monsters.Records() {
		if d := domain.Distance(g.Player.Y, g.Player.X, int(m.Y), int(m.X)); d <= MaxSight {
			t.Errorf("wanderer at distance %d, want > %d", d, MaxSight)
		}
		if m.Sleep != 0 {
			t.Errorf("wanderer asleep for %d turns", m.Sleep)
		}
	}
	checkLinks(t, g)
}
