package engine

import (
	"testing"

	"moria-kernel/internal/domain"
)

var (
	gold   = domain.Treasure{Kind: domain.KindGold, Glyph: '$', Number: 1, Cost: 10}
	stairs = domain.Treasure{Kind: domain.KindDownStair, Glyph: '>', Number: 1}
	rubble = domain.Treasure{Kind: domain.KindRubble, Glyph: ':', Number: 1}
)

func TestPlaceObject(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)

	i, ok := g.PlaceObject(4, 4, gold)
	if !ok {
		t.Fatal("PlaceObject failed")
	}
	if i != MinTreasureIndex {
		t.Errorf("index = %d, want %d", i, MinTreasureIndex)
	}
	if got := g.TreasureAt(4, 4); got == nil || got.Kind != domain.KindGold {
		t.Fatalf("TreasureAt = %+v", got)
	}

	if _, ok := g.PlaceObject(4, 4, stairs); ok {
		t.Fatal("PlaceObject stacked two objects on one cell")
	}
	if g.Treasures.Len() != 1 {
		t.Errorf("len = %d, want 1", g.Treasures.Len())
	}
}

func TestDeleteObject(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	cell := g.Cave.At(4, 4)
	cell.Fval = domain.BlockedFloor
	g.PlaceObject(4, 4, rubble)
	cell.Mark = true

	if !g.DeleteObject(4, 4) {
		t.Fatal("DeleteObject found nothing")
	}
	if cell.Fval != domain.CorridorFloor {
		t.Errorf("fval = %d, want corridor", cell.Fval)
	}
	if cell.Tptr != 0 || cell.Mark {
		t.Errorf("cell not cleared: %+v", *cell)
	}
	if g.DeleteObject(4, 4) {
		t.Error("second delete succeeded")
	}
}

func TestDeleteObject_KeepsRoomFloor(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	g.PlaceObject(4, 4, gold)
	g.DeleteObject(4, 4)

	if f := g.Cave.At(4, 4).Fval; f != domain.LightFloor {
		t.Errorf("fval = %d, want room floor", f)
	}
}

func TestDeleteObject_RelinksLast(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	g.PlaceObject(2, 2, gold)
	g.PlaceObject(2, 4, rubble)
	g.PlaceObject(2, 6, stairs)

	g.DeleteObject(2, 2)

	if got := g.Cave.At(2, 6).Tptr; got != MinTreasureIndex {
		t.Errorf("moved object's cell points at %d, want %d", got, MinTreasureIndex)
	}
	if g.TreasureAt(2, 6).Kind != domain.KindDownStair {
		t.Error("moved object lost")
	}
	checkLinks(t, g)
}

func TestPusht(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	g.PlaceObject(2, 2, gold)
	g.PlaceObject(2, 4, rubble)

	// Pusht frees the slot only; the caller owns the cell.
	g.Cave.At(2, 2).Tptr = 0
	g.Pusht(1)

	if g.Treasures.Len() != 1 {
		t.Fatalf("len = %d, want 1", g.Treasures.Len())
	}
	if g.Cave.At(2, 4).Tptr != 1 {
		t.Error("moved object not relinked")
	}
	checkLinks(t, g)
}

// fillObjects fills the object pool, stairs on the first rows near the
// player and gold in the far columns.
func fillObjects(t *testing.T, g *Game, farGold int) {
	t.Helper()
	placed := 0
	for y := 1; y < g.Cave.Height-1 && !g.Treasures.Full(); y++ {
		for x := g.Cave.Width - 2; x > 0 && !g.Treasures.Full(); x-- {
			obj := stairs
			if placed < farGold {
				obj = gold
			}
			if _, ok := g.PlaceObject(y, x, obj); !ok {
				t.Fatalf("fill failed at (%d,%d)", y, x)
			}
			placed++
		}
	}
}

func TestCompactObjects_KeepsStairs(t *testing.T) {
	g, rec := newTestGame(t, testSpecies)
	g.MovePlayer(1, 1)
	fillObjects(t, g, 40)
	g.NeedsRedraw = false

	if _, ok := g.PlaceObject(20, 1, rubble); !ok {
		t.Fatal("placement failed although gold could be compacted")
	}

	stairCount := 0
	for _, o := range g.Treasures.Records() {
		if o.Kind == domain.KindDownStair {
			stairCount++
		}
	}
	if want := MaxTreasures - MinTreasureIndex - 40; stairCount != want {
		t.Errorf("stairs = %d, want %d", stairCount, want)
	}
	if len(rec.messages) == 0 || rec.messages[0] != "Compacting objects..." {
		t.Errorf("messages = %q", rec.messages)
	}
	if !g.NeedsRedraw {
		t.Error("compaction did not request a redraw")
	}
	checkLinks(t, g)
}

func TestCompactObjects_NothingRemovable(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	g.MovePlayer(1, 1)
	fillObjects(t, g, 0)

	if _, ok := g.PlaceObject(20, 1, gold); ok {
		t.Fatal("placement succeeded with a pool full of stairs")
	}
	if g.Cave.At(20, 1).Tptr != 0 {
		t.Error("failed placement touched the cell")
	}
	checkLinks(t, g)
}

func TestMagik(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)
	for i := 0; i < 200; i++ {
		if !g.Magik(100) {
			t.Fatal("Magik(100) failed")
		}
		if g.Magik(0) {
			t.Fatal("Magik(0) succeeded")
		}
	}
}

func TestMBonus(t *testing.T) {
	g, _ := newTestGame(t, testSpecies)

	tests := []struct {
		name   string
		base   int
		maxStd int
		level  int
	}{
		{"shallow", 0, 40, 1},
		{"deep", 0, 40, 50},
		{"cursed base", 1, 55, 10},
		{"capped by level", 5, 10, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 300; i++ {
				if got := g.MBonus(tt.base, tt.maxStd, tt.level); got < tt.base {
					t.Fatalf("MBonus = %d, below base %d", got, tt.base)
				}
			}
		})
	}

	before := g.RNG.Snapshot()
	if got := g.MBonus(3, 0, 10); got != 3 {
		t.Errorf("MBonus with no spread = %d, want 3", got)
	}
	if after := g.RNG.Snapshot(); after != before {
		t.Errorf("MBonus with no spread drew from the stream: %+v -> %+v", before, after)
	}

	g.MBonus(3, 10, 10)
	if g.RNG.Snapshot() == before {
		t.Error("MBonus with a spread made no draw")
	}
}
