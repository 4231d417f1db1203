package engine

import (
	"moria-kernel/internal/domain"
	"moria-kernel/pkg/dungeon"

	"github.com/sirupsen/logrus"
)

// Level population.
const (
	townMonstersDay   = 4
	townMonstersNight = 8
	townMinDistance   = 3

	// Dungeon monsters may start anywhere but on the player's cell.
	dungeonMinDistance = 0

	// WinMonsterDepth is the shallowest level the win monster is placed on.
	WinMonsterDepth = 50

	// dayLength is the number of game turns in half a day.
	dayLength = 5000
)

// Enchantment odds for weapons and armour.
const (
	objBaseMagic  = 15
	objBaseMax    = 70
	objCursedDiv  = 2
	weaponMaxStd  = 40
	cursedMaxStd  = 55
	armourMaxStd  = 30
	armourCursStd = 40
)

// Daylight reports whether it is day in the town.
func (g *Game) Daylight() bool {
	return (g.Turn/dayLength)%2 == 0
}

// EnterLevel generates level depth, the town for depth 0, installs it and
// populates it: the level's fixtures and loot, a batch of monsters and, deep
// enough, the win monster.
func (g *Game) EnterLevel(depth int) {
	var lvl *dungeon.Level
	if depth == 0 {
		lvl = dungeon.GenerateTown(g.RNG, g.Daylight())
	} else {
		lvl = dungeon.Generate(depth, dungeon.Config{
			Height:  g.cfg.Height,
			Width:   g.cfg.Width,
			Rooms:   g.cfg.Rooms,
			Objects: g.cfg.Objects,
			Seams:   g.cfg.Seams,
		}, g.RNG)
	}

	g.Level = depth
	g.SetCave(lvl.Cave)
	g.MovePlayer(lvl.Start.Y, lvl.Start.X)

	placed := 0
	for _, o := range lvl.Objects {
		t := o.Object.Treasure()
		g.enchant(&t, o.Object, depth)
		if _, ok := g.PlaceObject(o.Y, o.X, t); ok {
			placed++
		}
	}

	var monsters int
	if depth == 0 {
		count := townMonstersNight
		if g.Daylight() {
			count = townMonstersDay
		}
		monsters = g.AllocMonsters(count, townMinDistance, true)
	} else {
		monsters = g.AllocMonsters(g.RNG.Randint(8)+g.cfg.Monsters+allocLevel(depth), dungeonMinDistance, true)
	}

	if depth >= WinMonsterDepth {
		g.PlaceWinMonster()
	}

	g.log.WithFields(logrus.Fields{
		"depth":    depth,
		"objects":  placed,
		"monsters": monsters,
	}).Info("Level entered.")
}

// allocLevel adds monsters to deeper levels.
func allocLevel(depth int) int {
	l := depth / 3
	if l < 2 {
		return 2
	}
	if l > 10 {
		return 10
	}
	return l
}

// enchant rolls magical bonuses for freshly generated loot. Gold is scaled
// instead. Anything that fails the good roll may still come out cursed.
func (g *Game) enchant(t *domain.Treasure, tmpl dungeon.ObjectTemplate, level int) {
	if t.Kind == domain.KindGold {
		t.Cost += int32(8*g.RNG.Randint(int(t.Cost)+level) + g.RNG.Randint(8))
		return
	}
	if !tmpl.Enchantable() {
		return
	}

	chance := objBaseMagic + level
	if chance > objBaseMax {
		chance = objBaseMax
	}

	switch t.Kind {
	case domain.KindSword, domain.KindHafted, domain.KindPolearm, domain.KindBow:
		if g.Magik(chance) {
			t.ToHit += int16(g.MBonus(0, weaponMaxStd, level))
			t.ToDam += int16(g.MBonus(0, weaponMaxStd, level))
		} else if g.Magik(chance / objCursedDiv) {
			t.ToHit -= int16(g.MBonus(1, cursedMaxStd, level))
			t.ToDam -= int16(g.MBonus(1, cursedMaxStd, level))
			t.Cost = 0
		}
	default:
		if g.Magik(chance) {
			t.ToAC += int16(g.MBonus(1, armourMaxStd, level))
		} else if g.Magik(chance / objCursedDiv) {
			t.ToAC -= int16(g.MBonus(1, armourCursStd, level))
			t.Cost = 0
		}
	}
}
