package dungeon

import (
	"moria-kernel/internal/domain"
	"moria-kernel/internal/rng"

	"codeberg.org/anaseto/gruid"
	"github.com/sirupsen/logrus"
)

// Town dimensions: one screen, no scrolling.
const (
	TownHeight = 22
	TownWidth  = 66
	StoreCount = 6
)

// GenerateTown lays out the town level. The store layout is drawn from the
// town seed, so the town looks the same every visit; the generator is put
// back on the main sequence before the player's arrival point is chosen.
// In daylight the whole town is lit.
func GenerateTown(r *rng.RNG, daylight bool) *Level {
	b := NewLevel(0, r).WithSize(TownHeight, TownWidth)
	b.cave = domain.NewCave(TownHeight, TownWidth)

	r.SetSeed(r.TownSeed())

	stores := []int{0, 1, 2, 3, 4, 5}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			k := r.Randint(len(stores)) - 1
			b.buildStore(stores[k], y, x)
			stores = append(stores[:k], stores[k+1:]...)
		}
	}

	b.cave.Interior().Iter(func(p gruid.Point) {
		if cell := b.cave.At(p.Y, p.X); cell.Fval == domain.NullWall {
			cell.Fval = domain.DarkFloor
		}
	})
	b.boundary()

	if p, ok := b.randomFloor(); ok {
		b.place(p, DownStair)
	}

	r.ResetSeed()

	if p, ok := b.randomFloor(); ok {
		b.start = p
	}

	for i := range b.cave.Cells {
		cell := &b.cave.Cells[i]
		if daylight || cell.Fval == domain.CorridorFloor {
			cell.Lit = true
		}
	}

	b.log.WithFields(logrus.Fields{"daylight": daylight}).Debug("Town laid out.")
	return b.Build()
}

// buildStore raises store n as a granite block in grid slot (y, x) and cuts
// its entrance into one of the four sides.
func (b *LevelBuilder) buildStore(n, y, x int) {
	r := b.rng
	yval := y*10 + 5
	xval := x*16 + 16
	top := yval - r.Randint(3)
	bottom := yval + r.Randint(4)
	left := xval - r.Randint(6)
	right := xval + r.Randint(6)

	b.cave.Fill(gruid.NewRange(left, top, right+1, bottom+1), domain.GraniteWall)

	var door gruid.Point
	switch side := r.Randint(4); side {
	case 1, 2:
		door.Y = r.Randint(bottom-top) + top - 1
		door.X = right
		if side == 1 {
			door.X = left
		}
	default:
		door.X = r.Randint(right-left) + left - 1
		door.Y = top
		if side == 3 {
			door.Y = bottom
		}
	}

	b.cave.At(door.Y, door.X).Fval = domain.CorridorFloor
	entrance := StoreDoor
	entrance.Sub = uint8(101 + n)
	entrance.Glyph = byte('1' + n)
	b.place(door, entrance)
}

// boundary rings the cave with permanent rock.
func (b *LevelBuilder) boundary() {
	inner := b.cave.Interior()
	b.cave.Range().Iter(func(p gruid.Point) {
		if !p.In(inner) {
			b.cave.At(p.Y, p.X).Fval = domain.BoundaryWall
		}
	})
}

func (b *LevelBuilder) randomFloor() (gruid.Point, bool) {
	for try := 0; try < 1000; try++ {
		p := gruid.Point{X: b.rng.Randint(b.width - 2), Y: b.rng.Randint(b.height - 2)}
		if b.cave.At(p.Y, p.X).Fval <= domain.MaxCaveRoom && !b.occupied[p] {
			return p, true
		}
	}
	return gruid.Point{}, false
}
