package dungeon

import (
	"sort"

	"moria-kernel/internal/domain"
	"moria-kernel/internal/rng"
	"moria-kernel/pkg/logger"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/sirupsen/logrus"
)

// Room size limits, walls excluded.
const (
	MinRoomHeight = 3
	MaxRoomHeight = 8
	MinRoomWidth  = 6
	MaxRoomWidth  = 20
)

// Placement is an object the level wants on a given cell.
type Placement struct {
	Y, X   int
	Object ObjectTemplate
}

// Level is a generated cave together with its fixtures, ready to be
// installed into a game.
type Level struct {
	Depth   int
	Cave    *domain.Cave
	Start   gruid.Point // where the player arrives
	Rooms   []gruid.Range
	Objects []Placement
}

// LevelBuilder assembles a level step by step. Every random choice goes
// through the game generator, so a level is a pure function of its state.
type LevelBuilder struct {
	depth    int
	height   int
	width    int
	cave     *domain.Cave
	rooms    []gruid.Range
	objects  []Placement
	occupied map[gruid.Point]bool
	start    gruid.Point
	rng      *rng.RNG
	log      *logrus.Entry
}

// NewLevel starts a builder for the given depth.
func NewLevel(depth int, r *rng.RNG) *LevelBuilder {
	return &LevelBuilder{
		depth:    depth,
		height:   domain.MaxHeight,
		width:    domain.MaxWidth,
		occupied: make(map[gruid.Point]bool),
		rng:      r,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "dungeon",
			"depth":     depth,
		}),
	}
}

// WithSize sets the cave size. Call it before WithRooms.
func (b *LevelBuilder) WithSize(height, width int) *LevelBuilder {
	b.height = height
	b.width = width
	return b
}

// WithRooms fills the cave with granite inside a boundary ring, carves up
// to maxRooms non-overlapping rooms and joins each to the previous one with
// an L-shaped corridor.
func (b *LevelBuilder) WithRooms(maxRooms int) *LevelBuilder {
	b.cave = domain.NewCave(b.height, b.width)
	b.cave.Fill(b.cave.Range(), domain.BoundaryWall)
	b.cave.Fill(b.cave.Interior(), domain.GraniteWall)

	b.rooms = make([]gruid.Range, 0, maxRooms)
	for try := 0; try < maxRooms*4 && len(b.rooms) < maxRooms; try++ {
		h := b.randRange(MinRoomHeight, MaxRoomHeight)
		w := b.randRange(MinRoomWidth, MaxRoomWidth)
		if b.height-h-2 < 2 || b.width-w-2 < 2 {
			continue
		}
		y := b.randRange(2, b.height-h-2)
		x := b.randRange(2, b.width-w-2)

		room := gruid.NewRange(x, y, x+w, y+h)
		if b.overlaps(room) {
			continue
		}

		b.carveRoom(room)
		if len(b.rooms) > 0 {
			b.connect(center(b.rooms[len(b.rooms)-1]), center(room))
		}
		b.rooms = append(b.rooms, room)
	}

	b.log.WithField("rooms", len(b.rooms)).Debug("Rooms carved.")
	return b
}

// overlaps reports whether room, with a wall of one cell all around, would
// touch an existing room's walls.
func (b *LevelBuilder) overlaps(room gruid.Range) bool {
	padded := room.Shift(-2, -2, 2, 2)
	for _, other := range b.rooms {
		sz := padded.Intersect(other).Size()
		if sz.X > 0 && sz.Y > 0 {
			return true
		}
	}
	return false
}

// carveRoom turns room into floor. Shallow rooms are more often lit.
func (b *LevelBuilder) carveRoom(room gruid.Range) {
	lit := b.depth <= b.rng.Randint(25)
	fval := domain.DarkFloor
	if lit {
		fval = domain.LightFloor
	}
	room.Iter(func(p gruid.Point) {
		cell := b.cave.At(p.Y, p.X)
		cell.Fval = fval
		cell.Lit = lit
	})
}

func (b *LevelBuilder) connect(from, to gruid.Point) {
	if b.rng.Randint(2) == 1 {
		b.corridor(from, gruid.Point{X: to.X, Y: from.Y})
		b.corridor(gruid.Point{X: to.X, Y: from.Y}, to)
	} else {
		b.corridor(from, gruid.Point{X: from.X, Y: to.Y})
		b.corridor(gruid.Point{X: from.X, Y: to.Y}, to)
	}
}

// corridor tunnels a straight line through granite. Floor it crosses is left
// as it is.
func (b *LevelBuilder) corridor(from, to gruid.Point) {
	rg := gruid.NewRange(min(from.X, to.X), min(from.Y, to.Y), max(from.X, to.X)+1, max(from.Y, to.Y)+1)
	rg.Intersect(b.cave.Interior()).Iter(func(p gruid.Point) {
		cell := b.cave.At(p.Y, p.X)
		if cell.Wall() {
			cell.Fval = domain.CorridorFloor
		}
	})
}

// WithSeams streaks magma and quartz through the remaining granite, shaped
// by simplex noise seeded from the generator.
func (b *LevelBuilder) WithSeams() *LevelBuilder {
	noise := opensimplex.NewNormalized(int64(b.rng.Next()))

	magma, quartz := 0, 0
	b.cave.Interior().Iter(func(p gruid.Point) {
		cell := b.cave.At(p.Y, p.X)
		if cell.Fval != domain.GraniteWall {
			return
		}
		v := octaveNoise(noise, float64(p.X), float64(p.Y), 3, 0.08, 0.5)
		switch {
		case v > 0.74:
			cell.Fval = domain.QuartzWall
			quartz++
		case v > 0.66:
			cell.Fval = domain.MagmaWall
			magma++
		}
	})

	b.log.WithFields(logrus.Fields{"magma": magma, "quartz": quartz}).Debug("Seams laid.")
	return b
}

// octaveNoise layers several frequencies of noise, normalized to [0, 1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// WithDoors hangs a door wherever a corridor pierces a room's wall, that is
// on corridor cells of the wall ring flanked by rock. Closed and secret
// doors block the corridor cell.
func (b *LevelBuilder) WithDoors() *LevelBuilder {
	doors := 0
	for _, room := range b.rooms {
		room.Shift(-1, -1, 1, 1).Iter(func(p gruid.Point) {
			if p.In(room) || b.occupied[p] {
				return
			}
			cell := b.cave.At(p.Y, p.X)
			if cell.Fval != domain.CorridorFloor || b.cave.NextToWalls(p.Y, p.X) < 2 {
				return
			}

			door := OpenDoor
			switch roll := b.rng.Randint(8); {
			case roll == 8:
				door = SecretDoor
			case roll > 3:
				door = ClosedDoor
			}
			if door.Kind != domain.KindOpenDoor {
				cell.Fval = domain.BlockedFloor
			}
			b.place(p, door)
			doors++
		})
	}

	b.log.WithField("doors", doors).Debug("Doors hung.")
	return b
}

// PlaceStairs puts the player's arrival point and an up staircase in one
// room and the down staircase in the room farthest from it.
func (b *LevelBuilder) PlaceStairs() *LevelBuilder {
	if len(b.rooms) == 0 {
		b.start = gruid.Point{X: b.width / 2, Y: b.height / 2}
		return b
	}

	up, down := 0, 0
	best := -1
	for i := range b.rooms {
		for j := i + 1; j < len(b.rooms); j++ {
			if d := paths.DistanceManhattan(center(b.rooms[i]), center(b.rooms[j])); d > best {
				best = d
				up, down = i, j
			}
		}
	}

	b.start = center(b.rooms[up])
	b.place(b.start, UpStair)
	if down != up {
		b.place(center(b.rooms[down]), DownStair)
	} else if p, ok := b.freeCellIn(b.rooms[up]); ok {
		b.place(p, DownStair)
	}
	return b
}

// ScatterObjects drops count objects on room floors: mostly loose items,
// sometimes a trap. About one corridor cell in four of count also gets
// rubble.
func (b *LevelBuilder) ScatterObjects(count int) *LevelBuilder {
	if len(b.rooms) == 0 {
		return b
	}

	keys := make([]string, 0, len(ItemTemplates))
	for k := range ItemTemplates {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i := 0; i < count; i++ {
		room := b.rooms[b.rng.Randint(len(b.rooms))-1]
		p, ok := b.freeCellIn(room)
		if !ok {
			continue
		}

		switch roll := b.rng.Randint(10); {
		case roll == 1:
			b.place(p, Pit)
		case roll == 2:
			b.place(p, Rockfall)
		default:
			b.place(p, ItemTemplates[keys[b.rng.Randint(len(keys))-1]])
		}
	}

	for i := 0; i < count/4; i++ {
		for try := 0; try < 50; try++ {
			p := gruid.Point{X: b.rng.Randint(b.width - 2), Y: b.rng.Randint(b.height - 2)}
			cell := b.cave.At(p.Y, p.X)
			if cell.Fval == domain.CorridorFloor && !b.occupied[p] {
				cell.Fval = domain.BlockedFloor
				b.place(p, Rubble)
				break
			}
		}
	}
	return b
}

func (b *LevelBuilder) freeCellIn(room gruid.Range) (gruid.Point, bool) {
	size := room.Size()
	for try := 0; try < 20; try++ {
		p := gruid.Point{
			X: room.Min.X + b.rng.Randint(size.X) - 1,
			Y: room.Min.Y + b.rng.Randint(size.Y) - 1,
		}
		if !b.occupied[p] && p != b.start {
			return p, true
		}
	}
	return gruid.Point{}, false
}

func (b *LevelBuilder) place(p gruid.Point, obj ObjectTemplate) {
	b.occupied[p] = true
	b.objects = append(b.objects, Placement{Y: p.Y, X: p.X, Object: obj})
}

// Build returns the finished level.
func (b *LevelBuilder) Build() *Level {
	b.log.WithFields(logrus.Fields{
		"rooms":   len(b.rooms),
		"objects": len(b.objects),
	}).Info("Level generated.")

	return &Level{
		Depth:   b.depth,
		Cave:    b.cave,
		Start:   b.start,
		Rooms:   b.rooms,
		Objects: b.objects,
	}
}

func (b *LevelBuilder) randRange(lo, hi int) int {
	return b.rng.Randint(hi-lo+1) + lo - 1
}

func center(rg gruid.Range) gruid.Point {
	return gruid.Point{X: (rg.Min.X + rg.Max.X - 1) / 2, Y: (rg.Min.Y + rg.Max.Y - 1) / 2}
}
