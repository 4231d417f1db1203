package engine

import (
	"moria-kernel/internal/domain"
	"moria-kernel/internal/pool"
	"moria-kernel/internal/rng"
	"moria-kernel/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Pool geometry. Cell pointers are bytes, so neither pool may grow past 255.
const (
	MaxMonsters      = 126 // monster slots, the player's reserved one included
	MinMonsterIndex  = 2   // 0 means "no monster", 1 is the player
	PlayerIndex      = 1
	MaxTreasures     = 175
	MinTreasureIndex = 1
)

// MaxSight is the farthest distance at which anything can be seen.
const MaxSight = 20

// Compaction starts evicting beyond this distance and closes in by
// compactStep each pass.
const (
	compactStart = 66
	compactStep  = 6
)

// maxPlacementTries bounds every random-cell search so that a full or
// walled-in cave cannot hang the turn.
const maxPlacementTries = 10000

// Player is the part of the player's state the kernel consults.
type Player struct {
	Y     int `json:"y"`
	X     int `json:"x"`
	Speed int `json:"speed"` // added to every new monster's speed

	Blind         bool `json:"blind"`
	Hallucinating bool `json:"hallucinating"`
	LightRadius   int  `json:"lightRadius"`
}

// Game is the simulation context: the cave, both entity pools, the
// generator and the viewport. It is not safe for concurrent use; the
// simulation is strictly turn-stepped.
type Game struct {
	RNG       *rng.RNG
	Cave      *domain.Cave
	Bestiary  *domain.Bestiary
	Monsters  *pool.Pool[domain.Monster]
	Treasures *pool.Pool[domain.Treasure]
	Panel     *domain.Panel
	Player    Player

	Level          int
	Turn           int // game turn, advanced by the caller
	TotalWinner    bool
	HighlightSeams bool

	// NeedsRedraw is raised whenever the map on screen went stale: the panel
	// moved or compaction pulled objects off the floor.
	NeedsRedraw bool

	cfg       Config
	traveling bool
	active    int // monster being processed by ProcessMonsters, -1 outside
	messenger Messenger
	log       *logrus.Entry
}

// NewGame seeds a generator from cfg and returns a game with an empty cave of
// the configured size. A nil messenger logs messages instead.
func NewGame(cfg Config, bestiary *domain.Bestiary, messenger Messenger) *Game {
	if messenger == nil {
		messenger = LogMessenger{}
	}

	r := &rng.RNG{}
	r.InitSeeds(cfg.Seed)

	g := &Game{
		RNG:            r,
		Bestiary:       bestiary,
		Player:         Player{LightRadius: 1},
		HighlightSeams: cfg.HighlightSeams,
		cfg:            cfg,
		active:         -1,
		messenger:      messenger,
		log: logger.Log.WithFields(logrus.Fields{
			"component": "engine",
			"seed":      r.MagicSeed(),
		}),
	}

	g.Monsters = pool.New(MaxMonsters, MinMonsterIndex, pool.Hooks[domain.Monster]{
		Unlink: g.unlinkMonster,
		Relink: g.relinkMonster,
		Bury:   func(m *domain.Monster) { m.HP = -1 },
	})
	g.Treasures = pool.New(MaxTreasures, MinTreasureIndex, pool.Hooks[domain.Treasure]{
		Relink: g.relinkTreasure,
	})

	g.SetCave(domain.NewCave(cfg.Height, cfg.Width))
	return g
}

// SetCave installs a new cave, emptying both pools and resetting the panel.
// The player is not placed; call MovePlayer.
func (g *Game) SetCave(cave *domain.Cave) {
	g.Cave = cave
	g.Monsters.Reset()
	g.Treasures.Reset()
	g.Panel = domain.NewPanel(cave.Height, cave.Width)
	g.traveling = false
	g.NeedsRedraw = true
}

// MovePlayer moves the player marker to (y, x), refreshes the cached monster
// distances, the torch light and the panel.
func (g *Game) MovePlayer(y, x int) {
	if g.Player.Y < g.Cave.Height && g.Player.X < g.Cave.Width {
		if old := g.Cave.At(g.Player.Y, g.Player.X); old.Cptr == PlayerIndex {
			old.Cptr = 0
		}
	}
	g.Player.Y = y
	g.Player.X = x
	g.Cave.At(y, x).Cptr = PlayerIndex

	g.UpdateMonsterDistances()
	g.UpdateLight()
	g.GetPanel(y, x, false)
}

// unlinkMonster clears the cell of a monster leaving the pool, unless the
// cell has already been handed to someone else.
func (g *Game) unlinkMonster(m *domain.Monster, index int) {
	cell := g.Cave.At(int(m.Y), int(m.X))
	if int(cell.Cptr) == index {
		cell.Cptr = 0
	}
}

// relinkMonster points a monster's cell at its new slot.
func (g *Game) relinkMonster(m *domain.Monster, from, to int) {
	if m.Dead() {
		return
	}
	cell := g.Cave.At(int(m.Y), int(m.X))
	if int(cell.Cptr) == from {
		cell.Cptr = uint8(to)
	}
}

// relinkTreasure repairs the cell holding a moved object. Objects do not
// record their position, so the whole grid is searched.
func (g *Game) relinkTreasure(_ *domain.Treasure, from, to int) {
	for i := range g.Cave.Cells {
		if int(g.Cave.Cells[i].Tptr) == from {
			g.Cave.Cells[i].Tptr = uint8(to)
		}
	}
}

// MonsterAt returns the monster on (y, x), or nil when the cell holds none
// (or only the player).
func (g *Game) MonsterAt(y, x int) *domain.Monster {
	i := int(g.Cave.At(y, x).Cptr)
	if i < MinMonsterIndex {
		return nil
	}
	return g.Monsters.At(i)
}

// TreasureAt returns the object on (y, x), or nil.
func (g *Game) TreasureAt(y, x int) *domain.Treasure {
	i := int(g.Cave.At(y, x).Tptr)
	if i == 0 {
		return nil
	}
	return g.Treasures.At(i)
}
