package domain

import "codeberg.org/anaseto/gruid"

// Feature codes. The ordering matters: terrain is classified by comparing a
// cell's code against the thresholds below, never by equality alone.
const (
	NullWall      uint8 = 0
	DarkFloor     uint8 = 1
	LightFloor    uint8 = 2
	CorridorFloor uint8 = 3
	BlockedFloor  uint8 = 4 // corridor cell holding a closed door, rubble or a secret door
	TmpWall1      uint8 = 8
	TmpWall2      uint8 = 9
	GraniteWall   uint8 = 12
	MagmaWall     uint8 = 13
	QuartzWall    uint8 = 14
	BoundaryWall  uint8 = 15
)

// Thresholds over the feature codes.
const (
	MaxCaveRoom    = LightFloor
	MaxOpenSpace   = CorridorFloor
	MaxCaveFloor   = BlockedFloor
	MinClosedSpace = BlockedFloor
	MinCaveWall    = GraniteWall
)

// Default dungeon dimensions.
const (
	MaxHeight = 66
	MaxWidth  = 198
)

// Cell is one grid square of the cave.
type Cell struct {
	Fval  uint8 `json:"fval"` // feature code
	Cptr  uint8 `json:"cptr"` // monster pool index, 0 none, 1 the player
	Tptr  uint8 `json:"tptr"` // treasure pool index, 0 none
	Lit   bool  `json:"pl"`   // permanently lit
	Mark  bool  `json:"fm"`   // field mark, remembered by the player
	Torch bool  `json:"tl"`   // inside the torch radius this turn
}

// Open reports whether the cell lets monsters stand and sight pass.
func (c *Cell) Open() bool { return c.Fval <= MaxOpenSpace }

// Closed reports whether the cell blocks line of sight.
func (c *Cell) Closed() bool { return c.Fval >= MinClosedSpace }

// Wall reports whether the cell is solid rock of any kind.
func (c *Cell) Wall() bool { return c.Fval >= MinCaveWall }

// Floor reports whether the cell draws as floor.
func (c *Cell) Floor() bool { return c.Fval <= MaxCaveFloor }

// Cave is the dungeon grid, stored row-major.
type Cave struct {
	Height int    `json:"height"`
	Width  int    `json:"width"`
	Cells  []Cell `json:"cells"`
}

// NewCave returns a grid of the given size filled with NullWall.
func NewCave(height, width int) *Cave {
	return &Cave{
		Height: height,
		Width:  width,
		Cells:  make([]Cell, height*width),
	}
}

// At returns the cell at (y, x). Coordinates must be inside the grid.
func (c *Cave) At(y, x int) *Cell {
	return &c.Cells[y*c.Width+x]
}

// Range is the whole grid as a gruid rectangle (X = column, Y = row).
func (c *Cave) Range() gruid.Range {
	return gruid.NewRange(0, 0, c.Width, c.Height)
}

// Interior is the part of the grid inside the permanent boundary ring.
func (c *Cave) Interior() gruid.Range {
	return gruid.NewRange(1, 1, c.Width-1, c.Height-1)
}

// InBounds reports whether (y, x) lies strictly inside the boundary ring.
func (c *Cave) InBounds(y, x int) bool {
	validY := y > 0 && y < c.Height-1
	validX := x > 0 && x < c.Width-1
	return validY && validX
}

// TestLight reports whether the player can see what is at (y, x).
func (c *Cave) TestLight(y, x int) bool {
	cell := c.At(y, x)
	return cell.Lit || cell.Torch || cell.Mark
}

// NextToWalls counts the walls directly north, south, east and west of
// (y, x). The point must be InBounds.
func (c *Cave) NextToWalls(y, x int) int {
	walls := 0
	for _, p := range [4]gruid.Point{{X: x, Y: y - 1}, {X: x, Y: y + 1}, {X: x - 1, Y: y}, {X: x + 1, Y: y}} {
		if c.At(p.Y, p.X).Wall() {
			walls++
		}
	}
	return walls
}

// Fill sets every cell in rg to the given feature code.
func (c *Cave) Fill(rg gruid.Range, fval uint8) {
	rg.Intersect(c.Range()).Iter(func(p gruid.Point) {
		c.At(p.Y, p.X).Fval = fval
	})
}

// Distance is the game's integer distance, used for every gameplay range
// check. It is exact along axes and diagonals; for dx=4, dy=3 it gives 4.
func Distance(y1, x1, y2, x2 int) int {
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}

	a := (dy + dx) << 1
	b := dy
	if dx < dy {
		b = dx
	}
	b <<= 1
	return (a - b) >> 1
}

// BitPos returns the position of the lowest set bit of *test and clears it,
// or -1 when no bit is set.
func BitPos(test *uint32) int {
	for i := 0; i < 32; i++ {
		mask := uint32(1) << i
		if *test&mask != 0 {
			*test &^= mask
			return i
		}
	}
	return -1
}
