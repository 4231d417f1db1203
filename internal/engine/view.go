package engine

import (
	"moria-kernel/internal/domain"
	"moria-kernel/internal/systems"
)

// Screen is the drawing surface PrintMap writes to. Rows and columns are
// screen coordinates.
type Screen interface {
	EraseLine(row, col int)
	Print(ch byte, row, col int)
}

// mapLeftMargin is the screen column where the map starts; the status
// column lives to its left.
const mapLeftMargin = 13

// GetPanel reframes the viewport around (y, x) when that point comes near
// the panel edge, or unconditionally with force. When the panel moves, any
// travel command in progress is cancelled and the map must be redrawn.
func (g *Game) GetPanel(y, x int, force bool) bool {
	if !g.Panel.Update(y, x, force) {
		return false
	}
	g.EndTravel()
	g.NeedsRedraw = true
	return true
}

// PanelContains reports whether (y, x) is on the current panel.
func (g *Game) PanelContains(y, x int) bool {
	return g.Panel.Contains(y, x)
}

// BeginTravel marks a multi-turn travel command as running.
func (g *Game) BeginTravel() { g.traveling = true }

// EndTravel cancels the travel command, if any.
func (g *Game) EndTravel() { g.traveling = false }

// Traveling reports whether a travel command is running. Callers must check
// it every turn: a panel change stops the travel.
func (g *Game) Traveling() bool { return g.traveling }

// LOS reports whether (toY, toX) is visible from (fromY, fromX).
func (g *Game) LOS(fromY, fromX, toY, toX int) bool {
	return systems.LineOfSight(g.Cave, fromY, fromX, toY, toX)
}

// UpdateLight recomputes the player's torch light.
func (g *Game) UpdateLight() {
	systems.UpdateTorchLight(g.Cave, g.Player.Y, g.Player.X, g.Player.LightRadius)
}

// NextToCorr counts the corridor cells around (y, x), the point itself
// included, that could still take a door. (y, x) must be in bounds.
func (g *Game) NextToCorr(y, x int) int {
	count := 0
	for yy := y - 1; yy <= y+1; yy++ {
		for xx := x - 1; xx <= x+1; xx++ {
			cell := g.Cave.At(yy, xx)
			if cell.Fval != domain.CorridorFloor {
				continue
			}
			if cell.Tptr == 0 || g.Treasures.At(int(cell.Tptr)).Kind < domain.KindMinDoors {
				count++
			}
		}
	}
	return count
}

// LocSymbol returns the character the player sees at (y, x). A
// hallucinating player sees noise, drawn from the game stream.
func (g *Game) LocSymbol(y, x int) byte {
	return g.symbol(y, x, true)
}

func (g *Game) symbol(y, x int, hallucinate bool) byte {
	cell := g.Cave.At(y, x)

	if cell.Cptr == PlayerIndex {
		return '@'
	}
	if g.Player.Blind {
		return ' '
	}
	if hallucinate && g.Player.Hallucinating && g.RNG.Randint(12) == 1 {
		return byte(g.RNG.Randint(95) + 31)
	}
	if cell.Cptr > PlayerIndex {
		m := g.Monsters.At(int(cell.Cptr))
		if m.Seen {
			return g.Bestiary.Get(int(m.Species)).Glyph
		}
	}
	if !cell.Lit && !cell.Torch && !cell.Mark {
		return ' '
	}
	if cell.Tptr != 0 {
		t := g.Treasures.At(int(cell.Tptr))
		if t.Kind != domain.KindInvisTrap {
			return t.Glyph
		}
	}
	if cell.Fval <= domain.MaxCaveFloor {
		return '.'
	}
	if cell.Fval == domain.GraniteWall || cell.Fval == domain.BoundaryWall || !g.HighlightSeams {
		return '#'
	}
	return '%'
}

// PrintMap draws the current panel and clears NeedsRedraw. Blank cells are
// left erased.
func (g *Game) PrintMap(screen Screen) {
	g.drawPanel(screen, true)
	g.NeedsRedraw = false
}

// DrawPanel draws the current panel for observers other than the player's
// own display. It leaves NeedsRedraw alone and never draws from the game
// stream, so hallucinations are not shown.
func (g *Game) DrawPanel(screen Screen) {
	g.drawPanel(screen, false)
}

func (g *Game) drawPanel(screen Screen, hallucinate bool) {
	p := g.Panel
	line := 1
	for y := p.RowMin; y <= p.RowMax && y < g.Cave.Height; y++ {
		screen.EraseLine(line, mapLeftMargin)
		line++

		for x := p.ColMin; x <= p.ColMax && x < g.Cave.Width; x++ {
			if ch := g.symbol(y, x, hallucinate); ch != ' ' {
				screen.Print(ch, y-p.RowPrt, x-p.ColPrt)
			}
		}
	}
}
