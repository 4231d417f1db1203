package domain

import "codeberg.org/anaseto/gruid"

// Size of the map area of the screen, in cells.
const (
	ScreenHeight = 22
	ScreenWidth  = 66
)

// Margins that trigger a panel change when the focus gets this close to the
// panel edge.
const (
	panelMarginRows = 2
	panelMarginCols = 3
)

// Panel is the viewport: the half-screen-aligned sub-rectangle of the cave
// currently framed for display.
type Panel struct {
	Row int `json:"row"`
	Col int `json:"col"`

	RowMin int `json:"rowMin"`
	RowMax int `json:"rowMax"`
	RowPrt int `json:"rowPrt"` // screen row offset
	ColMin int `json:"colMin"`
	ColMax int `json:"colMax"`
	ColPrt int `json:"colPrt"` // screen column offset, leaves room for the status column

	MaxRows int `json:"maxRows"`
	MaxCols int `json:"maxCols"`
}

// NewPanel returns a panel at index (0, 0) for a cave of the given size.
// The largest index is the first half-screen step whose panel reaches the
// last row or column, so sizes that are not a multiple of the screen still
// have every cell on some panel.
func NewPanel(height, width int) *Panel {
	p := &Panel{
		MaxRows: halfSteps(height, ScreenHeight),
		MaxCols: halfSteps(width, ScreenWidth),
	}
	if p.MaxRows < 0 {
		p.MaxRows = 0
	}
	if p.MaxCols < 0 {
		p.MaxCols = 0
	}
	p.bounds()
	return p
}

// halfSteps is ceil((size-screen) / (screen/2)).
func halfSteps(size, screen int) int {
	step := screen / 2
	return (size - screen + step - 1) / step
}

func (p *Panel) bounds() {
	p.RowMin = p.Row * (ScreenHeight / 2)
	p.RowMax = p.RowMin + ScreenHeight - 1
	p.RowPrt = p.RowMin - 1
	p.ColMin = p.Col * (ScreenWidth / 2)
	p.ColMax = p.ColMin + ScreenWidth - 1
	p.ColPrt = p.ColMin - 13
}

// Update recomputes the panel index when (y, x) comes within the margin of
// the panel edge, or unconditionally when force is set. It reports whether
// the panel moved; callers must then abort anything planned under the old
// framing.
func (p *Panel) Update(y, x int, force bool) bool {
	row := p.Row
	col := p.Col

	if force || y < p.RowMin+panelMarginRows || y > p.RowMax-panelMarginRows {
		row = clamp((y-ScreenHeight/4)/(ScreenHeight/2), 0, p.MaxRows)
	}
	if force || x < p.ColMin+panelMarginCols || x > p.ColMax-panelMarginCols {
		col = clamp((x-ScreenWidth/4)/(ScreenWidth/2), 0, p.MaxCols)
	}

	if row == p.Row && col == p.Col {
		return false
	}
	p.Row = row
	p.Col = col
	p.bounds()
	return true
}

// Set moves the panel to index (row, col), clamped to the cave.
func (p *Panel) Set(row, col int) {
	p.Row = clamp(row, 0, p.MaxRows)
	p.Col = clamp(col, 0, p.MaxCols)
	p.bounds()
}

// Contains reports whether (y, x) is on the panel, edges included.
func (p *Panel) Contains(y, x int) bool {
	validY := y >= p.RowMin && y <= p.RowMax
	validX := x >= p.ColMin && x <= p.ColMax
	return validY && validX
}

// Bounds is the panel rectangle as a gruid range (half-open).
func (p *Panel) Bounds() gruid.Range {
	return gruid.NewRange(p.ColMin, p.RowMin, p.ColMax+1, p.RowMax+1)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}
