package domain

import (
	"testing"

	"codeberg.org/anaseto/gruid"
)

func TestNewPanel(t *testing.T) {
	tests := []struct {
		name             string
		height, width    int
		maxRows, maxCols int
	}{
		{"full cave", MaxHeight, MaxWidth, 4, 4},
		{"one screen", ScreenHeight, ScreenWidth, 0, 0},
		{"two screens wide", ScreenHeight, 2 * ScreenWidth, 0, 2},
		{"uneven size", 40, 100, 2, 2},
		{"smaller than a screen", 10, 30, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(tt.height, tt.width)
			if p.MaxRows != tt.maxRows || p.MaxCols != tt.maxCols {
				t.Errorf("max = (%d,%d), want (%d,%d)", p.MaxRows, p.MaxCols, tt.maxRows, tt.maxCols)
			}
			if p.RowMin != 0 || p.RowMax != ScreenHeight-1 || p.ColMin != 0 || p.ColMax != ScreenWidth-1 {
				t.Errorf("bounds = rows [%d,%d] cols [%d,%d]", p.RowMin, p.RowMax, p.ColMin, p.ColMax)
			}
			if p.RowPrt != -1 || p.ColPrt != -13 {
				t.Errorf("print offsets = (%d,%d), want (-1,-13)", p.RowPrt, p.ColPrt)
			}
		})
	}
}

func TestPanel_Update(t *testing.T) {
	tests := []struct {
		name     string
		y, x     int
		force    bool
		moved    bool
		row, col int
	}{
		{"well inside", 10, 10, false, false, 0, 0},
		{"near the bottom margin", 20, 10, false, true, 1, 0},
		{"near the right margin", 10, 63, false, true, 0, 1},
		{"forced at origin", 1, 1, true, false, 0, 0},
		{"forced far corner", MaxHeight - 1, MaxWidth - 1, true, true, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel(MaxHeight, MaxWidth)
			moved := p.Update(tt.y, tt.x, tt.force)
			if moved != tt.moved {
				t.Errorf("moved = %v, want %v", moved, tt.moved)
			}
			if p.Row != tt.row || p.Col != tt.col {
				t.Errorf("panel = (%d,%d), want (%d,%d)", p.Row, p.Col, tt.row, tt.col)
			}
			if !p.Contains(tt.y, tt.x) {
				t.Errorf("panel rows [%d,%d] cols [%d,%d] does not contain (%d,%d)",
					p.RowMin, p.RowMax, p.ColMin, p.ColMax, tt.y, tt.x)
			}
		})
	}
}

func TestPanel_UpdateSmallCave(t *testing.T) {
	p := NewPanel(ScreenHeight, ScreenWidth)
	if p.Update(ScreenHeight-2, ScreenWidth-2, false) {
		t.Error("a one-screen cave never scrolls")
	}
	if p.Row != 0 || p.Col != 0 {
		t.Errorf("panel = (%d,%d)", p.Row, p.Col)
	}
}

func TestPanel_UnevenCaveReachesEveryCell(t *testing.T) {
	p := NewPanel(40, 100)

	if !p.Update(35, 10, true) || !p.Contains(35, 10) {
		t.Fatalf("panel rows [%d,%d] does not frame row 35", p.RowMin, p.RowMax)
	}

	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			p.Update(y, x, true)
			if !p.Contains(y, x) {
				t.Fatalf("no panel frames (%d,%d): rows [%d,%d] cols [%d,%d]",
					y, x, p.RowMin, p.RowMax, p.ColMin, p.ColMax)
			}
		}
	}
}

func TestPanel_Set(t *testing.T) {
	p := NewPanel(MaxHeight, MaxWidth)

	p.Set(2, 3)
	if p.RowMin != 22 || p.RowMax != 43 || p.ColMin != 99 || p.ColMax != 164 {
		t.Errorf("bounds = rows [%d,%d] cols [%d,%d]", p.RowMin, p.RowMax, p.ColMin, p.ColMax)
	}

	p.Set(9, -1)
	if p.Row != 4 || p.Col != 0 {
		t.Errorf("clamped panel = (%d,%d), want (4,0)", p.Row, p.Col)
	}
}

func TestPanel_ContainsEdges(t *testing.T) {
	p := NewPanel(MaxHeight, MaxWidth)
	p.Set(1, 1)

	tests := []struct {
		y, x int
		want bool
	}{
		{p.RowMin, p.ColMin, true},
		{p.RowMax, p.ColMax, true},
		{p.RowMin - 1, p.ColMin, false},
		{p.RowMax, p.ColMax + 1, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.y, tt.x); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.y, tt.x, got, tt.want)
		}
	}

	if got := p.Bounds().Size(); got != (gruid.Point{X: ScreenWidth, Y: ScreenHeight}) {
		t.Errorf("bounds size = %v", got)
	}
}
