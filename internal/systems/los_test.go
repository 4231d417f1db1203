package systems

import (
	"testing"

	"moria-kernel/internal/domain"
)

// openCave returns a room of dark floor inside a granite ring.
func openCave(height, width int) *domain.Cave {
	c := domain.NewCave(height, width)
	c.Fill(c.Range(), domain.GraniteWall)
	c.Fill(c.Interior(), domain.DarkFloor)
	return c
}

func TestLineOfSight_Adjacent(t *testing.T) {
	c := openCave(10, 10)
	c.Fill(c.Interior(), domain.GraniteWall)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !LineOfSight(c, 5, 5, 5+dy, 5+dx) {
				t.Errorf("adjacent (%d,%d) not visible through solid rock", dy, dx)
			}
		}
	}
}

func TestLineOfSight_StraightCorridor(t *testing.T) {
	tests := []struct {
		name     string
		wallY    int
		wallX    int
		fromY    int
		fromX    int
		toY      int
		toX      int
		expected bool
	}{
		{"open horizontal", 0, 0, 5, 2, 5, 12, true},
		{"blocked horizontal", 5, 7, 5, 2, 5, 12, false},
		{"blocked horizontal reversed", 5, 7, 5, 12, 5, 2, false},
		{"open vertical", 0, 0, 1, 6, 9, 6, true},
		{"blocked vertical", 4, 6, 9, 6, 1, 6, false},
		{"wall on the target is fine", 5, 12, 5, 2, 5, 12, true},
		{"wall on the origin is fine", 5, 2, 5, 2, 5, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openCave(11, 15)
			if tt.wallY != 0 {
				c.At(tt.wallY, tt.wallX).Fval = domain.GraniteWall
			}
			if got := LineOfSight(c, tt.fromY, tt.fromX, tt.toY, tt.toX); got != tt.expected {
				t.Errorf("LineOfSight() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLineOfSight_ClosedThreshold(t *testing.T) {
	c := openCave(5, 10)

	c.At(2, 4).Fval = domain.CorridorFloor
	if !LineOfSight(c, 2, 1, 2, 8) {
		t.Error("corridor floor should not block")
	}
	c.At(2, 4).Fval = domain.BlockedFloor
	if LineOfSight(c, 2, 1, 2, 8) {
		t.Error("blocked floor should block")
	}
}

func TestLineOfSight_Diagonal(t *testing.T) {
	c := openCave(10, 10)
	if !LineOfSight(c, 1, 1, 6, 6) {
		t.Fatal("open diagonal blocked")
	}

	c.At(3, 3).Fval = domain.GraniteWall
	if LineOfSight(c, 1, 1, 6, 6) {
		t.Error("diagonal through a wall is visible")
	}
}

func TestLineOfSight_CornerGraze(t *testing.T) {
	// (1,1) -> (3,3) passes exactly through the corner shared by
	// (1,2), (2,1), (2,2) and (1,1).
	tests := []struct {
		name     string
		walls    [][2]int
		expected bool
	}{
		{"all open", nil, true},
		{"one corner cell closed", [][2]int{{1, 2}}, false},
		{"other corner cell closed", [][2]int{{2, 1}}, false},
		{"both corner cells closed", [][2]int{{1, 2}, {2, 1}}, false},
		{"off-line cell closed", [][2]int{{1, 3}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openCave(6, 6)
			for _, w := range tt.walls {
				c.At(w[0], w[1]).Fval = domain.GraniteWall
			}
			if got := LineOfSight(c, 1, 1, 3, 3); got != tt.expected {
				t.Errorf("LineOfSight() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLineOfSight_MidLineGraze(t *testing.T) {
	// dx=6, dy=2: leaving column 2 the line passes exactly through the
	// corner of rows 1-2 and columns 2-3, then runs along row 2.
	tests := []struct {
		name     string
		wall     [2]int
		expected bool
	}{
		{"open", [2]int{}, true},
		{"cell on the line", [2]int{2, 5}, false},
		{"corner cell above", [2]int{1, 3}, false},
		{"corner cell below", [2]int{2, 2}, false},
		{"clear of the line", [2]int{1, 4}, true},
		{"below the line", [2]int{3, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openCave(8, 10)
			if tt.wall != [2]int{} {
				c.At(tt.wall[0], tt.wall[1]).Fval = domain.GraniteWall
			}
			if got := LineOfSight(c, 1, 1, 3, 7); got != tt.expected {
				t.Errorf("LineOfSight() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestLineOfSight_Steep(t *testing.T) {
	c := openCave(12, 6)
	if !LineOfSight(c, 1, 2, 9, 3) {
		t.Fatal("open steep line blocked")
	}
	c.At(3, 2).Fval = domain.GraniteWall
	if LineOfSight(c, 1, 2, 9, 3) {
		t.Error("wall on a steep line should block")
	}
}

func TestLineOfSight_Symmetric(t *testing.T) {
	c := openCave(15, 15)
	c.At(5, 6).Fval = domain.GraniteWall
	c.At(9, 4).Fval = domain.GraniteWall

	for y := 1; y < 14; y++ {
		for x := 1; x < 14; x++ {
			if c.At(y, x).Closed() {
				continue
			}
			there := LineOfSight(c, 7, 7, y, x)
			back := LineOfSight(c, y, x, 7, 7)
			if there != back {
				t.Errorf("LOS (7,7)<->(%d,%d) not symmetric: %v vs %v", y, x, there, back)
			}
		}
	}
}
