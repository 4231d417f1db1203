package domain

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		y1, x1, y2, x2 int
		want           int
	}{
		{"same point", 5, 5, 5, 5, 0},
		{"horizontal", 0, 0, 0, 7, 7},
		{"vertical", 0, 0, 9, 0, 9},
		{"diagonal", 0, 0, 6, 6, 6},
		{"knight-ish", 0, 0, 3, 4, 4},
		{"symmetric", 3, 4, 0, 0, 4},
		{"long", 10, 10, 20, 40, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.y1, tt.x1, tt.y2, tt.x2); got != tt.want {
				t.Errorf("Distance(%d,%d,%d,%d) = %d, want %d", tt.y1, tt.x1, tt.y2, tt.x2, got, tt.want)
			}
		})
	}
}

func TestDistance_Triangle(t *testing.T) {
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			d := Distance(0, 0, y, x)
			hi := y
			if x > hi {
				hi = x
			}
			if d < hi || d > x+y {
				t.Errorf("Distance(0,0,%d,%d) = %d, outside [%d, %d]", y, x, d, hi, x+y)
			}
		}
	}
}

func TestInBounds(t *testing.T) {
	c := NewCave(10, 20)

	tests := []struct {
		y, x int
		want bool
	}{
		{0, 5, false},
		{9, 5, false},
		{5, 0, false},
		{5, 19, false},
		{1, 1, true},
		{8, 18, true},
		{-1, 5, false},
		{5, 25, false},
	}
	for _, tt := range tests {
		if got := c.InBounds(tt.y, tt.x); got != tt.want {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.y, tt.x, got, tt.want)
		}
	}
}

func TestCellClassification(t *testing.T) {
	tests := []struct {
		fval                      uint8
		open, closed, wall, floor bool
	}{
		{DarkFloor, true, false, false, true},
		{CorridorFloor, true, false, false, true},
		{BlockedFloor, false, true, false, true},
		{TmpWall1, false, true, false, false},
		{GraniteWall, false, true, true, false},
		{BoundaryWall, false, true, true, false},
	}
	for _, tt := range tests {
		c := Cell{Fval: tt.fval}
		if c.Open() != tt.open || c.Closed() != tt.closed || c.Wall() != tt.wall || c.Floor() != tt.floor {
			t.Errorf("fval %d: open=%v closed=%v wall=%v floor=%v", tt.fval, c.Open(), c.Closed(), c.Wall(), c.Floor())
		}
	}
}

func TestFillAndNextToWalls(t *testing.T) {
	c := NewCave(5, 5)
	c.Fill(c.Range(), GraniteWall)
	c.Fill(c.Interior(), DarkFloor)

	if got := c.At(0, 0).Fval; got != GraniteWall {
		t.Errorf("corner fval = %d, want granite", got)
	}
	if got := c.NextToWalls(2, 2); got != 0 {
		t.Errorf("NextToWalls(centre) = %d, want 0", got)
	}
	if got := c.NextToWalls(1, 1); got != 2 {
		t.Errorf("NextToWalls(corner floor) = %d, want 2", got)
	}

	c.At(1, 2).Fval = MagmaWall
	if got := c.NextToWalls(2, 2); got != 1 {
		t.Errorf("NextToWalls after seam = %d, want 1", got)
	}
}

func TestTestLight(t *testing.T) {
	c := NewCave(3, 3)
	if c.TestLight(1, 1) {
		t.Error("dark unmarked cell reported lit")
	}
	c.At(1, 1).Mark = true
	if !c.TestLight(1, 1) {
		t.Error("field-marked cell not reported lit")
	}
}

func TestBitPos(t *testing.T) {
	flags := uint32(1<<3 | 1<<17 | 1<<31)

	want := []int{3, 17, 31, -1}
	for _, w := range want {
		if got := BitPos(&flags); got != w {
			t.Errorf("BitPos() = %d, want %d", got, w)
		}
	}
	if flags != 0 {
		t.Errorf("flags = %#x after draining, want 0", flags)
	}
}
