package engine

import "strings"

// Terminal size the map layout assumes.
const (
	TerminalRows = 24
	TerminalCols = 80
)

// TextScreen is a Screen kept in memory, for printing the map as plain text.
type TextScreen struct {
	rows [][]byte
}

// NewTextScreen returns a blank screen of the given size.
func NewTextScreen(rows, cols int) *TextScreen {
	s := &TextScreen{rows: make([][]byte, rows)}
	for i := range s.rows {
		s.rows[i] = []byte(strings.Repeat(" ", cols))
	}
	return s
}

// EraseLine blanks row from col to the end.
func (s *TextScreen) EraseLine(row, col int) {
	if row < 0 || row >= len(s.rows) {
		return
	}
	line := s.rows[row]
	for i := max(col, 0); i < len(line); i++ {
		line[i] = ' '
	}
}

// Print puts ch at (row, col). Off-screen writes are dropped.
func (s *TextScreen) Print(ch byte, row, col int) {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return
	}
	s.rows[row][col] = ch
}

// String returns the screen with trailing blanks and blank trailing lines
// removed.
func (s *TextScreen) String() string {
	lines := make([]string, len(s.rows))
	for i, r := range s.rows {
		lines[i] = strings.TrimRight(string(r), " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
