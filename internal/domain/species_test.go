package domain

import (
	"errors"
	"testing"
)

func TestNewBestiary(t *testing.T) {
	table := []Species{
		{Name: "a", Level: 0},
		{Name: "b", Level: 0},
		{Name: "c", Level: 1, Defense: DefenseUndead},
		{Name: "d", Level: 2},
		{Name: "w", Level: 100, Move: MoveWin},
	}

	b, err := NewBestiary(table, 1)
	if err != nil {
		t.Fatalf("NewBestiary: %v", err)
	}

	if b.Len() != 5 || b.MaxLevel() != 2 {
		t.Errorf("len = %d, max level = %d", b.Len(), b.MaxLevel())
	}
	for level, want := range []int{2, 3, 4} {
		if got := b.UpTo(level); got != want {
			t.Errorf("UpTo(%d) = %d, want %d", level, got, want)
		}
	}
	if b.WinStart() != 4 || b.WinCount() != 1 {
		t.Errorf("win species = %d+%d, want 4+1", b.WinStart(), b.WinCount())
	}
	if !b.HasUndead() {
		t.Error("undead species not noticed")
	}
	if !b.Get(b.WinStart()).NeverCompact() {
		t.Error("win species can be compacted")
	}
}

func TestNewBestiary_Errors(t *testing.T) {
	tests := []struct {
		name     string
		table    []Species
		winCount int
	}{
		{"no win species", []Species{{Level: 0}, {Level: 1}}, 0},
		{"only win species", []Species{{Level: 0}}, 1},
		{"out of order", []Species{{Level: 0}, {Level: 2}, {Level: 1}, {Level: 9}}, 1},
		{"missing level", []Species{{Level: 0}, {Level: 2}, {Level: 9}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBestiary(tt.table, tt.winCount)
			if !errors.Is(err, ErrBestiary) {
				t.Errorf("err = %v, want ErrBestiary", err)
			}
		})
	}
}

func TestSpecies_Flags(t *testing.T) {
	drake := Species{Glyph: 'd', HitDice: [2]uint8{9, 10}, Defense: DefenseMaxHP}
	if !drake.IsDragon() || !drake.MaxHitPoints() || drake.MaxHP() != 90 {
		t.Errorf("drake flags wrong: dragon=%v maxhp=%v hp=%d", drake.IsDragon(), drake.MaxHitPoints(), drake.MaxHP())
	}
	rat := Species{Glyph: 'r'}
	if rat.IsDragon() || rat.IsUndead() || rat.NeverCompact() {
		t.Error("plain species has flags")
	}
}
