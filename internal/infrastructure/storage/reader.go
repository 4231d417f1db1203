package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"moria-kernel/internal/domain"
	"moria-kernel/internal/engine"
	"moria-kernel/internal/version"
)

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	br := bufio.NewReader(r)

	var header SnapshotHeader
	if err := binary.Read(br, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	if string(header.Magic[:]) != MagicHeader {
		return nil, ErrBadMagic
	}
	if header.Version != version.SnapshotFormat {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, header.Version, version.SnapshotFormat)
	}

	// Bound the allocations before trusting the counts.
	if header.Height == 0 || header.Width == 0 ||
		int(header.Height) > domain.MaxHeight || int(header.Width) > domain.MaxWidth {
		return nil, fmt.Errorf("%w: cave %dx%d", ErrCorrupt, header.Height, header.Width)
	}
	if int(header.MonsterCount) > engine.MaxMonsters-engine.MinMonsterIndex ||
		int(header.TreasureCount) > engine.MaxTreasures-engine.MinTreasureIndex {
		return nil, fmt.Errorf("%w: %d monsters, %d objects", ErrCorrupt, header.MonsterCount, header.TreasureCount)
	}

	s := &Snapshot{
		RNG:   header.RNG,
		Level: int(header.Level),
		Turn:  int(header.Turn),
		Player: engine.Player{
			Y:             int(header.PlayerY),
			X:             int(header.PlayerX),
			Speed:         int(header.PlayerSpeed),
			LightRadius:   int(header.LightRadius),
			Blind:         header.Blind,
			Hallucinating: header.Hallucinating,
		},
		TotalWinner: header.TotalWinner,
		PanelRow:    int(header.PanelRow),
		PanelCol:    int(header.PanelCol),
		Cave:        domain.NewCave(int(header.Height), int(header.Width)),
		Monsters:    make([]domain.Monster, header.MonsterCount),
		Treasures:   make([]domain.Treasure, header.TreasureCount),
	}

	if err := binary.Read(br, binary.LittleEndian, s.Cave.Cells); err != nil {
		return nil, fmt.Errorf("failed to read cells: %w", err)
	}
	if len(s.Monsters) > 0 {
		if err := binary.Read(br, binary.LittleEndian, s.Monsters); err != nil {
			return nil, fmt.Errorf("failed to read monsters: %w", err)
		}
	}
	if len(s.Treasures) > 0 {
		if err := binary.Read(br, binary.LittleEndian, s.Treasures); err != nil {
			return nil, fmt.Errorf("failed to read objects: %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
