package storage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"moria-kernel/internal/rng"
	"moria-kernel/internal/version"
)

// MagicHeader opens every snapshot.
const MagicHeader string = `CVSN`

// SnapshotHeader is the fixed-size head of a snapshot file. It holds no
// slices or strings, so binary.Write can encode it in one call.
type SnapshotHeader struct {
	Magic   [4]byte
	Version uint32
	RNG     rng.State
	Level   int32
	Turn    int64

	PlayerY       int16
	PlayerX       int16
	PlayerSpeed   int16
	LightRadius   int16
	Blind         bool
	Hallucinating bool
	TotalWinner   bool
	PanelRow      int16
	PanelCol      int16

	Height        uint16
	Width         uint16
	MonsterCount  uint16
	TreasureCount uint16
}

// WriteSnapshot encodes s: the header, then the cells row by row, then the
// monster and object records in slot order. All integers are little-endian.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	header := SnapshotHeader{
		Version:       version.SnapshotFormat,
		RNG:           s.RNG,
		Level:         int32(s.Level),
		Turn:          int64(s.Turn),
		PlayerY:       int16(s.Player.Y),
		PlayerX:       int16(s.Player.X),
		PlayerSpeed:   int16(s.Player.Speed),
		LightRadius:   int16(s.Player.LightRadius),
		Blind:         s.Player.Blind,
		Hallucinating: s.Player.Hallucinating,
		TotalWinner:   s.TotalWinner,
		PanelRow:      int16(s.PanelRow),
		PanelCol:      int16(s.PanelCol),
		Height:        uint16(s.Cave.Height),
		Width:         uint16(s.Cave.Width),
		MonsterCount:  uint16(len(s.Monsters)),
		TreasureCount: uint16(len(s.Treasures)),
	}
	copy(header.Magic[:], MagicHeader)

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, s.Cave.Cells); err != nil {
		return fmt.Errorf("failed to write cells: %w", err)
	}
	if len(s.Monsters) > 0 {
		if err := binary.Write(bw, binary.LittleEndian, s.Monsters); err != nil {
			return fmt.Errorf("failed to write monsters: %w", err)
		}
	}
	if len(s.Treasures) > 0 {
		if err := binary.Write(bw, binary.LittleEndian, s.Treasures); err != nil {
			return fmt.Errorf("failed to write objects: %w", err)
		}
	}
	return bw.Flush()
}
