package domain

// Monster is a live monster instance. The layout is fixed-size so snapshots
// can write the pool verbatim.
type Monster struct {
	HP       int16  `json:"hp"`
	Sleep    int16  `json:"csleep"` // turns until it wakes, 0 when awake
	Speed    int16  `json:"cspeed"` // relative to the player's speed
	Species  uint16 `json:"mptr"`
	Y        uint8  `json:"fy"`
	X        uint8  `json:"fx"`
	Dist     uint8  `json:"cdis"` // cached distance to the player
	Seen     bool   `json:"ml"`
	Stunned  uint8  `json:"stunned"`
	Confused uint8  `json:"confused"`
}

// Dead reports whether the record is a tombstone left by a deletion made
// while the pool was being iterated.
func (m *Monster) Dead() bool { return m.HP < 0 }
