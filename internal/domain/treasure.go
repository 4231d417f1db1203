package domain

// Kind is an object's type value. Like feature codes, kinds are ordered:
// everything above KindMaxPickUp lives on the floor and is never carried.
type Kind uint8

const (
	KindNothing    Kind = 0
	KindMisc       Kind = 1
	KindChest      Kind = 2
	KindSpike      Kind = 13
	KindLight      Kind = 15
	KindBow        Kind = 20
	KindHafted     Kind = 21
	KindPolearm    Kind = 22
	KindSword      Kind = 23
	KindDigging    Kind = 25
	KindBoots      Kind = 30
	KindGloves     Kind = 31
	KindCloak      Kind = 32
	KindHelm       Kind = 33
	KindShield     Kind = 34
	KindHardArmor  Kind = 35
	KindSoftArmor  Kind = 36
	KindAmulet     Kind = 40
	KindRing       Kind = 45
	KindStaff      Kind = 55
	KindWand       Kind = 65
	KindScroll     Kind = 70
	KindPotion     Kind = 75
	KindFlask      Kind = 77
	KindFood       Kind = 80
	KindMagicBook  Kind = 90
	KindPrayerBook Kind = 91
	KindGold       Kind = 100
	KindInvisTrap  Kind = 101
	KindVisTrap    Kind = 102
	KindRubble     Kind = 103
	KindOpenDoor   Kind = 104
	KindClosedDoor Kind = 105
	KindUpStair    Kind = 107
	KindDownStair  Kind = 108
	KindSecretDoor Kind = 109
	KindStoreDoor  Kind = 110
)

const (
	KindMaxPickUp  = KindGold
	KindMinVisible = KindVisTrap
	KindMinDoors   = KindOpenDoor
)

// Treasure is an object lying in the cave. Its position is not stored: the
// cell whose Tptr points at the record owns it.
type Treasure struct {
	Kind   Kind     `json:"tval"`
	Sub    uint8    `json:"subval"`
	Glyph  byte     `json:"tchar"`
	Index  uint16   `json:"index"` // object template id
	P1     int16    `json:"p1"`
	Cost   int32    `json:"cost"`
	Number uint8    `json:"number"`
	Weight uint16   `json:"weight"`
	ToHit  int16    `json:"tohit"`
	ToDam  int16    `json:"todam"`
	AC     int16    `json:"ac"`
	ToAC   int16    `json:"toac"`
	Damage [2]uint8 `json:"damage"`
	Level  uint8    `json:"level"`
}

// RemovalChance is the percent chance, per compaction pass, that an object
// of kind k beyond the distance threshold is removed. Stairs and shop
// entrances are never removed; traps, rubble and doors rarely.
func RemovalChance(k Kind) int {
	switch k {
	case KindVisTrap:
		return 15
	case KindInvisTrap, KindRubble, KindOpenDoor, KindClosedDoor:
		return 5
	case KindUpStair, KindDownStair, KindStoreDoor:
		return 0
	case KindSecretDoor:
		return 3
	default:
		return 10
	}
}

// Door reports whether the object is any kind of door.
func (t *Treasure) Door() bool {
	return t.Kind == KindOpenDoor || t.Kind == KindClosedDoor || t.Kind == KindSecretDoor
}
