package dungeon

import "moria-kernel/internal/domain"

// WinMonsterCount is the number of win species at the end of Creatures.
const WinMonsterCount = 2

const (
	townFlags   = domain.MoveNormal | domain.MoveRandom20
	walkerFlags = domain.MoveNormal
	moldFlags   = domain.MoveAttackOnly
)

// --- CREATURES ---

// Creatures is the default species table: the town tier, then the dungeon
// tiers in level order, then the win species. Species ids are indices into
// this slice and are written into save files, so entries may only be
// appended within a tier.
var Creatures = []domain.Species{
	// Town
	{Name: "Filthy Street Urchin", Move: townFlags, Exp: 0, Sleep: 40, Perception: 4, AC: 1, Speed: 11, Glyph: 'p', HitDice: [2]uint8{1, 4}, Level: 0},
	{Name: "Scrawny Cat", Move: townFlags, Defense: domain.DefenseAnimal, Exp: 0, Sleep: 10, Perception: 30, AC: 1, Speed: 11, Glyph: 'f', HitDice: [2]uint8{1, 2}, Level: 0},
	{Name: "Scruffy Little Dog", Move: townFlags, Defense: domain.DefenseAnimal, Exp: 0, Sleep: 5, Perception: 20, AC: 1, Speed: 11, Glyph: 'C', HitDice: [2]uint8{1, 3}, Level: 0},
	{Name: "Blubbering Idiot", Move: townFlags, Exp: 0, Sleep: 0, Perception: 6, AC: 1, Speed: 11, Glyph: 'p', HitDice: [2]uint8{1, 2}, Level: 0},
	{Name: "Pitiful Looking Wretch", Move: townFlags, Exp: 0, Sleep: 10, Perception: 10, AC: 1, Speed: 11, Glyph: 'p', HitDice: [2]uint8{1, 1}, Level: 0},
	{Name: "Aimless Looking Merchant", Move: townFlags | domain.MoveCarryGold, Exp: 0, Sleep: 10, Perception: 10, AC: 1, Speed: 11, Glyph: 'p', HitDice: [2]uint8{3, 3}, Level: 0},
	{Name: "Singing, Happy Drunk", Move: townFlags | domain.MoveCarryGold, Exp: 0, Sleep: 0, Perception: 10, AC: 1, Speed: 11, Glyph: 'p', HitDice: [2]uint8{2, 3}, Level: 0},
	{Name: "Battle Scarred Veteran", Move: townFlags | domain.MoveCarryGold, Exp: 6, Sleep: 250, Perception: 10, AC: 30, Speed: 11, Glyph: 'p', HitDice: [2]uint8{7, 8}, Level: 0},

	// Level 1
	{Name: "Grey Mold", Move: moldFlags, Defense: domain.DefenseStone | domain.DefenseNoSleep, Exp: 3, Sleep: 0, Perception: 2, AC: 1, Speed: 11, Glyph: 'm', HitDice: [2]uint8{28, 8}, Level: 1},
	{Name: "Grey Mushroom Patch", Move: moldFlags, Defense: domain.DefenseNoSleep, Exp: 1, Sleep: 0, Perception: 2, AC: 1, Speed: 11, Glyph: ',', HitDice: [2]uint8{1, 2}, Level: 1},
	{Name: "Giant Yellow Centipede", Move: walkerFlags, Defense: domain.DefenseAnimal, Exp: 2, Sleep: 30, Perception: 8, AC: 12, Speed: 11, Glyph: 'c', HitDice: [2]uint8{3, 5}, Level: 1},
	{Name: "Giant White Centipede", Move: walkerFlags | domain.MoveRandom40, Defense: domain.DefenseAnimal, Exp: 6, Sleep: 40, Perception: 7, AC: 10, Speed: 11, Glyph: 'c', HitDice: [2]uint8{3, 5}, Level: 1},
	{Name: "White Icky-Thing", Move: walkerFlags | domain.MoveRandom40, Exp: 1, Sleep: 10, Perception: 12, AC: 7, Speed: 11, Glyph: 'i', HitDice: [2]uint8{3, 5}, Level: 1},
	{Name: "Clear Icky-Thing", Move: walkerFlags | domain.MoveRandom40 | domain.MoveInvisible, Exp: 2, Sleep: 10, Perception: 12, AC: 6, Speed: 11, Glyph: 'i', HitDice: [2]uint8{2, 5}, Level: 1},
	{Name: "Giant White Mouse", Move: walkerFlags | domain.MoveRandom75 | domain.MoveMultiply, Defense: domain.DefenseAnimal, Exp: 1, Sleep: 20, Perception: 8, AC: 4, Speed: 11, Glyph: 'r', HitDice: [2]uint8{1, 3}, Level: 1},
	{Name: "Large White Snake", Move: walkerFlags | domain.MoveRandom75, Defense: domain.DefenseAnimal, Exp: 2, Sleep: 99, Perception: 4, AC: 50, Speed: 10, Glyph: 'R', HitDice: [2]uint8{3, 4}, Level: 1},
	{Name: "Small Kobold", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 5, Sleep: 10, Perception: 20, AC: 16, Speed: 11, Glyph: 'k', HitDice: [2]uint8{2, 7}, Level: 1},
	{Name: "White Worm Mass", Move: walkerFlags | domain.MoveRandom75 | domain.MoveMultiply, Defense: domain.DefensePoison | domain.DefenseAnimal, Exp: 1, Sleep: 10, Perception: 7, AC: 1, Speed: 10, Glyph: 'w', HitDice: [2]uint8{1, 8}, Level: 1},
	{Name: "Floating Eye", Move: moldFlags, Defense: domain.DefenseAnimal | domain.DefenseNoSleep, Exp: 1, Sleep: 10, Perception: 2, AC: 6, Speed: 11, Glyph: 'e', HitDice: [2]uint8{11, 8}, Level: 1},
	{Name: "Rock Lizard", Move: walkerFlags, Defense: domain.DefenseAnimal, Exp: 2, Sleep: 15, Perception: 20, AC: 4, Speed: 11, Glyph: 'R', HitDice: [2]uint8{3, 4}, Level: 1},
	{Name: "Jackal", Move: walkerFlags, Defense: domain.DefenseAnimal, Exp: 1, Sleep: 10, Perception: 10, AC: 16, Speed: 11, Glyph: 'C', HitDice: [2]uint8{3, 8}, Level: 1},
	{Name: "Soldier Ant", Move: walkerFlags | domain.MoveRandom20, Defense: domain.DefenseAnimal, Exp: 1, Sleep: 10, Perception: 10, AC: 3, Speed: 11, Glyph: 'a', HitDice: [2]uint8{2, 5}, Level: 1},

	// Level 2
	{Name: "Shrieker Mushroom Patch", Move: moldFlags, Defense: domain.DefenseNoSleep, Exp: 1, Sleep: 0, Perception: 2, AC: 1, Speed: 11, Glyph: ',', HitDice: [2]uint8{1, 1}, Level: 2},
	{Name: "Blubbering Icky-Thing", Move: walkerFlags | domain.MoveRandom40 | domain.MovePicksUp, Defense: domain.DefensePoison, Exp: 8, Sleep: 10, Perception: 14, AC: 4, Speed: 11, Glyph: 'i', HitDice: [2]uint8{5, 6}, Level: 2},
	{Name: "Metallic Green Centipede", Move: walkerFlags | domain.MoveRandom40, Defense: domain.DefenseAnimal, Exp: 3, Sleep: 10, Perception: 5, AC: 4, Speed: 12, Glyph: 'c', HitDice: [2]uint8{4, 4}, Level: 2},
	{Name: "Novice Warrior", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Exp: 6, Sleep: 5, Perception: 20, AC: 16, Speed: 11, Glyph: 'p', HitDice: [2]uint8{9, 8}, Level: 2},
	{Name: "Novice Rogue", Move: walkerFlags | domain.MoveCarryGold | domain.MovePicksUp, Defense: domain.DefenseEvil, Exp: 6, Sleep: 5, Perception: 20, AC: 12, Speed: 11, Glyph: 'p', HitDice: [2]uint8{8, 8}, Level: 2},
	{Name: "Novice Priest", Move: walkerFlags | domain.MoveCarryGold, Exp: 7, Sleep: 5, Perception: 20, AC: 10, Speed: 11, Glyph: 'p', HitDice: [2]uint8{7, 8}, Level: 2},
	{Name: "Novice Mage", Move: walkerFlags | domain.MoveCarryGold, Exp: 7, Sleep: 5, Perception: 20, AC: 6, Speed: 11, Glyph: 'p', HitDice: [2]uint8{6, 8}, Level: 2},
	{Name: "White Jelly", Move: moldFlags, Defense: domain.DefensePoison | domain.DefenseNoSleep, Exp: 10, Sleep: 99, Perception: 2, AC: 1, Speed: 11, Glyph: 'J', HitDice: [2]uint8{8, 8}, Level: 2},
	{Name: "Giant Green Frog", Move: walkerFlags | domain.MoveRandom20, Defense: domain.DefenseAnimal, Exp: 6, Sleep: 0, Perception: 12, AC: 8, Speed: 11, Glyph: 'R', HitDice: [2]uint8{2, 8}, Level: 2},
	{Name: "White Harpy", Move: walkerFlags | domain.MoveRandom40, Defense: domain.DefenseAnimal | domain.DefenseEvil, Exp: 5, Sleep: 10, Perception: 16, AC: 17, Speed: 11, Glyph: 'H', HitDice: [2]uint8{2, 5}, Level: 2},
	{Name: "Blue Yeek", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseAnimal, Exp: 1, Sleep: 10, Perception: 18, AC: 14, Speed: 11, Glyph: 'y', HitDice: [2]uint8{2, 6}, Level: 2},

	// Level 3
	{Name: "Green Worm Mass", Move: walkerFlags | domain.MoveRandom75 | domain.MoveMultiply, Defense: domain.DefenseAcid | domain.DefenseAnimal, Exp: 3, Sleep: 10, Perception: 4, AC: 3, Speed: 10, Glyph: 'w', HitDice: [2]uint8{6, 4}, Level: 3},
	{Name: "Large Black Snake", Move: walkerFlags | domain.MoveRandom75, Defense: domain.DefenseAnimal, Exp: 9, Sleep: 75, Perception: 5, AC: 38, Speed: 10, Glyph: 'R', HitDice: [2]uint8{4, 8}, Level: 3},
	{Name: "Cave Spider", Move: walkerFlags | domain.MoveMultiply, Defense: domain.DefenseAnimal, Exp: 1, Sleep: 80, Perception: 8, AC: 16, Speed: 12, Glyph: 'S', HitDice: [2]uint8{1, 4}, Level: 3},
	{Name: "Wild Dog", Move: walkerFlags, Defense: domain.DefenseAnimal, Exp: 1, Sleep: 20, Perception: 15, AC: 3, Speed: 11, Glyph: 'C', HitDice: [2]uint8{1, 5}, Level: 3},
	{Name: "Yellow Jelly", Move: moldFlags, Defense: domain.DefensePoison | domain.DefenseNoSleep, Exp: 12, Sleep: 99, Perception: 2, AC: 1, Speed: 11, Glyph: 'J', HitDice: [2]uint8{10, 8}, Level: 3},
	{Name: "Poltergeist", Move: walkerFlags | domain.MoveRandom75 | domain.MovePhase | domain.MoveInvisible, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefenseNoSleep, Exp: 8, Sleep: 10, Perception: 8, AC: 15, Speed: 13, Glyph: 'G', HitDice: [2]uint8{2, 5}, Level: 3},
	{Name: "Kobold", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 5, Sleep: 10, Perception: 20, AC: 16, Speed: 11, Glyph: 'k', HitDice: [2]uint8{3, 7}, Level: 3},

	// Level 4
	{Name: "Green Naga", Move: walkerFlags | domain.MoveRandom20 | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 30, Sleep: 120, Perception: 18, AC: 40, Speed: 11, Glyph: 'n', HitDice: [2]uint8{6, 8}, Level: 4},
	{Name: "Blue Jelly", Move: moldFlags, Defense: domain.DefenseFrost | domain.DefenseNoSleep, Exp: 14, Sleep: 99, Perception: 2, AC: 1, Speed: 11, Glyph: 'J', HitDice: [2]uint8{12, 8}, Level: 4},
	{Name: "Disenchanter Eye", Move: moldFlags, Defense: domain.DefenseAnimal | domain.DefenseNoSleep, Exp: 20, Sleep: 10, Perception: 2, AC: 10, Speed: 10, Glyph: 'e', HitDice: [2]uint8{7, 8}, Level: 4},

	// Level 5
	{Name: "Skeleton Kobold", Move: walkerFlags, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep, Exp: 12, Sleep: 40, Perception: 20, AC: 26, Speed: 11, Glyph: 's', HitDice: [2]uint8{5, 8}, Level: 5},
	{Name: "Large Kobold", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 13, Sleep: 30, Perception: 20, AC: 32, Speed: 11, Glyph: 'k', HitDice: [2]uint8{13, 9}, Level: 5},
	{Name: "Cave Bear", Move: walkerFlags, Defense: domain.DefenseAnimal, Exp: 9, Sleep: 10, Perception: 10, AC: 35, Speed: 11, Glyph: 'q', HitDice: [2]uint8{8, 8}, Level: 5},

	// Level 6
	{Name: "Kobold Archer", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 24, Sleep: 20, Perception: 20, AC: 24, Speed: 11, Glyph: 'k', HitDice: [2]uint8{12, 8}, Level: 6},
	{Name: "Giant Salamander", Move: walkerFlags | domain.MoveRandom20, Defense: domain.DefenseFire | domain.DefenseAnimal, Exp: 50, Sleep: 40, Perception: 6, AC: 40, Speed: 11, Glyph: 'R', HitDice: [2]uint8{6, 7}, Level: 6},

	// Level 7
	{Name: "Moaning Spirit", Move: walkerFlags | domain.MoveRandom20 | domain.MovePhase | domain.MoveInvisible, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefenseNoSleep, Exp: 44, Sleep: 10, Perception: 14, AC: 20, Speed: 11, Glyph: 'G', HitDice: [2]uint8{7, 8}, Level: 7},
	{Name: "Snaga", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseLight, Exp: 10, Sleep: 30, Perception: 20, AC: 32, Speed: 11, Glyph: 'o', HitDice: [2]uint8{8, 8}, Level: 7},

	// Level 8
	{Name: "Cave Orc", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseLight, Exp: 30, Sleep: 30, Perception: 20, AC: 36, Speed: 11, Glyph: 'o', HitDice: [2]uint8{11, 10}, Level: 8},
	{Name: "Black Orc", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseLight, Exp: 13, Sleep: 20, Perception: 20, AC: 36, Speed: 11, Glyph: 'o', HitDice: [2]uint8{12, 10}, Level: 8},

	// Level 9
	{Name: "Baby Blue Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefenseMaxHP, Exp: 300, Sleep: 70, Perception: 20, AC: 30, Speed: 11, Glyph: 'd', HitDice: [2]uint8{88, 1}, Level: 9},
	{Name: "Baby White Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefenseFrost | domain.DefenseMaxHP, Exp: 300, Sleep: 70, Perception: 20, AC: 30, Speed: 11, Glyph: 'd', HitDice: [2]uint8{88, 1}, Level: 9},
	{Name: "Zombified Orc", Move: walkerFlags, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep, Exp: 30, Sleep: 25, Perception: 20, AC: 24, Speed: 11, Glyph: 'z', HitDice: [2]uint8{11, 8}, Level: 9},

	// Level 10
	{Name: "Baby Green Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefensePoison | domain.DefenseMaxHP, Exp: 300, Sleep: 70, Perception: 20, AC: 30, Speed: 11, Glyph: 'd', HitDice: [2]uint8{88, 1}, Level: 10},
	{Name: "Ogre", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 50, Sleep: 30, Perception: 20, AC: 33, Speed: 11, Glyph: 'O', HitDice: [2]uint8{13, 10}, Level: 10},
	{Name: "Warg", Move: walkerFlags | domain.MoveRandom20, Defense: domain.DefenseAnimal | domain.DefenseEvil, Exp: 40, Sleep: 40, Perception: 20, AC: 20, Speed: 12, Glyph: 'C', HitDice: [2]uint8{8, 8}, Level: 10},

	// Level 11
	{Name: "Skeleton Human", Move: walkerFlags, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep, Exp: 38, Sleep: 30, Perception: 20, AC: 30, Speed: 11, Glyph: 's', HitDice: [2]uint8{12, 8}, Level: 11},
	{Name: "Orc Captain", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 40, Sleep: 10, Perception: 20, AC: 59, Speed: 11, Glyph: 'o', HitDice: [2]uint8{20, 10}, Level: 11},

	// Level 12
	{Name: "Hill Giant", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 60, Sleep: 50, Perception: 20, AC: 36, Speed: 11, Glyph: 'P', HitDice: [2]uint8{16, 10}, Level: 12},
	{Name: "Gnome Mage", Move: walkerFlags | domain.MoveRandom20 | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 38, Sleep: 10, Perception: 18, AC: 20, Speed: 11, Glyph: 'h', HitDice: [2]uint8{7, 8}, Level: 12},

	// Level 13
	{Name: "Baby Black Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefenseAcid | domain.DefenseMaxHP, Exp: 300, Sleep: 70, Perception: 20, AC: 30, Speed: 11, Glyph: 'd', HitDice: [2]uint8{88, 1}, Level: 13},
	{Name: "Frost Giant", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseFrost, Exp: 75, Sleep: 50, Perception: 20, AC: 38, Speed: 11, Glyph: 'P', HitDice: [2]uint8{17, 10}, Level: 13},

	// Level 14
	{Name: "Baby Red Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefenseFire | domain.DefenseMaxHP, Exp: 300, Sleep: 70, Perception: 20, AC: 30, Speed: 11, Glyph: 'd', HitDice: [2]uint8{88, 1}, Level: 14},
	{Name: "Ghoul", Move: walkerFlags | domain.MoveOpenDoor, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep, Exp: 95, Sleep: 20, Perception: 20, AC: 30, Speed: 11, Glyph: 'z', HitDice: [2]uint8{15, 9}, Level: 14},

	// Level 15
	{Name: "Fire Giant", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseFire, Exp: 54, Sleep: 50, Perception: 20, AC: 40, Speed: 11, Glyph: 'P', HitDice: [2]uint8{20, 8}, Level: 15},
	{Name: "Wererat", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseAnimal | domain.DefenseEvil, Exp: 45, Sleep: 10, Perception: 10, AC: 10, Speed: 11, Glyph: 'r', HitDice: [2]uint8{20, 8}, Level: 15},

	// Level 16
	{Name: "Stone Troll", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseLight, Exp: 85, Sleep: 40, Perception: 20, AC: 40, Speed: 11, Glyph: 'T', HitDice: [2]uint8{23, 10}, Level: 16},

	// Level 17
	{Name: "Cave Troll", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil | domain.DefenseLight, Exp: 350, Sleep: 50, Perception: 20, AC: 50, Speed: 11, Glyph: 'T', HitDice: [2]uint8{24, 12}, Level: 17},
	{Name: "Grave Wight", Move: walkerFlags | domain.MoveCarryObj | domain.MoveCarryGold, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep, Exp: 325, Sleep: 30, Perception: 20, AC: 35, Speed: 11, Glyph: 'W', HitDice: [2]uint8{12, 10}, Level: 17},

	// Level 18
	{Name: "Young Blue Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefenseMaxHP, Exp: 300, Sleep: 70, Perception: 20, AC: 50, Speed: 11, Glyph: 'd', HitDice: [2]uint8{27, 10}, Level: 18},
	{Name: "Olog", Move: walkerFlags | domain.MoveCarryGold, Defense: domain.DefenseEvil, Exp: 450, Sleep: 35, Perception: 20, AC: 50, Speed: 11, Glyph: 'T', HitDice: [2]uint8{42, 10}, Level: 18},

	// Level 19
	{Name: "Young Green Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefensePoison | domain.DefenseMaxHP, Exp: 290, Sleep: 70, Perception: 20, AC: 60, Speed: 11, Glyph: 'd', HitDice: [2]uint8{27, 10}, Level: 19},
	{Name: "Barrow Wight", Move: walkerFlags | domain.MoveCarryObj | domain.MoveCarryGold, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep, Exp: 375, Sleep: 10, Perception: 20, AC: 40, Speed: 11, Glyph: 'W', HitDice: [2]uint8{13, 10}, Level: 19},

	// Level 20
	{Name: "Vampire", Move: walkerFlags | domain.MoveCarryObj | domain.MoveCarryGold, Defense: domain.DefenseUndead | domain.DefenseEvil | domain.DefensePoison | domain.DefenseNoSleep | domain.DefenseLight, Exp: 175, Sleep: 10, Perception: 20, AC: 45, Speed: 11, Glyph: 'V', HitDice: [2]uint8{25, 12}, Level: 20},
	{Name: "Young Red Dragon", Move: walkerFlags | domain.MoveCarryGold | domain.MoveCarryObj, Defense: domain.DefenseDragon | domain.DefenseEvil | domain.DefenseFire | domain.DefenseMaxHP, Exp: 640, Sleep: 70, Perception: 20, AC: 60, Speed: 11, Glyph: 'd', HitDice: [2]uint8{29, 10}, Level: 20},

	// Win species
	{Name: "Evil Iggy", Move: walkerFlags | domain.MoveOpenDoor | domain.MoveCarryGold | domain.MoveCarryObj | domain.MoveWin, Defense: domain.DefenseEvil | domain.DefenseNoSleep | domain.DefenseMaxHP, Exp: 18000, Sleep: 0, Perception: 30, AC: 80, Speed: 12, Glyph: 'p', HitDice: [2]uint8{60, 40}, Level: 100},
	{Name: "The Balrog", Move: walkerFlags | domain.MoveOpenDoor | domain.MoveCarryObj | domain.MoveWin, Defense: domain.DefenseEvil | domain.DefenseFire | domain.DefenseNoSleep | domain.DefenseInfra | domain.DefenseMaxHP, Exp: 55000, Sleep: 0, Perception: 40, AC: 125, Speed: 13, Glyph: 'B', HitDice: [2]uint8{75, 40}, Level: 100},
}

// Bestiary indexes the default creature table.
func Bestiary() (*domain.Bestiary, error) {
	return domain.NewBestiary(Creatures, WinMonsterCount)
}

// --- OBJECTS ---

// ObjectTemplate describes a kind of object the generator can put on the
// floor.
type ObjectTemplate struct {
	Name   string
	Kind   domain.Kind
	Sub    uint8
	Glyph  byte
	Weight uint16
	Cost   int32
	Damage [2]uint8
	AC     int16
	Level  uint8
}

// Dungeon features. They are objects so that a cell can hold at most one
// of them, and so that compaction can weigh them against loot.
var (
	OpenDoor   = ObjectTemplate{Name: "an open door", Kind: domain.KindOpenDoor, Sub: 1, Glyph: '\''}
	ClosedDoor = ObjectTemplate{Name: "a closed door", Kind: domain.KindClosedDoor, Sub: 19, Glyph: '+'}
	SecretDoor = ObjectTemplate{Name: "a secret door", Kind: domain.KindSecretDoor, Sub: 19, Glyph: '#'}
	UpStair    = ObjectTemplate{Name: "an up staircase", Kind: domain.KindUpStair, Sub: 1, Glyph: '<'}
	DownStair  = ObjectTemplate{Name: "a down staircase", Kind: domain.KindDownStair, Sub: 1, Glyph: '>'}
	Rubble     = ObjectTemplate{Name: "some rubble", Kind: domain.KindRubble, Sub: 1, Glyph: ':'}
	StoreDoor  = ObjectTemplate{Name: "the entrance to a store", Kind: domain.KindStoreDoor, Sub: 101, Glyph: '1'}
	Pit        = ObjectTemplate{Name: "an open pit", Kind: domain.KindInvisTrap, Sub: 1, Glyph: ' ', Damage: [2]uint8{2, 6}}
	Rockfall   = ObjectTemplate{Name: "a rockfall trap", Kind: domain.KindVisTrap, Sub: 12, Glyph: '^', Damage: [2]uint8{2, 6}}
)

// ItemTemplates are the loose items scattered through a level.
var ItemTemplates = map[string]ObjectTemplate{
	"gold":         {Name: "copper", Kind: domain.KindGold, Sub: 1, Glyph: '$', Cost: 3},
	"dagger":       {Name: "Dagger (Main Gauche)", Kind: domain.KindSword, Sub: 1, Glyph: '|', Weight: 30, Cost: 25, Damage: [2]uint8{1, 5}},
	"short_sword":  {Name: "Short Sword", Kind: domain.KindSword, Sub: 7, Glyph: '|', Weight: 80, Cost: 90, Damage: [2]uint8{1, 7}, Level: 4},
	"mace":         {Name: "Mace", Kind: domain.KindHafted, Sub: 4, Glyph: '\\', Weight: 120, Cost: 130, Damage: [2]uint8{2, 4}, Level: 4},
	"soft_leather": {Name: "Soft Leather Armor", Kind: domain.KindSoftArmor, Sub: 2, Glyph: '(', Weight: 80, Cost: 18, AC: 8, Level: 3},
	"chain_mail":   {Name: "Metal Scale Mail", Kind: domain.KindHardArmor, Sub: 1, Glyph: '[', Weight: 250, Cost: 550, AC: 38, Level: 15},
	"torch":        {Name: "Wooden Torch", Kind: domain.KindLight, Sub: 13, Glyph: '~', Weight: 30, Cost: 1},
	"cure_light":   {Name: "Cure Light Wounds", Kind: domain.KindPotion, Sub: 3, Glyph: '!', Weight: 4, Cost: 20, Level: 1},
	"ration":       {Name: "Ration of Food", Kind: domain.KindFood, Sub: 90, Glyph: ',', Weight: 10, Cost: 3},
	"phase_door":   {Name: "Phase Door", Kind: domain.KindScroll, Sub: 8, Glyph: '?', Weight: 5, Cost: 15, Level: 1},
	"flask_oil":    {Name: "Flask of Oil", Kind: domain.KindFlask, Sub: 64, Glyph: '!', Weight: 10, Cost: 3, Damage: [2]uint8{2, 6}, Level: 1},
}
