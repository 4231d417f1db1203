package dungeon

import "moria-kernel/internal/domain"

// Treasure returns a floor record for the template.
func (t ObjectTemplate) Treasure() domain.Treasure {
	return domain.Treasure{
		Kind:   t.Kind,
		Sub:    t.Sub,
		Glyph:  t.Glyph,
		Number: 1,
		Weight: t.Weight,
		Cost:   t.Cost,
		Damage: t.Damage,
		AC:     t.AC,
		Level:  t.Level,
	}
}

// Enchantable reports whether the template is a weapon or armour that can
// carry magical bonuses.
func (t ObjectTemplate) Enchantable() bool {
	switch t.Kind {
	case domain.KindSword, domain.KindHafted, domain.KindPolearm, domain.KindBow:
		return true
	case domain.KindSoftArmor, domain.KindHardArmor, domain.KindShield, domain.KindHelm,
		domain.KindBoots, domain.KindGloves, domain.KindCloak:
		return true
	}
	return false
}
