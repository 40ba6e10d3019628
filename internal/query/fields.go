package query

import "github.com/arcdex/arcdex/internal/entities/arc"

// Per-domain field extractors. These fix the searchable field set for
// each collection:
//
//	weapons: name, description, type
//	enemies: name, description, type
//	builds:  name, description
//	gadgets: name, description, category
//	items:   name, description, category
//
// The discrete filter fields (category/tier/rarity) are only populated
// where the domain carries that vocabulary.

// WeaponFields projects a weapon for matching. The weapon's type plays
// the category role.
func WeaponFields(w arc.Weapon) Fields {
	return Fields{
		ID:          w.ID,
		Name:        w.Name,
		Category:    w.Type,
		Tier:        w.Tier.String(),
		Rarity:      w.Rarity,
		Description: w.Description,
	}
}

// EnemyFields projects an enemy for matching. The enemy's type plays the
// category role; threat has no exact-filter counterpart.
func EnemyFields(e arc.Enemy) Fields {
	return Fields{
		ID:          e.ID,
		Name:        e.Name,
		Category:    e.Type,
		Description: e.Description,
	}
}

// BuildFields projects a build for matching. Builds search on name and
// description only, so no category is populated.
func BuildFields(b arc.Build) Fields {
	return Fields{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
	}
}

// GadgetFields projects a gadget for matching.
func GadgetFields(g arc.Gadget) Fields {
	return Fields{
		ID:          g.ID,
		Name:        g.Name,
		Category:    g.Category,
		Rarity:      g.Rarity,
		Description: g.Description,
	}
}

// ItemFields projects an item for matching.
func ItemFields(i arc.Item) Fields {
	return Fields{
		ID:          i.ID,
		Name:        i.Name,
		Category:    i.Category,
		Tier:        i.Tier.String(),
		Rarity:      i.Rarity,
		Description: i.Description,
	}
}
