package render

import (
	"fmt"

	"github.com/arcdex/arcdex/internal/entities/arc"
)

// Card is the bounded summary rendering of one record for list views:
// name, a tier/rarity/threat badge, the record's category, a truncated
// description, and a one-line headline (price or headline stat).
type Card struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Badge       string `json:"badge"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Headline    string `json:"headline"`
}

// WeaponCard summarizes a weapon for list views and select menus.
func WeaponCard(w arc.Weapon) Card {
	return Card{
		ID:          w.ID,
		Name:        w.Name,
		Badge:       fmt.Sprintf("%s-Tier", w.Tier),
		Category:    w.Type,
		Description: Truncate(w.Description),
		Headline:    fmt.Sprintf("%d DMG | %d MAG | %s", w.Damage, w.Magazine, w.Rarity),
	}
}

// EnemyCard summarizes an enemy for list views.
func EnemyCard(e arc.Enemy) Card {
	return Card{
		ID:          e.ID,
		Name:        e.Name,
		Badge:       fmt.Sprintf("%s Threat", e.Threat),
		Category:    e.Type,
		Description: Truncate(e.Description),
		Headline:    e.Type,
	}
}

// BuildCard summarizes a build for list views and select menus.
func BuildCard(b arc.Build) Card {
	return Card{
		ID:          b.ID,
		Name:        b.Name,
		Badge:       b.Difficulty,
		Category:    b.Playstyle,
		Description: Truncate(b.Description),
		Headline:    fmt.Sprintf("%s + %s | %s credits", b.PrimaryWeapon, b.SecondaryWeapon, FormatNumber(b.EstimatedCost)),
	}
}

// GadgetCard summarizes a gadget for list views.
func GadgetCard(g arc.Gadget) Card {
	return Card{
		ID:          g.ID,
		Name:        g.Name,
		Badge:       g.Rarity,
		Category:    g.Category,
		Description: Truncate(g.Description),
		Headline:    fmt.Sprintf("%s | %s credits", g.Effect, FormatNumber(g.Cost)),
	}
}

// ItemCard summarizes an item for the browser grid. Prices absent from
// the record render as "N/A" rather than zero.
func ItemCard(i arc.Item) Card {
	headline := "N/A"
	if i.SellPrice > 0 {
		headline = FormatCredits(i.SellPrice)
	}

	return Card{
		ID:          i.ID,
		Name:        i.Name,
		Badge:       fmt.Sprintf("%s-Tier", i.Tier),
		Category:    fmt.Sprintf("%s • %s", i.Category, i.Subcategory),
		Description: Truncate(i.Description),
		Headline:    headline,
	}
}
