package render

import (
	"fmt"

	"github.com/arcdex/arcdex/internal/entities/arc"
)

// ItemDetail renders the full multi-section breakdown of an item.
// Sections appear in a fixed order and are omitted when their source
// data is absent; Crafting and Salvage instead render an explicit
// "cannot be" notice, matching the reference database.
func ItemDetail(i arc.Item) []Section {
	sections := []Section{itemOverview(i)}

	if economy := itemEconomy(i); len(economy.Fields) > 0 {
		sections = append(sections, economy)
	}
	if i.Stats != nil && len(i.Stats.Keys()) > 0 {
		sections = append(sections, itemStats(i))
	}
	sections = append(sections, itemCrafting(i), itemSalvage(i))

	if len(i.Locations) > 0 {
		sections = append(sections, itemLocations(i))
	}
	if len(i.Vendors) > 0 {
		sections = append(sections, itemVendors(i))
	}
	if len(i.UsedIn) > 0 {
		sections = append(sections, itemUsedIn(i))
	}
	if i.Unlocks != "" {
		sections = append(sections, Section{Title: "🔓 Unlocks", Note: i.Unlocks})
	}

	return sections
}

func itemOverview(i arc.Item) Section {
	fields := []Field{
		{Label: "Category", Value: i.Category, Inline: true},
		{Label: "Type", Value: i.Subcategory, Inline: true},
		{Label: "Weight", Value: fmt.Sprintf("%g kg", i.Weight), Inline: true},
	}
	if i.StackSize > 0 {
		fields = append(fields, Field{Label: "Stack Size", Value: fmt.Sprintf("%d", i.StackSize), Inline: true})
	}

	return Section{Title: "📋 Overview", Note: i.Description, Fields: fields}
}

func itemEconomy(i arc.Item) Section {
	var fields []Field
	if i.SellPrice > 0 {
		fields = append(fields, Field{Label: "Sell Price", Value: FormatCredits(i.SellPrice), Inline: true})
	}
	if i.BuyPrice > 0 {
		fields = append(fields, Field{Label: "Buy Price", Value: FormatCredits(i.BuyPrice), Inline: true})
	}
	return Section{Title: "💰 Economy", Fields: fields}
}

func itemStats(i arc.Item) Section {
	keys := i.Stats.Keys()
	fields := make([]Field, 0, len(keys))
	for _, key := range keys {
		value, _ := i.Stats.Get(key)
		fields = append(fields, Field{Label: HumanizeKey(key), Value: statValue(value), Inline: true})
	}
	return Section{Title: "📊 Stats", Fields: fields}
}

func itemCrafting(i arc.Item) Section {
	if i.Crafting == nil || !i.Crafting.CanCraft {
		return Section{Title: "🔨 Crafting", Note: "This item cannot be crafted."}
	}

	entries := make([]Entry, 0, len(i.Crafting.Materials))
	for _, mat := range i.Crafting.Materials {
		entries = append(entries, Entry{Name: mat.Item, Value: fmt.Sprintf("×%d", mat.Quantity)})
	}

	return Section{
		Title: "🔨 Crafting",
		Fields: []Field{
			{Label: "Workbench", Value: i.Crafting.Workbench, Inline: true},
			{Label: "Craft Time", Value: fmt.Sprintf("%ds", i.Crafting.CraftTime), Inline: true},
		},
		List: entries,
	}
}

func itemSalvage(i arc.Item) Section {
	if i.Salvage == nil || !i.Salvage.CanSalvage {
		return Section{Title: "♻️ Salvage", Note: "This item cannot be salvaged."}
	}

	entries := make([]Entry, 0, len(i.Salvage.Yields))
	for _, y := range i.Salvage.Yields {
		entries = append(entries, Entry{
			Name:   y.Item,
			Detail: fmt.Sprintf("%d%% chance", y.Chance),
			Value:  fmt.Sprintf("×%d", y.Quantity),
		})
	}

	return Section{Title: "♻️ Salvage", Note: "Salvaging this item yields:", List: entries}
}

func itemLocations(i arc.Item) Section {
	entries := make([]Entry, 0, len(i.Locations))
	for _, loc := range i.Locations {
		entries = append(entries, Entry{Name: loc.Area, Detail: loc.Type, Value: loc.Rarity})
	}
	return Section{Title: "📍 Locations", Note: "Where to find this item:", List: entries}
}

func itemVendors(i arc.Item) Section {
	entries := make([]Entry, 0, len(i.Vendors))
	for _, v := range i.Vendors {
		entries = append(entries, Entry{
			Name:   v.Name,
			Detail: fmt.Sprintf("Stock: %d", v.Stock),
			Value:  FormatCredits(v.Price),
		})
	}
	return Section{Title: "🏪 Vendors", Note: "Available from:", List: entries}
}

func itemUsedIn(i arc.Item) Section {
	entries := make([]Entry, 0, len(i.UsedIn))
	for _, recipe := range i.UsedIn {
		entries = append(entries, Entry{Name: recipe})
	}
	return Section{Title: "🔧 Used In", Note: "This material is used to craft:", List: entries}
}

// WeaponDetail renders the full breakdown of a weapon.
func WeaponDetail(w arc.Weapon) []Section {
	return []Section{
		{
			Note: w.Description,
			Fields: []Field{
				{Label: "📊 Tier", Value: w.Tier.String(), Inline: true},
				{Label: "⭐ Rarity", Value: w.Rarity, Inline: true},
				{Label: "💥 Damage", Value: fmt.Sprintf("%d", w.Damage), Inline: true},
				{Label: "🔫 Magazine", Value: fmt.Sprintf("%d", w.Magazine), Inline: true},
				{Label: "🛡️ ARC Penetration", Value: w.ARCPenetration, Inline: true},
				{Label: "📏 Range", Value: w.Range, Inline: true},
				{Label: "⚔️ PvP Effectiveness", Value: w.PvPEffectiveness, Inline: true},
				{Label: "🤖 PvE Effectiveness", Value: w.PvEEffectiveness, Inline: true},
			},
		},
		{Title: "✅ Strengths", List: entryList(w.Strengths)},
		{Title: "❌ Weaknesses", List: entryList(w.Weaknesses)},
		{Title: "🎯 Best For", Note: w.BestFor},
	}
}

// EnemyDetail renders the full breakdown of an ARC machine.
func EnemyDetail(e arc.Enemy) []Section {
	return []Section{
		{
			Note: e.Description,
			Fields: []Field{
				{Label: "⚠️ Threat Level", Value: e.Threat.String(), Inline: true},
				{Label: "❤️ Health", Value: e.Health, Inline: true},
				{Label: "🛡️ Armor", Value: e.Armor, Inline: true},
			},
		},
		{Title: "⚡ Abilities", List: entryList(e.Abilities)},
		{Title: "❌ Weaknesses", List: entryList(e.Weaknesses)},
		{Title: "🎯 Tactics", List: entryList(e.Tactics)},
		{Title: "💰 Loot", Note: e.Loot},
	}
}

// BuildDetail renders the full breakdown of a loadout build.
func BuildDetail(b arc.Build) []Section {
	return []Section{
		{
			Note: b.Description,
			Fields: []Field{
				{Label: "📊 Difficulty", Value: b.Difficulty, Inline: true},
				{Label: "💰 Cost", Value: b.Cost, Inline: true},
				{Label: "🎮 Playstyle", Value: b.Playstyle, Inline: true},
				{Label: "🔫 Primary Weapon", Value: b.PrimaryWeapon, Inline: true},
				{Label: "🔫 Secondary Weapon", Value: b.SecondaryWeapon, Inline: true},
				{Label: "💵 Estimated Cost", Value: fmt.Sprintf("%s credits", FormatNumber(b.EstimatedCost)), Inline: true},
				{Label: "🛡️ Armor", Value: b.Armor, Inline: true},
				{Label: "⚡ Shield", Value: b.Shield, Inline: true},
			},
		},
		{Title: "🎒 Gadgets", List: entryList(b.Gadgets)},
		{Title: "⚙️ Augments", List: entryList(b.Augments)},
		{Title: "✅ Strengths", List: entryList(b.Strengths)},
		{Title: "❌ Weaknesses", List: entryList(b.Weaknesses)},
		{Title: "🎯 Tactics", List: entryList(b.Tactics)},
	}
}

// GadgetDetail renders the full breakdown of a gadget.
func GadgetDetail(g arc.Gadget) []Section {
	return []Section{
		{
			Note: g.Description,
			Fields: []Field{
				{Label: "⭐ Rarity", Value: g.Rarity, Inline: true},
				{Label: "💰 Cost", Value: fmt.Sprintf("%s credits", FormatNumber(g.Cost)), Inline: true},
				{Label: "📦 Stack Size", Value: fmt.Sprintf("%d", g.StackSize), Inline: true},
			},
		},
		{Title: "⚡ Effect", Note: g.Effect},
		{Title: "💡 Tips", List: entryList(g.Tips)},
	}
}

// GuideDetail renders a strategy guide as one section per heading.
func GuideDetail(g arc.Guide) []Section {
	sections := make([]Section, 0, len(g.Sections))
	for _, part := range g.Sections {
		sections = append(sections, Section{Title: part.Heading, Note: part.Content})
	}
	return sections
}

func entryList(values []string) []Entry {
	entries := make([]Entry, 0, len(values))
	for _, v := range values {
		entries = append(entries, Entry{Name: v})
	}
	return entries
}
