// Package codex implements the codex orchestrator over the loaded
// reference dataset.
package codex

import (
	"context"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/arcdex/arcdex/internal/dataset"
	"github.com/arcdex/arcdex/internal/entities/arc"
	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/query"
	"github.com/arcdex/arcdex/internal/render"
	"github.com/arcdex/arcdex/internal/services/codex"
)

// Tip list bounds for the enemy and build overviews.
const (
	maxGeneralTips = 5
	maxBuildTips   = 4
)

// Config holds the dependencies for the codex orchestrator
type Config struct {
	Store *dataset.Store

	// RandIntN picks a random index in [0, n). Leave nil for the
	// default source; override for deterministic tips in tests.
	RandIntN func(n int) int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Store == nil {
		vb.RequiredField("Store")
	}

	return vb.Build()
}

// Orchestrator implements the codex.Service interface
type Orchestrator struct {
	store    *dataset.Store
	randIntN func(n int) int
}

// New creates a new codex orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	randIntN := cfg.RandIntN
	if randIntN == nil {
		randIntN = rand.IntN
	}

	return &Orchestrator{
		store:    cfg.Store,
		randIntN: randIntN,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ codex.Service = (*Orchestrator)(nil)

// Weapon operations

// GetWeapon resolves a weapon token to its full detail rendering
func (o *Orchestrator) GetWeapon(ctx context.Context, input *codex.GetWeaponInput) (*codex.GetWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument("token is required")
	}

	weapon, ok := query.Lookup(o.store.Weapons, input.Token, query.WeaponFields)
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", input.Token)
	}

	return &codex.GetWeaponOutput{
		Weapon:   weapon,
		Sections: render.WeaponDetail(weapon),
		Color:    render.TierColor(weapon.Tier),
	}, nil
}

// ListWeapons lists weapons, optionally narrowed by a tier letter or a
// fuzzy category token. An unrecognized non-empty filter is an error.
func (o *Orchestrator) ListWeapons(ctx context.Context, input *codex.ListWeaponsInput) (*codex.ListWeaponsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Filter == "" {
		return &codex.ListWeaponsOutput{
			Title:   "All Weapons",
			Weapons: o.store.Weapons,
			Cards:   weaponCards(o.store.Weapons),
		}, nil
	}

	if tier, ok := arc.TierFromString(input.Filter); ok {
		weapons := query.Filter(o.store.Weapons, query.Spec{Tier: tier.String()}, query.WeaponFields)
		return &codex.ListWeaponsOutput{
			Title:   "Tier " + tier.String() + " Weapons",
			Weapons: weapons,
			Cards:   weaponCards(weapons),
		}, nil
	}

	group, ok := query.ResolveCategory(o.store.WeaponCategories, input.Filter)
	if !ok {
		return nil, errors.InvalidArgumentf("unrecognized weapon filter %q", input.Filter)
	}

	weapons := o.weaponsByID(group.IDs)
	return &codex.ListWeaponsOutput{
		Title:   categoryTitle(group.Key),
		Weapons: weapons,
		Cards:   weaponCards(weapons),
	}, nil
}

// NavigateWeapon steps to the adjacent weapon in dataset order, wrapping
// at both ends
func (o *Orchestrator) NavigateWeapon(ctx context.Context, input *codex.NavigateWeaponInput) (*codex.NavigateWeaponOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var (
		weapon arc.Weapon
		ok     bool
	)
	switch input.Direction {
	case codex.DirectionNext:
		weapon, ok = query.Next(o.store.Weapons, input.CurrentID, query.WeaponFields)
	case codex.DirectionPrev:
		weapon, ok = query.Prev(o.store.Weapons, input.CurrentID, query.WeaponFields)
	default:
		return nil, errors.InvalidArgumentf("unknown direction %q", input.Direction)
	}
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", input.CurrentID)
	}

	return &codex.NavigateWeaponOutput{
		Weapon:   weapon,
		Sections: render.WeaponDetail(weapon),
		Color:    render.TierColor(weapon.Tier),
	}, nil
}

// Enemy operations

// GetEnemy resolves an enemy token to its full detail rendering
func (o *Orchestrator) GetEnemy(ctx context.Context, input *codex.GetEnemyInput) (*codex.GetEnemyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument("token is required")
	}

	enemy, ok := query.Lookup(o.store.Enemies, input.Token, query.EnemyFields)
	if !ok {
		return nil, errors.NotFoundf("enemy %q not found", input.Token)
	}

	return &codex.GetEnemyOutput{
		Enemy:    enemy,
		Sections: render.EnemyDetail(enemy),
		Color:    render.ThreatColor(enemy.Threat),
	}, nil
}

// ListEnemies lists every enemy plus a short block of general tips
func (o *Orchestrator) ListEnemies(ctx context.Context, input *codex.ListEnemiesInput) (*codex.ListEnemiesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cards := make([]render.Card, 0, len(o.store.Enemies))
	for _, e := range o.store.Enemies {
		cards = append(cards, render.EnemyCard(e))
	}

	return &codex.ListEnemiesOutput{
		Enemies: o.store.Enemies,
		Cards:   cards,
		Tips:    headOf(o.store.GeneralTips, maxGeneralTips),
	}, nil
}

// Build operations

// GetBuild resolves a build token to its full detail rendering
func (o *Orchestrator) GetBuild(ctx context.Context, input *codex.GetBuildInput) (*codex.GetBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument("token is required")
	}

	build, ok := query.Lookup(o.store.Builds, input.Token, query.BuildFields)
	if !ok {
		return nil, errors.NotFoundf("build %q not found", input.Token)
	}

	return &codex.GetBuildOutput{
		Build:    build,
		Sections: render.BuildDetail(build),
		Color:    render.ColorDefault,
	}, nil
}

// ListBuilds lists every build plus a short block of loadout tips
func (o *Orchestrator) ListBuilds(ctx context.Context, input *codex.ListBuildsInput) (*codex.ListBuildsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cards := make([]render.Card, 0, len(o.store.Builds))
	for _, b := range o.store.Builds {
		cards = append(cards, render.BuildCard(b))
	}

	return &codex.ListBuildsOutput{
		Builds: o.store.Builds,
		Cards:  cards,
		Tips:   headOf(o.store.BuildTips, maxBuildTips),
	}, nil
}

// Gadget operations

// GetGadget resolves a gadget token to its full detail rendering
func (o *Orchestrator) GetGadget(ctx context.Context, input *codex.GetGadgetInput) (*codex.GetGadgetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument("token is required")
	}

	gadget, ok := query.Lookup(o.store.Gadgets, input.Token, query.GadgetFields)
	if !ok {
		return nil, errors.NotFoundf("gadget %q not found", input.Token)
	}

	return &codex.GetGadgetOutput{
		Gadget:   gadget,
		Sections: render.GadgetDetail(gadget),
		Color:    render.ColorDefault,
	}, nil
}

// ListGadgets lists gadgets, narrowed by an exact category key when one
// is given. An unknown key falls back to the full listing.
func (o *Orchestrator) ListGadgets(ctx context.Context, input *codex.ListGadgetsInput) (*codex.ListGadgetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	categories := make([]string, 0, len(o.store.GadgetCategories))
	for _, g := range o.store.GadgetCategories {
		categories = append(categories, g.Key)
	}

	gadgets := o.store.Gadgets
	title := "All Gadgets"
	if input.Category != "" {
		for _, g := range o.store.GadgetCategories {
			if g.Key == input.Category {
				gadgets = o.gadgetsByID(g.IDs)
				title = categoryTitle(g.Key)
				break
			}
		}
	}

	cards := make([]render.Card, 0, len(gadgets))
	for _, g := range gadgets {
		cards = append(cards, render.GadgetCard(g))
	}

	return &codex.ListGadgetsOutput{
		Title:      title,
		Gadgets:    gadgets,
		Cards:      cards,
		Categories: categories,
	}, nil
}

// Guide and tip operations

// GetGuide resolves a guide by its exact topic key
func (o *Orchestrator) GetGuide(ctx context.Context, input *codex.GetGuideInput) (*codex.GetGuideOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Topic == "" {
		return nil, errors.InvalidArgument("topic is required")
	}

	guide, ok := o.store.GuideByTopic(input.Topic)
	if !ok {
		return nil, errors.NotFoundf("guide %q not found", input.Topic)
	}

	return &codex.GetGuideOutput{
		Topic:    input.Topic,
		Guide:    guide,
		Sections: render.GuideDetail(guide),
	}, nil
}

// ListGuides lists guide topics and titles in document order
func (o *Orchestrator) ListGuides(ctx context.Context, input *codex.ListGuidesInput) (*codex.ListGuidesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	summaries := make([]codex.GuideSummary, 0, len(o.store.Guides))
	for _, entry := range o.store.Guides {
		summaries = append(summaries, codex.GuideSummary{Topic: entry.Topic, Title: entry.Guide.Title})
	}

	return &codex.ListGuidesOutput{Guides: summaries}, nil
}

// RandomTip picks one quick tip at random
func (o *Orchestrator) RandomTip(ctx context.Context, input *codex.RandomTipInput) (*codex.RandomTipOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(o.store.QuickTips) == 0 {
		return nil, errors.NotFound("no quick tips available")
	}

	return &codex.RandomTipOutput{
		Tip: o.store.QuickTips[o.randIntN(len(o.store.QuickTips))],
	}, nil
}

// Cross-domain search

// Search matches the query against every collection. Results come back
// in a fixed domain order, capped for display; Total counts every match.
func (o *Orchestrator) Search(ctx context.Context, input *codex.SearchInput) (*codex.SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	spec := query.Spec{SearchText: input.Query}
	var results []codex.SearchResult

	for _, w := range query.Filter(o.store.Weapons, spec, query.WeaponFields) {
		results = append(results, codex.SearchResult{Domain: codex.DomainWeapons, Card: render.WeaponCard(w)})
	}
	for _, e := range query.Filter(o.store.Enemies, spec, query.EnemyFields) {
		results = append(results, codex.SearchResult{Domain: codex.DomainEnemies, Card: render.EnemyCard(e)})
	}
	for _, b := range query.Filter(o.store.Builds, spec, query.BuildFields) {
		results = append(results, codex.SearchResult{Domain: codex.DomainBuilds, Card: render.BuildCard(b)})
	}
	for _, g := range query.Filter(o.store.Gadgets, spec, query.GadgetFields) {
		results = append(results, codex.SearchResult{Domain: codex.DomainGadgets, Card: render.GadgetCard(g)})
	}
	for _, i := range query.Filter(o.store.Items, spec, query.ItemFields) {
		results = append(results, codex.SearchResult{Domain: codex.DomainItems, Card: render.ItemCard(i)})
	}

	total := len(results)
	if total > codex.MaxSearchResults {
		results = results[:codex.MaxSearchResults]
	}

	return &codex.SearchOutput{Results: results, Total: total}, nil
}

// Item browser operations

// ListItems applies the browser filter spec to the item collection
func (o *Orchestrator) ListItems(ctx context.Context, input *codex.ListItemsInput) (*codex.ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	items := query.Filter(o.store.Items, input.Spec, query.ItemFields)

	cards := make([]render.Card, 0, len(items))
	for _, i := range items {
		cards = append(cards, render.ItemCard(i))
	}

	return &codex.ListItemsOutput{
		Cards:    cards,
		Total:    len(o.store.Items),
		Filtered: len(items),
	}, nil
}

// GetItem resolves an item token to its full detail rendering
func (o *Orchestrator) GetItem(ctx context.Context, input *codex.GetItemInput) (*codex.GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Token == "" {
		return nil, errors.InvalidArgument("token is required")
	}

	item, ok := query.Lookup(o.store.Items, input.Token, query.ItemFields)
	if !ok {
		return nil, errors.NotFoundf("item %q not found", input.Token)
	}

	return &codex.GetItemOutput{
		Item:     item,
		Card:     render.ItemCard(item),
		Sections: render.ItemDetail(item),
	}, nil
}

// Suggest returns name completions for one domain
func (o *Orchestrator) Suggest(ctx context.Context, input *codex.SuggestInput) (*codex.SuggestOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var suggestions []query.Suggestion
	switch input.Domain {
	case codex.DomainWeapons:
		suggestions = query.Suggest(o.store.Weapons, input.Partial, query.WeaponFields)
	case codex.DomainEnemies:
		suggestions = query.Suggest(o.store.Enemies, input.Partial, query.EnemyFields)
	case codex.DomainBuilds:
		suggestions = query.Suggest(o.store.Builds, input.Partial, query.BuildFields)
	case codex.DomainGadgets:
		suggestions = query.Suggest(o.store.Gadgets, input.Partial, query.GadgetFields)
	case codex.DomainItems:
		suggestions = query.Suggest(o.store.Items, input.Partial, query.ItemFields)
	default:
		return nil, errors.InvalidArgumentf("unknown domain %q", input.Domain)
	}

	return &codex.SuggestOutput{Suggestions: suggestions}, nil
}

func (o *Orchestrator) weaponsByID(ids []string) []arc.Weapon {
	out := make([]arc.Weapon, 0, len(ids))
	for _, id := range ids {
		if w, ok := query.Lookup(o.store.Weapons, id, query.WeaponFields); ok {
			out = append(out, w)
		}
	}
	return out
}

func (o *Orchestrator) gadgetsByID(ids []string) []arc.Gadget {
	out := make([]arc.Gadget, 0, len(ids))
	for _, id := range ids {
		if g, ok := query.Lookup(o.store.Gadgets, id, query.GadgetFields); ok {
			out = append(out, g)
		}
	}
	return out
}

func weaponCards(weapons []arc.Weapon) []render.Card {
	cards := make([]render.Card, 0, len(weapons))
	for _, w := range weapons {
		cards = append(cards, render.WeaponCard(w))
	}
	return cards
}

func headOf(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

// categoryTitle turns a snake_case grouping key into a display title,
// e.g. "smg_weapons" -> "Smg Weapons".
func categoryTitle(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
