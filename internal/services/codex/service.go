// Package codex defines the interface for reference lookups. Both front
// ends (the browser API and the Discord bot) speak only to this
// interface; the implementation lives in the orchestrators package.
package codex

//go:generate mockgen -destination=mock/mock_service.go -package=codexmock github.com/arcdex/arcdex/internal/services/codex Service

import (
	"context"

	"github.com/arcdex/arcdex/internal/entities/arc"
	"github.com/arcdex/arcdex/internal/query"
	"github.com/arcdex/arcdex/internal/render"
)

// MaxSearchResults bounds the rendered cross-domain search results; the
// output still reports the full match count.
const MaxSearchResults = 20

// Domain identifies one record collection
type Domain string

// Record domains
const (
	DomainWeapons Domain = "weapons"
	DomainEnemies Domain = "enemies"
	DomainBuilds  Domain = "builds"
	DomainGadgets Domain = "gadgets"
	DomainItems   Domain = "items"
)

// IsValid checks if the domain is known
func (d Domain) IsValid() bool {
	switch d {
	case DomainWeapons, DomainEnemies, DomainBuilds, DomainGadgets, DomainItems:
		return true
	default:
		return false
	}
}

// Direction is a navigation direction over an ordered collection
type Direction string

// Navigation directions
const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// Service defines the interface for reference lookups
type Service interface {
	// Weapon operations
	GetWeapon(ctx context.Context, input *GetWeaponInput) (*GetWeaponOutput, error)
	ListWeapons(ctx context.Context, input *ListWeaponsInput) (*ListWeaponsOutput, error)
	NavigateWeapon(ctx context.Context, input *NavigateWeaponInput) (*NavigateWeaponOutput, error)

	// Enemy operations
	GetEnemy(ctx context.Context, input *GetEnemyInput) (*GetEnemyOutput, error)
	ListEnemies(ctx context.Context, input *ListEnemiesInput) (*ListEnemiesOutput, error)

	// Build operations
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)
	ListBuilds(ctx context.Context, input *ListBuildsInput) (*ListBuildsOutput, error)

	// Gadget operations
	GetGadget(ctx context.Context, input *GetGadgetInput) (*GetGadgetOutput, error)
	ListGadgets(ctx context.Context, input *ListGadgetsInput) (*ListGadgetsOutput, error)

	// Guide and tip operations
	GetGuide(ctx context.Context, input *GetGuideInput) (*GetGuideOutput, error)
	ListGuides(ctx context.Context, input *ListGuidesInput) (*ListGuidesOutput, error)
	RandomTip(ctx context.Context, input *RandomTipInput) (*RandomTipOutput, error)

	// Cross-domain search
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)

	// Item browser operations
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*GetItemOutput, error)

	// Incremental completion over id/name pairs
	Suggest(ctx context.Context, input *SuggestInput) (*SuggestOutput, error)
}

// GetWeaponInput defines the request for a weapon lookup
type GetWeaponInput struct {
	Token string
}

// GetWeaponOutput defines the response for a weapon lookup
type GetWeaponOutput struct {
	Weapon   arc.Weapon
	Sections []render.Section
	Color    int
}

// ListWeaponsInput defines the request for a weapon listing. Filter is a
// tier letter, a fuzzy category token, or empty for all weapons.
type ListWeaponsInput struct {
	Filter string
}

// ListWeaponsOutput defines the response for a weapon listing
type ListWeaponsOutput struct {
	Title   string
	Weapons []arc.Weapon
	Cards   []render.Card
}

// NavigateWeaponInput defines the request for wrap-around navigation
type NavigateWeaponInput struct {
	CurrentID string
	Direction Direction
}

// NavigateWeaponOutput defines the response for wrap-around navigation
type NavigateWeaponOutput struct {
	Weapon   arc.Weapon
	Sections []render.Section
	Color    int
}

// GetEnemyInput defines the request for an enemy lookup
type GetEnemyInput struct {
	Token string
}

// GetEnemyOutput defines the response for an enemy lookup
type GetEnemyOutput struct {
	Enemy    arc.Enemy
	Sections []render.Section
	Color    int
}

// ListEnemiesInput defines the request for an enemy listing
type ListEnemiesInput struct{}

// ListEnemiesOutput defines the response for an enemy listing
type ListEnemiesOutput struct {
	Enemies []arc.Enemy
	Cards   []render.Card
	Tips    []string
}

// GetBuildInput defines the request for a build lookup
type GetBuildInput struct {
	Token string
}

// GetBuildOutput defines the response for a build lookup
type GetBuildOutput struct {
	Build    arc.Build
	Sections []render.Section
	Color    int
}

// ListBuildsInput defines the request for a build listing
type ListBuildsInput struct{}

// ListBuildsOutput defines the response for a build listing
type ListBuildsOutput struct {
	Builds []arc.Build
	Cards  []render.Card
	Tips   []string
}

// GetGadgetInput defines the request for a gadget lookup
type GetGadgetInput struct {
	Token string
}

// GetGadgetOutput defines the response for a gadget lookup
type GetGadgetOutput struct {
	Gadget   arc.Gadget
	Sections []render.Section
	Color    int
}

// ListGadgetsInput defines the request for a gadget listing. Category is
// an exact category-map key, or empty for all gadgets.
type ListGadgetsInput struct {
	Category string
}

// ListGadgetsOutput defines the response for a gadget listing
type ListGadgetsOutput struct {
	Title      string
	Gadgets    []arc.Gadget
	Cards      []render.Card
	Categories []string
}

// GetGuideInput defines the request for a guide lookup by topic
type GetGuideInput struct {
	Topic string
}

// GetGuideOutput defines the response for a guide lookup
type GetGuideOutput struct {
	Topic    string
	Guide    arc.Guide
	Sections []render.Section
}

// ListGuidesInput defines the request for a guide listing
type ListGuidesInput struct{}

// GuideSummary is one row of a guide listing
type GuideSummary struct {
	Topic string
	Title string
}

// ListGuidesOutput defines the response for a guide listing
type ListGuidesOutput struct {
	Guides []GuideSummary
}

// RandomTipInput defines the request for a random quick tip
type RandomTipInput struct{}

// RandomTipOutput defines the response for a random quick tip
type RandomTipOutput struct {
	Tip string
}

// SearchInput defines the request for a cross-domain search
type SearchInput struct {
	Query string
}

// SearchResult is one cross-domain search hit
type SearchResult struct {
	Domain Domain
	Card   render.Card
}

// SearchOutput defines the response for a cross-domain search. Results
// is capped at MaxSearchResults; Total is the uncapped match count.
type SearchOutput struct {
	Results []SearchResult
	Total   int
}

// ListItemsInput defines the request for the browser item filter
type ListItemsInput struct {
	Spec query.Spec
}

// ListItemsOutput defines the response for the browser item filter
type ListItemsOutput struct {
	Cards    []render.Card
	Total    int
	Filtered int
}

// GetItemInput defines the request for an item lookup
type GetItemInput struct {
	Token string
}

// GetItemOutput defines the response for an item lookup
type GetItemOutput struct {
	Item     arc.Item
	Card     render.Card
	Sections []render.Section
}

// SuggestInput defines the request for incremental completion
type SuggestInput struct {
	Domain  Domain
	Partial string
}

// SuggestOutput defines the response for incremental completion
type SuggestOutput struct {
	Suggestions []query.Suggestion
}
