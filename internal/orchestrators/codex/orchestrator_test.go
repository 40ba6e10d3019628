package codex_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcdex/arcdex/internal/dataset"
	"github.com/arcdex/arcdex/internal/entities/arc"
	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/orchestrators/codex"
	"github.com/arcdex/arcdex/internal/query"
	codexsvc "github.com/arcdex/arcdex/internal/services/codex"
)

type OrchestratorTestSuite struct {
	suite.Suite

	ctx   context.Context
	store *dataset.Store
	orch  *codex.Orchestrator
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = &dataset.Store{
		Weapons: []arc.Weapon{
			{ID: "anvil", Name: "Anvil", Type: "Assault Rifle", Tier: arc.TierS, Rarity: "Legendary", Damage: 42, Magazine: 30, Description: "Workhorse rifle."},
			{ID: "ferro", Name: "Ferro", Type: "SMG", Tier: arc.TierA, Rarity: "Epic", Damage: 22, Magazine: 40, Description: "Close-quarters shredder."},
			{ID: "rattler", Name: "Rattler", Type: "SMG", Tier: arc.TierB, Rarity: "Rare", Damage: 18, Magazine: 35, Description: "Budget spray option."},
		},
		WeaponCategories: []query.CategoryGroup{
			{Key: "smg_weapons", IDs: []string{"ferro", "rattler"}},
			{Key: "assault_rifles", IDs: []string{"anvil"}},
		},
		Enemies: []arc.Enemy{
			{ID: "wasp", Name: "Wasp", Type: "Aerial Drone", Threat: arc.ThreatLow, Description: "Fast scout."},
			{ID: "bastion", Name: "Bastion", Type: "Heavy Walker", Threat: arc.ThreatExtreme, Description: "Siege platform."},
		},
		GeneralTips: []string{"tip1", "tip2", "tip3", "tip4", "tip5", "tip6"},
		Builds: []arc.Build{
			{ID: "budget-scrapper", Name: "Budget Scrapper", Difficulty: "Beginner", Playstyle: "Scavenging", EstimatedCost: 4500, Description: "Cheap and expendable."},
		},
		BuildTips: []string{"b1", "b2", "b3", "b4", "b5"},
		Gadgets: []arc.Gadget{
			{ID: "zipline", Name: "Zipline", Category: "Mobility", Rarity: "Common", Cost: 800, Description: "Traversal line."},
			{ID: "medkit", Name: "Medkit", Category: "Healing", Rarity: "Common", Cost: 600, Description: "Restores health."},
		},
		GadgetCategories: []query.CategoryGroup{
			{Key: "mobility", IDs: []string{"zipline"}},
			{Key: "healing", IDs: []string{"medkit"}},
		},
		Guides: []dataset.GuideEntry{
			{Topic: "extraction", Guide: arc.Guide{Title: "Extraction Basics", Sections: []arc.GuideSection{{Heading: "Plan", Content: "Ping first."}}}},
			{Topic: "economy", Guide: arc.Guide{Title: "Credit Economy", Sections: []arc.GuideSection{{Heading: "Sell smart", Content: "Compare vendors."}}}},
		},
		QuickTips: []string{"quick1", "quick2", "quick3"},
		Items: []arc.Item{
			{ID: "metal-parts", Name: "Metal Parts", Category: "Materials", Subcategory: "Scrap", Tier: arc.TierC, Rarity: "Common", SellPrice: 45, Description: "Structural scrap."},
			{ID: "arc-alloy", Name: "ARC Alloy", Category: "Materials", Subcategory: "Refined", Tier: arc.TierA, Rarity: "Epic", SellPrice: 900, Description: "Refined machine plating."},
		},
	}

	orch, err := codex.New(&codex.Config{Store: s.store})
	s.Require().NoError(err)
	s.orch = orch
}

func (s *OrchestratorTestSuite) TestNewRequiresStore() {
	orch, err := codex.New(&codex.Config{})
	s.Nil(orch)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetWeapon() {
	testCases := []struct {
		name    string
		token   string
		wantID  string
		wantErr func(error) bool
	}{
		{name: "by id", token: "anvil", wantID: "anvil"},
		{name: "by name ignoring case", token: "FERRO", wantID: "ferro"},
		{name: "unknown token", token: "ghost", wantErr: errors.IsNotFound},
		{name: "empty token", token: "", wantErr: errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.orch.GetWeapon(s.ctx, &codexsvc.GetWeaponInput{Token: tc.token})
			if tc.wantErr != nil {
				s.Require().Error(err)
				s.True(tc.wantErr(err))
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.wantID, output.Weapon.ID)
			s.NotEmpty(output.Sections)
			s.NotZero(output.Color)
		})
	}
}

func (s *OrchestratorTestSuite) TestListWeapons() {
	testCases := []struct {
		name      string
		filter    string
		wantTitle string
		wantIDs   []string
		wantErr   bool
	}{
		{name: "no filter", filter: "", wantTitle: "All Weapons", wantIDs: []string{"anvil", "ferro", "rattler"}},
		{name: "tier letter", filter: "s", wantTitle: "Tier S Weapons", wantIDs: []string{"anvil"}},
		{name: "tier letter uppercase", filter: "A", wantTitle: "Tier A Weapons", wantIDs: []string{"ferro"}},
		{name: "fuzzy category", filter: "smg", wantTitle: "Smg Weapons", wantIDs: []string{"ferro", "rattler"}},
		{name: "fuzzy category superset token", filter: "assault_rifles_all", wantTitle: "Assault Rifles", wantIDs: []string{"anvil"}},
		{name: "unrecognized filter", filter: "plasma", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.orch.ListWeapons(s.ctx, &codexsvc.ListWeaponsInput{Filter: tc.filter})
			if tc.wantErr {
				s.Require().Error(err)
				s.True(errors.IsInvalidArgument(err))
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.wantTitle, output.Title)

			ids := make([]string, 0, len(output.Weapons))
			for _, w := range output.Weapons {
				ids = append(ids, w.ID)
			}
			s.Equal(tc.wantIDs, ids)
			s.Len(output.Cards, len(tc.wantIDs))
		})
	}
}

func (s *OrchestratorTestSuite) TestNavigateWeapon() {
	testCases := []struct {
		name      string
		currentID string
		direction codexsvc.Direction
		wantID    string
		wantErr   func(error) bool
	}{
		{name: "next", currentID: "anvil", direction: codexsvc.DirectionNext, wantID: "ferro"},
		{name: "next wraps", currentID: "rattler", direction: codexsvc.DirectionNext, wantID: "anvil"},
		{name: "prev wraps", currentID: "anvil", direction: codexsvc.DirectionPrev, wantID: "rattler"},
		{name: "unknown id", currentID: "ghost", direction: codexsvc.DirectionNext, wantErr: errors.IsNotFound},
		{name: "unknown direction", currentID: "anvil", direction: "sideways", wantErr: errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.orch.NavigateWeapon(s.ctx, &codexsvc.NavigateWeaponInput{
				CurrentID: tc.currentID,
				Direction: tc.direction,
			})
			if tc.wantErr != nil {
				s.Require().Error(err)
				s.True(tc.wantErr(err))
				return
			}

			s.Require().NoError(err)
			s.Equal(tc.wantID, output.Weapon.ID)
		})
	}
}

func (s *OrchestratorTestSuite) TestListEnemiesCapsTips() {
	output, err := s.orch.ListEnemies(s.ctx, &codexsvc.ListEnemiesInput{})
	s.Require().NoError(err)

	s.Len(output.Enemies, 2)
	s.Len(output.Cards, 2)
	s.Equal([]string{"tip1", "tip2", "tip3", "tip4", "tip5"}, output.Tips)
}

func (s *OrchestratorTestSuite) TestListBuildsCapsTips() {
	output, err := s.orch.ListBuilds(s.ctx, &codexsvc.ListBuildsInput{})
	s.Require().NoError(err)

	s.Len(output.Builds, 1)
	s.Equal([]string{"b1", "b2", "b3", "b4"}, output.Tips)
}

func (s *OrchestratorTestSuite) TestGetEnemy() {
	output, err := s.orch.GetEnemy(s.ctx, &codexsvc.GetEnemyInput{Token: "Bastion"})
	s.Require().NoError(err)
	s.Equal("bastion", output.Enemy.ID)
	s.Equal(0xFF0000, output.Color)
}

func (s *OrchestratorTestSuite) TestListGadgets() {
	testCases := []struct {
		name      string
		category  string
		wantTitle string
		wantIDs   []string
	}{
		{name: "no category", category: "", wantTitle: "All Gadgets", wantIDs: []string{"zipline", "medkit"}},
		{name: "known category", category: "mobility", wantTitle: "Mobility", wantIDs: []string{"zipline"}},
		{name: "unknown category lists all", category: "traps", wantTitle: "All Gadgets", wantIDs: []string{"zipline", "medkit"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.orch.ListGadgets(s.ctx, &codexsvc.ListGadgetsInput{Category: tc.category})
			s.Require().NoError(err)

			s.Equal(tc.wantTitle, output.Title)
			s.Equal([]string{"mobility", "healing"}, output.Categories)

			ids := make([]string, 0, len(output.Gadgets))
			for _, g := range output.Gadgets {
				ids = append(ids, g.ID)
			}
			s.Equal(tc.wantIDs, ids)
		})
	}
}

func (s *OrchestratorTestSuite) TestGuides() {
	output, err := s.orch.ListGuides(s.ctx, &codexsvc.ListGuidesInput{})
	s.Require().NoError(err)
	s.Equal([]codexsvc.GuideSummary{
		{Topic: "extraction", Title: "Extraction Basics"},
		{Topic: "economy", Title: "Credit Economy"},
	}, output.Guides)

	guide, err := s.orch.GetGuide(s.ctx, &codexsvc.GetGuideInput{Topic: "economy"})
	s.Require().NoError(err)
	s.Equal("Credit Economy", guide.Guide.Title)
	s.Len(guide.Sections, 1)

	_, err = s.orch.GetGuide(s.ctx, &codexsvc.GetGuideInput{Topic: "pvp"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRandomTipDeterministic() {
	orch, err := codex.New(&codex.Config{
		Store:    s.store,
		RandIntN: func(n int) int { return n - 1 },
	})
	s.Require().NoError(err)

	output, err := orch.RandomTip(s.ctx, &codexsvc.RandomTipInput{})
	s.Require().NoError(err)
	s.Equal("quick3", output.Tip)
}

func (s *OrchestratorTestSuite) TestRandomTipEmptyDataset() {
	s.store.QuickTips = nil

	_, err := s.orch.RandomTip(s.ctx, &codexsvc.RandomTipInput{})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSearch() {
	output, err := s.orch.Search(s.ctx, &codexsvc.SearchInput{Query: "smg"})
	s.Require().NoError(err)

	s.Equal(2, output.Total)
	s.Require().Len(output.Results, 2)
	s.Equal(codexsvc.DomainWeapons, output.Results[0].Domain)
	s.Equal("Ferro", output.Results[0].Card.Name)
	s.Equal("Rattler", output.Results[1].Card.Name)
}

func (s *OrchestratorTestSuite) TestSearchCapsDisplayResults() {
	for i := 0; i < 30; i++ {
		s.store.Items = append(s.store.Items, arc.Item{
			ID:          fmt.Sprintf("scrap-%d", i),
			Name:        fmt.Sprintf("Scrap Bundle %d", i),
			Category:    "Materials",
			Description: "Common salvage bundle.",
		})
	}

	output, err := s.orch.Search(s.ctx, &codexsvc.SearchInput{Query: "scrap bundle"})
	s.Require().NoError(err)

	s.Equal(30, output.Total)
	s.Len(output.Results, codexsvc.MaxSearchResults)
}

func (s *OrchestratorTestSuite) TestSearchRequiresQuery() {
	_, err := s.orch.Search(s.ctx, &codexsvc.SearchInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListItems() {
	output, err := s.orch.ListItems(s.ctx, &codexsvc.ListItemsInput{
		Spec: query.Spec{Rarity: "Epic"},
	})
	s.Require().NoError(err)

	s.Equal(2, output.Total)
	s.Equal(1, output.Filtered)
	s.Require().Len(output.Cards, 1)
	s.Equal("ARC Alloy", output.Cards[0].Name)
}

func (s *OrchestratorTestSuite) TestGetItem() {
	output, err := s.orch.GetItem(s.ctx, &codexsvc.GetItemInput{Token: "metal parts"})
	s.Require().NoError(err)
	s.Equal("metal-parts", output.Item.ID)
	s.NotEmpty(output.Sections)

	_, err = s.orch.GetItem(s.ctx, &codexsvc.GetItemInput{Token: "ghost"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestSuggest() {
	output, err := s.orch.Suggest(s.ctx, &codexsvc.SuggestInput{
		Domain:  codexsvc.DomainWeapons,
		Partial: "r",
	})
	s.Require().NoError(err)
	s.Equal([]query.Suggestion{
		{Name: "Ferro", ID: "ferro"},
		{Name: "Rattler", ID: "rattler"},
	}, output.Suggestions)

	_, err = s.orch.Suggest(s.ctx, &codexsvc.SuggestInput{Domain: "planets"})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
