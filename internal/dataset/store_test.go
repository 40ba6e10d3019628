package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcdex/arcdex/internal/dataset"
	"github.com/arcdex/arcdex/internal/errors"
)

type StoreTestSuite struct {
	suite.Suite
}

func (s *StoreTestSuite) TestLoad() {
	store, err := dataset.Load("testdata")
	s.Require().NoError(err)

	s.Len(store.Weapons, 3)
	s.Equal("anvil", store.Weapons[0].ID)
	s.Len(store.Enemies, 2)
	s.Len(store.Builds, 1)
	s.Len(store.Gadgets, 2)
	s.Len(store.Items, 2)
	s.Len(store.GeneralTips, 3)
	s.Len(store.BuildTips, 2)
	s.Len(store.QuickTips, 2)
}

func (s *StoreTestSuite) TestLoadPreservesCategoryOrder() {
	store, err := dataset.Load("testdata")
	s.Require().NoError(err)

	// Document order, not alphabetical: smg_weapons is written first.
	s.Require().Len(store.WeaponCategories, 2)
	s.Equal("smg_weapons", store.WeaponCategories[0].Key)
	s.Equal([]string{"ferro", "rattler"}, store.WeaponCategories[0].IDs)
	s.Equal("assault_rifles", store.WeaponCategories[1].Key)

	s.Require().Len(store.GadgetCategories, 2)
	s.Equal("mobility", store.GadgetCategories[0].Key)
}

func (s *StoreTestSuite) TestLoadPreservesGuideOrder() {
	store, err := dataset.Load("testdata")
	s.Require().NoError(err)

	s.Require().Len(store.Guides, 2)
	s.Equal("extraction", store.Guides[0].Topic)
	s.Equal("Extraction Basics", store.Guides[0].Guide.Title)
	s.Equal("economy", store.Guides[1].Topic)
}

func (s *StoreTestSuite) TestGuideByTopic() {
	store, err := dataset.Load("testdata")
	s.Require().NoError(err)

	guide, ok := store.GuideByTopic("economy")
	s.True(ok)
	s.Equal("Credit Economy", guide.Title)

	_, ok = store.GuideByTopic("pvp")
	s.False(ok)
}

func (s *StoreTestSuite) TestLoadFailures() {
	testCases := []struct {
		name  string
		setup func(dir string)
	}{
		{
			name:  "missing document",
			setup: func(dir string) { s.Require().NoError(os.Remove(filepath.Join(dir, dataset.WeaponsFile))) },
		},
		{
			name: "malformed document",
			setup: func(dir string) {
				s.writeFile(dir, dataset.EnemiesFile, "{not json")
			},
		},
		{
			name: "missing collection key",
			setup: func(dir string) {
				s.writeFile(dir, dataset.BuildsFile, `{"buildTips": []}`)
			},
		},
		{
			name: "wrong collection shape",
			setup: func(dir string) {
				s.writeFile(dir, dataset.ItemsFile, `{"items": {"not": "an array"}}`)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			dir := s.copyTestdata()
			tc.setup(dir)

			store, err := dataset.Load(dir)
			s.Nil(store)
			s.Require().Error(err)
			s.True(errors.IsDataLoss(err), "want DataLoss, got %v", err)
		})
	}
}

func (s *StoreTestSuite) TestLoadEmptyDir() {
	store, err := dataset.Load("")
	s.Nil(store)
	s.True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) copyTestdata() string {
	dir := s.T().TempDir()
	entries, err := os.ReadDir("testdata")
	s.Require().NoError(err)

	for _, entry := range entries {
		raw, err := os.ReadFile(filepath.Join("testdata", entry.Name()))
		s.Require().NoError(err)
		s.writeFile(dir, entry.Name(), string(raw))
	}
	return dir
}

func (s *StoreTestSuite) writeFile(dir, name, content string) {
	s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
