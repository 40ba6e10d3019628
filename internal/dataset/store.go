// Package dataset loads the static reference documents into memory once
// at process start. The loaded store is read-only for the lifetime of
// the process; a document that cannot be read or parsed is fatal before
// any interaction is served.
package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/iancoleman/orderedmap"

	"github.com/arcdex/arcdex/internal/entities/arc"
	"github.com/arcdex/arcdex/internal/errors"
	"github.com/arcdex/arcdex/internal/query"
)

// Dataset file names, one JSON document per domain.
const (
	WeaponsFile = "weapons.json"
	EnemiesFile = "enemies.json"
	BuildsFile  = "builds.json"
	GadgetsFile = "gadgets.json"
	GuidesFile  = "guides.json"
	ItemsFile   = "items-full.json"
)

// GuideEntry pairs a guide topic with its payload, in document order.
type GuideEntry struct {
	Topic string
	Guide arc.Guide
}

// Store holds every domain collection. All fields are populated at Load
// and never mutated afterwards.
type Store struct {
	Weapons          []arc.Weapon
	WeaponCategories []query.CategoryGroup

	Enemies     []arc.Enemy
	GeneralTips []string

	Builds    []arc.Build
	BuildTips []string

	Gadgets          []arc.Gadget
	GadgetCategories []query.CategoryGroup

	Guides    []GuideEntry
	QuickTips []string

	Items []arc.Item
}

// Load reads all six documents from dir. Any failure is a DataLoss
// error; callers must treat it as fatal and refuse to serve.
func Load(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("data directory cannot be empty")
	}

	store := &Store{}

	if err := store.loadWeapons(dir); err != nil {
		return nil, err
	}
	if err := store.loadEnemies(dir); err != nil {
		return nil, err
	}
	if err := store.loadBuilds(dir); err != nil {
		return nil, err
	}
	if err := store.loadGadgets(dir); err != nil {
		return nil, err
	}
	if err := store.loadGuides(dir); err != nil {
		return nil, err
	}
	if err := store.loadItems(dir); err != nil {
		return nil, err
	}

	return store, nil
}

// GuideByTopic returns the guide for an exact topic key.
func (s *Store) GuideByTopic(topic string) (arc.Guide, bool) {
	for _, entry := range s.Guides {
		if entry.Topic == topic {
			return entry.Guide, true
		}
	}
	return arc.Guide{}, false
}

func (s *Store) loadWeapons(dir string) error {
	raw, err := readDocument(dir, WeaponsFile)
	if err != nil {
		return err
	}

	var doc struct {
		Weapons          []arc.Weapon        `json:"weapons"`
		WeaponCategories map[string][]string `json:"weaponCategories"`
	}
	if err := unmarshalDocument(WeaponsFile, raw, &doc); err != nil {
		return err
	}
	if doc.Weapons == nil {
		return errors.DataLossf("%s: missing weapons collection", WeaponsFile)
	}

	groups, err := orderedGroups(WeaponsFile, raw, "weaponCategories", doc.WeaponCategories)
	if err != nil {
		return err
	}

	s.Weapons = doc.Weapons
	s.WeaponCategories = groups
	return nil
}

func (s *Store) loadEnemies(dir string) error {
	raw, err := readDocument(dir, EnemiesFile)
	if err != nil {
		return err
	}

	var doc struct {
		Enemies     []arc.Enemy `json:"enemies"`
		GeneralTips []string    `json:"generalTips"`
	}
	if err := unmarshalDocument(EnemiesFile, raw, &doc); err != nil {
		return err
	}
	if doc.Enemies == nil {
		return errors.DataLossf("%s: missing enemies collection", EnemiesFile)
	}

	s.Enemies = doc.Enemies
	s.GeneralTips = doc.GeneralTips
	return nil
}

func (s *Store) loadBuilds(dir string) error {
	raw, err := readDocument(dir, BuildsFile)
	if err != nil {
		return err
	}

	var doc struct {
		Builds    []arc.Build `json:"builds"`
		BuildTips []string    `json:"buildTips"`
	}
	if err := unmarshalDocument(BuildsFile, raw, &doc); err != nil {
		return err
	}
	if doc.Builds == nil {
		return errors.DataLossf("%s: missing builds collection", BuildsFile)
	}

	s.Builds = doc.Builds
	s.BuildTips = doc.BuildTips
	return nil
}

func (s *Store) loadGadgets(dir string) error {
	raw, err := readDocument(dir, GadgetsFile)
	if err != nil {
		return err
	}

	var doc struct {
		Gadgets          []arc.Gadget        `json:"gadgets"`
		GadgetCategories map[string][]string `json:"gadgetCategories"`
	}
	if err := unmarshalDocument(GadgetsFile, raw, &doc); err != nil {
		return err
	}
	if doc.Gadgets == nil {
		return errors.DataLossf("%s: missing gadgets collection", GadgetsFile)
	}

	groups, err := orderedGroups(GadgetsFile, raw, "gadgetCategories", doc.GadgetCategories)
	if err != nil {
		return err
	}

	s.Gadgets = doc.Gadgets
	s.GadgetCategories = groups
	return nil
}

func (s *Store) loadGuides(dir string) error {
	raw, err := readDocument(dir, GuidesFile)
	if err != nil {
		return err
	}

	var doc struct {
		Guides    map[string]arc.Guide `json:"guides"`
		QuickTips []string             `json:"quickTips"`
	}
	if err := unmarshalDocument(GuidesFile, raw, &doc); err != nil {
		return err
	}
	if doc.Guides == nil {
		return errors.DataLossf("%s: missing guides collection", GuidesFile)
	}

	topics, err := orderedKeys(GuidesFile, raw, "guides")
	if err != nil {
		return err
	}

	entries := make([]GuideEntry, 0, len(topics))
	for _, topic := range topics {
		entries = append(entries, GuideEntry{Topic: topic, Guide: doc.Guides[topic]})
	}

	s.Guides = entries
	s.QuickTips = doc.QuickTips
	return nil
}

func (s *Store) loadItems(dir string) error {
	raw, err := readDocument(dir, ItemsFile)
	if err != nil {
		return err
	}

	var doc struct {
		Items []arc.Item `json:"items"`
	}
	if err := unmarshalDocument(ItemsFile, raw, &doc); err != nil {
		return err
	}
	if doc.Items == nil {
		return errors.DataLossf("%s: missing items collection", ItemsFile)
	}

	s.Items = doc.Items
	return nil
}

func readDocument(dir, name string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "cannot read %s", name)
	}
	return raw, nil
}

func unmarshalDocument(name string, raw []byte, target any) error {
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.WrapWithCodef(err, errors.CodeDataLoss, "cannot parse %s", name)
	}
	return nil
}

// orderedKeys extracts the key order of one object-valued field, so the
// engine's first-match rules follow the order the data author wrote.
func orderedKeys(name string, raw []byte, field string) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "cannot parse %s", name)
	}

	value, ok := doc[field]
	if !ok {
		return nil, nil
	}

	om := orderedmap.New()
	if err := json.Unmarshal(value, om); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "cannot parse %s %s", name, field)
	}
	return om.Keys(), nil
}

func orderedGroups(name string, raw []byte, field string, byKey map[string][]string) ([]query.CategoryGroup, error) {
	keys, err := orderedKeys(name, raw, field)
	if err != nil {
		return nil, err
	}

	groups := make([]query.CategoryGroup, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, query.CategoryGroup{Key: key, IDs: byKey[key]})
	}
	return groups, nil
}
