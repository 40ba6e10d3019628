package arc

import "github.com/iancoleman/orderedmap"

// Item is one entry in the full item database backing the browser UI.
// Optional blocks are pointers or nil slices; the renderer omits a
// section entirely when its source data is absent.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Tier        Tier    `json:"tier"`
	Rarity      string  `json:"rarity"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	StackSize   int     `json:"stackSize,omitempty"`
	BuyPrice    int64   `json:"buyPrice,omitempty"`
	SellPrice   int64   `json:"sellPrice,omitempty"`

	// Stats preserves the document key order so both front ends list
	// stats the way the data author wrote them.
	Stats *orderedmap.OrderedMap `json:"stats,omitempty"`

	Crafting  *Crafting  `json:"crafting,omitempty"`
	Salvage   *Salvage   `json:"salvage,omitempty"`
	Locations []Location `json:"locations,omitempty"`
	Vendors   []Vendor   `json:"vendors,omitempty"`
	UsedIn    []string   `json:"usedIn,omitempty"`
	Unlocks   string     `json:"unlocks,omitempty"`
}

// Crafting describes how an item is crafted, if it can be
type Crafting struct {
	CanCraft  bool       `json:"canCraft"`
	Workbench string     `json:"workbench,omitempty"`
	CraftTime int        `json:"craftTime,omitempty"`
	Materials []Material `json:"materials,omitempty"`
}

// Salvage describes what salvaging an item yields, if it can be salvaged
type Salvage struct {
	CanSalvage bool           `json:"canSalvage"`
	Yields     []SalvageYield `json:"yields,omitempty"`
}

// Material is one crafting ingredient with its quantity
type Material struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// SalvageYield is one salvage output with quantity and drop chance
type SalvageYield struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
	Chance   int    `json:"chance"`
}

// Location is one place an item can be found in the world
type Location struct {
	Area   string `json:"area"`
	Type   string `json:"type"`
	Rarity string `json:"rarity"`
}

// Vendor is one trader offering an item
type Vendor struct {
	Name  string `json:"name"`
	Stock int    `json:"stock"`
	Price int64  `json:"price"`
}
