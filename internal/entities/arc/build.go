package arc

// Build is one entry in the builds collection (a recommended loadout)
type Build struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Difficulty      string   `json:"difficulty"`
	Playstyle       string   `json:"playstyle"`
	Cost            string   `json:"cost"`
	EstimatedCost   int      `json:"estimatedCost"`
	PrimaryWeapon   string   `json:"primaryWeapon"`
	SecondaryWeapon string   `json:"secondaryWeapon"`
	Armor           string   `json:"armor"`
	Shield          string   `json:"shield"`
	Gadgets         []string `json:"gadgets"`
	Augments        []string `json:"augments"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Tactics         []string `json:"tactics"`
	Description     string   `json:"description"`
}
