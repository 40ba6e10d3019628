package arc

// Gadget is one entry in the gadgets collection
type Gadget struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Rarity      string   `json:"rarity"`
	Cost        int      `json:"cost"`
	StackSize   int      `json:"stackSize"`
	Effect      string   `json:"effect"`
	Tips        []string `json:"tips"`
	Description string   `json:"description"`
}
