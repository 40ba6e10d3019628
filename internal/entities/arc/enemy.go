package arc

// Threat is the enemy threat level label
type Threat string

// Threat levels, lowest to highest
const (
	ThreatLow        Threat = "Low"
	ThreatLowMedium  Threat = "Low-Medium"
	ThreatMedium     Threat = "Medium"
	ThreatMediumHigh Threat = "Medium-High"
	ThreatHigh       Threat = "High"
	ThreatExtreme    Threat = "Extreme"
)

// String returns the string representation of the threat level
func (t Threat) String() string {
	return string(t)
}

// IsValid checks if the threat level is known
func (t Threat) IsValid() bool {
	switch t {
	case ThreatLow, ThreatLowMedium, ThreatMedium, ThreatMediumHigh, ThreatHigh, ThreatExtreme:
		return true
	default:
		return false
	}
}

// Enemy is one entry in the enemies collection (an ARC machine)
type Enemy struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Threat      Threat   `json:"threat"`
	Health      string   `json:"health"`
	Armor       string   `json:"armor"`
	Abilities   []string `json:"abilities"`
	Weaknesses  []string `json:"weaknesses"`
	Tactics     []string `json:"tactics"`
	Loot        string   `json:"loot"`
	Description string   `json:"description"`
}
