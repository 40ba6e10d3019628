// Package arc defines the record types for the ARC Raiders reference
// dataset. Records are immutable once loaded; every struct here is a
// plain data carrier keyed by a stable string id unique within its
// collection.
package arc

import "strings"

// Tier is the weapon tier ranking
type Tier string

// Weapon tiers, best to worst
const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is a known ranking
func (t Tier) IsValid() bool {
	switch t {
	case TierS, TierA, TierB, TierC:
		return true
	default:
		return false
	}
}

// AllTiers returns the tiers in ranking order
func AllTiers() []Tier {
	return []Tier{TierS, TierA, TierB, TierC}
}

// TierFromString converts a user token to a Tier, case-insensitively.
// Returns the tier and true if the token names a known tier.
func TierFromString(s string) (Tier, bool) {
	tier := Tier(strings.ToUpper(s))
	if tier.IsValid() {
		return tier, true
	}
	return "", false
}

// Weapon is one entry in the weapons collection
type Weapon struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Tier             Tier     `json:"tier"`
	Rarity           string   `json:"rarity"`
	Damage           int      `json:"damage"`
	Magazine         int      `json:"magazine"`
	ARCPenetration   string   `json:"arcPenetration"`
	Range            string   `json:"range"`
	PvPEffectiveness string   `json:"pvpEffectiveness"`
	PvEEffectiveness string   `json:"pveEffectiveness"`
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	BestFor          string   `json:"bestFor"`
	Description      string   `json:"description"`
}
