// Package render transforms one record into a structured, ordered
// sequence of display sections, independent of the target medium. The
// DOM formatter paints sections as HTML fragments and the chat front end
// paints them as embed fields; nothing in this package emits markup.
package render

import "github.com/arcdex/arcdex/internal/entities/arc"

// Section is one display block of a detail rendering. A section carries
// a note, labeled fields, a list, or some combination; sections whose
// source data is absent are omitted entirely rather than rendered empty.
type Section struct {
	Title  string  `json:"title,omitempty"`
	Note   string  `json:"note,omitempty"`
	Fields []Field `json:"fields,omitempty"`
	List   []Entry `json:"list,omitempty"`
}

// Field is a labeled value. Inline hints that the field can share a row
// with its neighbors.
type Field struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

// Entry is one row of a section list: primary text, optional secondary
// text, and an optional trailing value (a quantity, price, or label).
type Entry struct {
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
	Value  string `json:"value,omitempty"`
}

// ColorDefault is the accent color used when no ranking applies.
const ColorDefault = 0xFF6B35

// TierColor returns the accent color for a weapon tier.
func TierColor(t arc.Tier) int {
	switch t {
	case arc.TierS:
		return 0xFFD700
	case arc.TierA:
		return 0xC0C0C0
	case arc.TierB:
		return 0xCD7F32
	case arc.TierC:
		return 0x808080
	default:
		return ColorDefault
	}
}

// ThreatColor returns the accent color for an enemy threat level.
func ThreatColor(t arc.Threat) int {
	switch t {
	case arc.ThreatLow:
		return 0x00FF00
	case arc.ThreatLowMedium:
		return 0x7FFF00
	case arc.ThreatMedium:
		return 0xFFFF00
	case arc.ThreatMediumHigh:
		return 0xFFA500
	case arc.ThreatHigh:
		return 0xFF4500
	case arc.ThreatExtreme:
		return 0xFF0000
	default:
		return ColorDefault
	}
}
