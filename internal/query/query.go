// Package query implements the pure filter, lookup, and navigation
// engine shared by both front ends. Every function here is a pure
// function of its inputs: no state, no side effects, and an expected
// miss is an ok=false return, never an error.
package query

import "strings"

// All is the sentinel filter value meaning "no constraint".
const All = "all"

// MaxSuggestions bounds incremental-completion results.
const MaxSuggestions = 25

// Fields is the projection of a record the engine matches against.
// Extractor functions fix the searchable field set per domain.
type Fields struct {
	ID          string
	Name        string
	Category    string
	Tier        string
	Rarity      string
	Description string

	// Extra holds additional searchable text for domains whose search
	// set goes beyond name/description/category.
	Extra []string
}

// Spec is a filter specification. Zero values (and the All sentinel for
// the discrete fields) mean "no constraint". SearchText is matched
// case-insensitively as a substring of name, description, and category;
// the discrete fields compare exactly, case-sensitive, against the
// controlled vocabulary. SearchText is taken literally: a whitespace-only
// search is a whitespace search, trimming is the caller's business.
type Spec struct {
	SearchText string
	Category   string
	Tier       string
	Rarity     string
}

func constrained(v string) bool {
	return v != "" && v != All
}

// Filter returns the records matching every active constraint of spec,
// in their original order. A miss on every record yields an empty,
// non-nil slice.
func Filter[T any](records []T, spec Spec, fields func(T) Fields) []T {
	out := make([]T, 0, len(records))
	search := strings.ToLower(spec.SearchText)

	for _, rec := range records {
		f := fields(rec)

		if spec.SearchText != "" && !matchesSearch(f, search) {
			continue
		}
		if constrained(spec.Category) && f.Category != spec.Category {
			continue
		}
		if constrained(spec.Tier) && f.Tier != spec.Tier {
			continue
		}
		if constrained(spec.Rarity) && f.Rarity != spec.Rarity {
			continue
		}

		out = append(out, rec)
	}

	return out
}

func matchesSearch(f Fields, lowered string) bool {
	if strings.Contains(strings.ToLower(f.Name), lowered) ||
		strings.Contains(strings.ToLower(f.Description), lowered) ||
		strings.Contains(strings.ToLower(f.Category), lowered) {
		return true
	}
	for _, extra := range f.Extra {
		if strings.Contains(strings.ToLower(extra), lowered) {
			return true
		}
	}
	return false
}

// Lookup resolves a user-supplied token to a single record: exact id
// match first (case-sensitive), then exact name match (case-insensitive).
// First match in collection order wins.
func Lookup[T any](records []T, token string, fields func(T) Fields) (T, bool) {
	for _, rec := range records {
		if fields(rec).ID == token {
			return rec, true
		}
	}

	lowered := strings.ToLower(token)
	for _, rec := range records {
		if strings.ToLower(fields(rec).Name) == lowered {
			return rec, true
		}
	}

	var zero T
	return zero, false
}

// CategoryGroup pairs a grouping key with its member record ids, in
// dataset document order.
type CategoryGroup struct {
	Key string
	IDs []string
}

// ResolveCategory finds the first group whose key contains the token or
// whose token contains the key, case-insensitively. The bidirectional
// test lets "smg" match "smg_weapons" and "smg_weapons_all" match "smg".
// Ties go to the first group in document order.
func ResolveCategory(groups []CategoryGroup, token string) (CategoryGroup, bool) {
	lowered := strings.ToLower(token)
	for _, g := range groups {
		key := strings.ToLower(g.Key)
		if strings.Contains(key, lowered) || strings.Contains(lowered, key) {
			return g, true
		}
	}
	return CategoryGroup{}, false
}

// Suggestion is a (display name, id) pair for incremental completion.
type Suggestion struct {
	Name string
	ID   string
}

// Suggest returns up to MaxSuggestions (name, id) pairs whose name
// contains the partial input, case-insensitively, in collection order.
func Suggest[T any](records []T, partial string, fields func(T) Fields) []Suggestion {
	lowered := strings.ToLower(partial)
	out := make([]Suggestion, 0, MaxSuggestions)

	for _, rec := range records {
		f := fields(rec)
		if !strings.Contains(strings.ToLower(f.Name), lowered) {
			continue
		}
		out = append(out, Suggestion{Name: f.Name, ID: f.ID})
		if len(out) == MaxSuggestions {
			break
		}
	}

	return out
}

// Next returns the record after the one with the given id, wrapping from
// the last record to the first. ok is false when the id is not present.
func Next[T any](records []T, id string, fields func(T) Fields) (T, bool) {
	return step(records, id, fields, 1)
}

// Prev returns the record before the one with the given id, wrapping from
// the first record to the last. ok is false when the id is not present.
func Prev[T any](records []T, id string, fields func(T) Fields) (T, bool) {
	return step(records, id, fields, -1)
}

func step[T any](records []T, id string, fields func(T) Fields, delta int) (T, bool) {
	var zero T
	if len(records) == 0 {
		return zero, false
	}

	for i, rec := range records {
		if fields(rec).ID == id {
			n := len(records)
			return records[(i+delta+n)%n], true
		}
	}

	return zero, false
}
