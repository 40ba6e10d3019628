package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

// SummaryDescriptionLength is the truncation bound for card and list
// descriptions, counted in runes.
const SummaryDescriptionLength = 100

// Truncate shortens s to SummaryDescriptionLength runes, appending "..."
// when anything was cut.
func Truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= SummaryDescriptionLength {
		return s
	}
	return string(runes[:SummaryDescriptionLength]) + "..."
}

// FormatCredits renders a credit amount with thousands separators and
// the currency glyph, e.g. 12400 -> "12,400¢".
func FormatCredits(amount int64) string {
	return humanize.Comma(amount) + "¢"
}

// FormatNumber renders an integer with thousands separators.
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// HumanizeKey converts an identifier-style stat key to words: a space is
// inserted before each internal uppercase letter and the first character
// is capitalized, so "fireRate" becomes "Fire Rate".
func HumanizeKey(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// statValue renders a decoded JSON stat value. Numbers drop the float64
// artifacts ("30" not "30.000000"); everything else falls back to fmt.
func statValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
